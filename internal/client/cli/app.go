package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/billbreak/internal/client/models"
	"github.com/dmitrijs2005/billbreak/internal/client/services"
	"github.com/dmitrijs2005/billbreak/internal/logging"
)

// authStore is what the CLI needs from services.SessionStore.
type authStore interface {
	Login(ctx context.Context, email, password string) bool
	Signup(ctx context.Context, name, email, password string) bool
	Logout(ctx context.Context)
	CheckAuth(ctx context.Context)
	ClearError()
	State() models.AuthState
	Status() models.AuthStatus
	Subscribe(fn func(models.AuthState)) (unsubscribe func())
}

// ledger is what the CLI needs from services.LedgerService.
type ledger interface {
	Groups(ctx context.Context) ([]models.Group, error)
	Overview(ctx context.Context, groupID string) (*services.GroupOverview, error)
	VoiceExpenseFromFile(ctx context.Context, groupID, path string) (*models.VoiceExpenseResult, error)
}

var (
	_ authStore = (*services.SessionStore)(nil)
	_ ledger    = (*services.LedgerService)(nil)
)

type App struct {
	store  authStore
	ledger ledger
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(store authStore, l ledger, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{store: store, ledger: l, log: log, reader: bufio.NewReader(in), out: out}
}

// Run evaluates the persisted session, then serves commands until exit or
// EOF. Nothing but the loading line is shown before the check completes.
func (a *App) Run(ctx context.Context) {
	unsubscribe := a.store.Subscribe(a.onStateChange)
	defer unsubscribe()

	fmt.Fprintln(a.out, "Checking session...")
	a.store.CheckAuth(ctx)

	if st := a.store.State(); st.IsAuthenticated {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", displayName(st.User))
	}
	fmt.Fprintln(a.out, "BillBreak CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.store.Status() == models.StatusAuthenticated
}

func (a *App) getStatus() string {
	st := a.store.State()
	if st.IsAuthenticated {
		return fmt.Sprintf("(%s authenticated)", displayName(st.User))
	}
	return "(guest)"
}

// onStateChange traces auth transitions at debug level.
func (a *App) onStateChange(st models.AuthState) {
	a.log.Debug(context.Background(), "auth state changed",
		"authenticated", st.IsAuthenticated, "loading", st.IsLoading, "error", st.Error)
}

func displayName(u *models.User) string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
