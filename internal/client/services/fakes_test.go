package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/dmitrijs2005/billbreak/internal/client/models"
)

var errBoom = errors.New("boom")

// fakeAuthAPI implements client.AuthAPI for store tests.
type fakeAuthAPI struct {
	mu sync.Mutex

	LoginRet  *models.AuthResponse
	LoginErr  error
	SignupRet *models.AuthResponse
	SignupErr error
	MeRet     *models.CurrentUserResponse
	MeErr     error

	// Block, when set, holds Login until it is closed.
	Block chan struct{}
	// Entered receives a value each time Login starts.
	Entered chan struct{}

	LoginCalls  int
	SignupCalls int
	MeCalls     int
	LastLogin   models.LoginRequest
	LastSignup  models.SignupRequest
}

func (f *fakeAuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.mu.Lock()
	f.LoginCalls++
	f.LastLogin = req
	block, entered := f.Block, f.Entered
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		<-block
	}
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuthAPI) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignupCalls++
	f.LastSignup = req
	return f.SignupRet, f.SignupErr
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context) (*models.CurrentUserResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.MeCalls++
	return f.MeRet, f.MeErr
}

func (f *fakeAuthAPI) calls() (login, signup, me int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LoginCalls, f.SignupCalls, f.MeCalls
}

// memGateway is an in-memory storage.Gateway that records the order of
// writes and can fail selected operations.
type memGateway struct {
	mu sync.Mutex

	User    *models.User
	Session *models.Session
	Token   string

	SetUserErr      error
	SetSessionErr   error
	SetTokenErr     error
	ClearUserErr    error
	ClearSessionErr error
	ClearTokenErr   error
	GetErr          error

	// SetSessionErrOnce makes SetSessionErr fire a single time.
	SetSessionErrOnce bool

	Ops []string
}

func (g *memGateway) record(op string) { g.Ops = append(g.Ops, op) }

func (g *memGateway) SetUser(_ context.Context, u *models.User) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("set:user")
	if g.SetUserErr != nil {
		return g.SetUserErr
	}
	g.User = u.Clone()
	return nil
}

func (g *memGateway) GetUser(context.Context) (*models.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.User.Clone(), g.GetErr
}

func (g *memGateway) ClearUser(context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("clear:user")
	if g.ClearUserErr != nil {
		return g.ClearUserErr
	}
	g.User = nil
	return nil
}

func (g *memGateway) SetSession(_ context.Context, s *models.Session) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("set:session")
	if err := g.SetSessionErr; err != nil {
		if g.SetSessionErrOnce {
			g.SetSessionErr = nil
		}
		return err
	}
	g.Session = s.Clone()
	return nil
}

func (g *memGateway) GetSession(context.Context) (*models.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Session.Clone(), g.GetErr
}

func (g *memGateway) ClearSession(context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("clear:session")
	if g.ClearSessionErr != nil {
		return g.ClearSessionErr
	}
	g.Session = nil
	return nil
}

func (g *memGateway) SetToken(_ context.Context, t string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("set:token")
	if g.SetTokenErr != nil {
		return g.SetTokenErr
	}
	g.Token = t
	return nil
}

func (g *memGateway) GetToken(context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Token, g.GetErr
}

func (g *memGateway) ClearToken(context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("clear:token")
	if g.ClearTokenErr != nil {
		return g.ClearTokenErr
	}
	g.Token = ""
	return nil
}

func (g *memGateway) snapshot() (*models.User, *models.Session, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.User.Clone(), g.Session.Clone(), g.Token
}

// fakeLedgerAPI implements LedgerAPI.
type fakeLedgerAPI struct {
	GroupsRet   []models.Group
	GroupRet    *models.Group
	GroupErr    error
	ExpensesRet []models.Expense
	ExpensesErr error
	BalancesRet *models.BalanceReport
	BalancesErr error
	VoiceRet    *models.VoiceExpenseResult
	VoiceErr    error

	LastVoiceGroup string
	LastVoiceAudio []byte
}

func (f *fakeLedgerAPI) Groups(context.Context) ([]models.Group, error) { return f.GroupsRet, nil }

func (f *fakeLedgerAPI) Group(context.Context, string) (*models.Group, error) {
	return f.GroupRet, f.GroupErr
}

func (f *fakeLedgerAPI) Expenses(context.Context, string) ([]models.Expense, error) {
	return f.ExpensesRet, f.ExpensesErr
}

func (f *fakeLedgerAPI) Balances(context.Context, string) (*models.BalanceReport, error) {
	return f.BalancesRet, f.BalancesErr
}

func (f *fakeLedgerAPI) VoiceExpense(_ context.Context, groupID string, audio io.Reader) (*models.VoiceExpenseResult, error) {
	f.LastVoiceGroup = groupID
	f.LastVoiceAudio, _ = io.ReadAll(audio)
	return f.VoiceRet, f.VoiceErr
}
