package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/billbreak/internal/client/client"
	"github.com/dmitrijs2005/billbreak/internal/client/models"
	"github.com/dmitrijs2005/billbreak/internal/logging"
)

// LedgerAPI is the subset of the backend the ledger service reads from.
type LedgerAPI interface {
	Groups(ctx context.Context) ([]models.Group, error)
	Group(ctx context.Context, groupID string) (*models.Group, error)
	Expenses(ctx context.Context, groupID string) ([]models.Expense, error)
	Balances(ctx context.Context, groupID string) (*models.BalanceReport, error)
	VoiceExpense(ctx context.Context, groupID string, audio io.Reader) (*models.VoiceExpenseResult, error)
}

var _ LedgerAPI = (client.Client)(nil)

// GroupOverview is everything the group screen shows at once.
type GroupOverview struct {
	Group    *models.Group
	Expenses []models.Expense
	Balances *models.BalanceReport
}

// LedgerService serves the authenticated screens: groups, their expenses
// and balances, and voice-recorded expenses.
type LedgerService struct {
	api LedgerAPI
	log logging.Logger
}

func NewLedgerService(api LedgerAPI, log logging.Logger) *LedgerService {
	return &LedgerService{api: api, log: log.With("component", "ledger")}
}

func (l *LedgerService) Groups(ctx context.Context) ([]models.Group, error) {
	return l.api.Groups(ctx)
}

// Overview fetches the group, its expenses and its balances concurrently.
// The first failure cancels the other requests.
func (l *LedgerService) Overview(ctx context.Context, groupID string) (*GroupOverview, error) {
	var ov GroupOverview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		grp, err := l.api.Group(gctx, groupID)
		if err != nil {
			return fmt.Errorf("group: %w", err)
		}
		ov.Group = grp
		return nil
	})
	g.Go(func() error {
		exp, err := l.api.Expenses(gctx, groupID)
		if err != nil {
			return fmt.Errorf("expenses: %w", err)
		}
		ov.Expenses = exp
		return nil
	})
	g.Go(func() error {
		bal, err := l.api.Balances(gctx, groupID)
		if err != nil {
			return fmt.Errorf("balances: %w", err)
		}
		ov.Balances = bal
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ov, nil
}

// VoiceExpenseFromFile uploads a WAV recording from disk.
func (l *LedgerService) VoiceExpenseFromFile(ctx context.Context, groupID, path string) (*models.VoiceExpenseResult, error) {
	if !strings.EqualFold(filepath.Ext(path), ".wav") {
		return nil, fmt.Errorf("voice recording must be a .wav file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close() //nolint:errcheck

	res, err := l.api.VoiceExpense(ctx, groupID, f)
	if err != nil {
		return nil, err
	}
	l.log.Info(ctx, "voice expense processed", "group_id", groupID, "expense_id", res.Expense.ID, "amount", res.Amount)
	return res, nil
}
