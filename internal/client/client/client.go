package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/billbreak/internal/client/models"
)

// TokenSource yields the bearer token to attach to the next request.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthAPI is the part of the backend the session store talks to.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context) (*models.CurrentUserResponse, error)
}

// Client is the full backend surface used by the CLI.
type Client interface {
	AuthAPI

	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest) error

	Groups(ctx context.Context) ([]models.Group, error)
	Group(ctx context.Context, groupID string) (*models.Group, error)
	CreateGroup(ctx context.Context, req models.CreateGroupRequest) (*models.Group, error)
	UpdateGroup(ctx context.Context, groupID string, req models.UpdateGroupRequest) error
	DeleteGroup(ctx context.Context, groupID string) error
	AddGroupMember(ctx context.Context, groupID string, req models.AddMemberRequest) error

	Expenses(ctx context.Context, groupID string) ([]models.Expense, error)
	CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req models.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
	VoiceExpense(ctx context.Context, groupID string, audio io.Reader) (*models.VoiceExpenseResult, error)

	Balances(ctx context.Context, groupID string) (*models.BalanceReport, error)
	SettlementSuggestions(ctx context.Context, groupID string) ([]models.SettlementTransaction, error)
	Settlements(ctx context.Context, groupID string) ([]models.Settlement, error)
	CreateSettlement(ctx context.Context, req models.CreateSettlementRequest) (*models.Settlement, error)

	Health(ctx context.Context) error
}
