package client

import (
	"context"

	"github.com/dmitrijs2005/fintrack/internal/client/models"
)

// Client is the fintrack API contract used by the CLI.
type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout()
	Authenticated() bool
	Me(ctx context.Context) (*models.User, error)

	AddTransaction(ctx context.Context, tx models.NewTransaction) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)

	Summary(ctx context.Context) (*models.Totals, error)
	CategoryBreakdown(ctx context.Context) ([]models.CategoryTotal, error)
	Monthly(ctx context.Context) ([]models.MonthlyRow, error)
	Export(ctx context.Context) (*models.Export, error)
}
