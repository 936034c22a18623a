package transactions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/server/models"
)

// Repository persists transactions. Every method is scoped to one owner.
type Repository interface {
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Transaction, error)
	ListByOwnerSince(ctx context.Context, ownerID string, since time.Time) ([]models.Transaction, error)
	DeleteByOwnerAndID(ctx context.Context, ownerID, id string) error
	DistinctCategories(ctx context.Context, ownerID string) ([]string, error)
}
