package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/dmitrijs2005/fintrack/internal/server/repositories/repomanager"
	"github.com/shopspring/decimal"
)

// TransactionService records, lists and deletes a user's transactions.
type TransactionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewTransactionService(db *sql.DB, m repomanager.RepositoryManager) *TransactionService {
	return &TransactionService{
		db:          db,
		repomanager: m,
		now:         time.Now,
	}
}

// Create normalizes and validates the input, then stores it dated now.
// Nothing is persisted when validation fails.
func (s *TransactionService) Create(ctx context.Context, ownerID, description string, amount decimal.Decimal,
	txType models.TransactionType, category string) (*models.Transaction, error) {

	tx := models.NewTransaction(ownerID, description, amount, txType, category, s.now())
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repomanager.Transactions(s.db).Create(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("error creating transaction: %w", err)
	}
	return created, nil
}

// List returns the owner's transactions, newest first.
func (s *TransactionService) List(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	txs, err := s.repomanager.Transactions(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	return txs, nil
}

// Delete removes one of the owner's transactions. Missing or foreign ids
// yield common.ErrorNotFound.
func (s *TransactionService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repomanager.Transactions(s.db).DeleteByOwnerAndID(ctx, ownerID, id)
}

// Categories returns the distinct categories the owner has used.
func (s *TransactionService) Categories(ctx context.Context, ownerID string) ([]string, error) {
	cats, err := s.repomanager.Transactions(s.db).DistinctCategories(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return cats, nil
}
