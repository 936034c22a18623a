// Package transactions is the transaction store: persistence of income and
// expense records, always filtered by owner.
package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/dbx"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/google/uuid"
)

const selectColumns = `id, user_id, description, amount, type, category, date, created_at, updated_at`

// newestFirst is the ordering of every list query.
const newestFirst = `ORDER BY date DESC, created_at DESC, id DESC`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create stores tx and fills in its generated id and timestamps.
func (r *PostgresRepository) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {

	query :=
		`INSERT INTO transactions (user_id, description, amount, type, category, date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		tx.UserID, tx.Description, tx.Amount, string(tx.Type), tx.Category, tx.Date,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tx, nil
}

// ListByOwner returns all of the owner's transactions, newest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	query := `SELECT ` + selectColumns + ` FROM transactions
		 WHERE user_id = $1
		 ` + newestFirst

	return r.list(ctx, query, ownerID)
}

// ListByOwnerSince returns the owner's transactions dated at or after since,
// newest first.
func (r *PostgresRepository) ListByOwnerSince(ctx context.Context, ownerID string, since time.Time) ([]models.Transaction, error) {
	query := `SELECT ` + selectColumns + ` FROM transactions
		 WHERE user_id = $1 AND date >= $2
		 ` + newestFirst

	return r.list(ctx, query, ownerID, since)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Transaction, 0)

	for rows.Next() {
		var (
			t   models.Transaction
			typ string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &typ, &t.Category,
			&t.Date, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		t.Type = models.TransactionType(typ)
		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// DeleteByOwnerAndID removes one transaction. It returns common.ErrorNotFound
// when id is not a UUID, does not exist or belongs to someone else.
func (r *PostgresRepository) DeleteByOwnerAndID(ctx context.Context, ownerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}

	query :=
		`DELETE FROM transactions
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// DistinctCategories returns the categories the owner has used, sorted.
func (r *PostgresRepository) DistinctCategories(ctx context.Context, ownerID string) ([]string, error) {
	query :=
		`SELECT DISTINCT category FROM transactions
		 WHERE user_id = $1
		 ORDER BY category
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
