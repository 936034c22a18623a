package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fintrack/internal/server/summary"
)

// SummaryService loads a user's transactions and aggregates them.
type SummaryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewSummaryService(db *sql.DB, m repomanager.RepositoryManager) *SummaryService {
	return &SummaryService{
		db:          db,
		repomanager: m,
		now:         time.Now,
	}
}

func (s *SummaryService) Totals(ctx context.Context, ownerID string) (summary.Totals, error) {
	txs, err := s.repomanager.Transactions(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return summary.Totals{}, fmt.Errorf("error loading transactions: %w", err)
	}
	return summary.ComputeTotals(txs), nil
}

func (s *SummaryService) CategoryBreakdown(ctx context.Context, ownerID string) ([]summary.CategoryTotal, error) {
	txs, err := s.repomanager.Transactions(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error loading transactions: %w", err)
	}
	return summary.CategoryBreakdown(txs), nil
}

// Monthly returns income and expense per month over the last six months.
func (s *SummaryService) Monthly(ctx context.Context, ownerID string) ([]summary.MonthlyRow, error) {
	now := s.now()
	txs, err := s.repomanager.Transactions(s.db).ListByOwnerSince(ctx, ownerID, summary.WindowStart(now))
	if err != nil {
		return nil, fmt.Errorf("error loading transactions: %w", err)
	}
	return summary.MonthlySeries(txs, now), nil
}
