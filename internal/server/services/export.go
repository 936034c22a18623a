package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/dmitrijs2005/fintrack/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fintrack/internal/server/storage"
	"github.com/google/uuid"
)

// ExportURLValidity is how long a presigned statement URL stays usable.
const ExportURLValidity = 15 * time.Minute

// ExportResult locates an uploaded statement.
type ExportResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// ExportService renders a user's transactions as CSV and hands out a
// temporary download link.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
	now         func() time.Time
}

// NewExportService returns a service that uploads to store. A nil store
// disables exports.
func NewExportService(db *sql.DB, m repomanager.RepositoryManager, store storage.ObjectStore) *ExportService {
	return &ExportService{
		db:          db,
		repomanager: m,
		store:       store,
		now:         time.Now,
	}
}

func ExportKey(ownerID string, d time.Time) string {
	d = d.UTC()
	return fmt.Sprintf("exports/%s/%04d/%02d/%02d/%v.csv", ownerID, d.Year(), int(d.Month()), d.Day(), uuid.New())
}

func (s *ExportService) Export(ctx context.Context, ownerID string) (*ExportResult, error) {
	if s.store == nil {
		return nil, common.ErrorUnavailable
	}

	txs, err := s.repomanager.Transactions(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error loading transactions: %w", err)
	}

	body, err := RenderCSV(txs)
	if err != nil {
		return nil, fmt.Errorf("error rendering statement: %w", err)
	}

	key := ExportKey(ownerID, s.now())
	if err := s.store.Put(ctx, key, "text/csv", body); err != nil {
		return nil, fmt.Errorf("error uploading statement: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, ExportURLValidity)
	if err != nil {
		return nil, fmt.Errorf("error presigning statement: %w", err)
	}

	return &ExportResult{URL: url, Key: key}, nil
}

// csvText keeps spreadsheets from evaluating user text as a formula.
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

// RenderCSV writes txs with a header row. Dates are RFC 3339 in UTC.
func RenderCSV(txs []models.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "description", "type", "category", "amount"}); err != nil {
		return nil, err
	}
	for _, t := range txs {
		row := []string{
			t.Date.UTC().Format(time.RFC3339),
			csvText(t.Description),
			string(t.Type),
			csvText(t.Category),
			t.Amount.StringFixed(models.AmountScale),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
