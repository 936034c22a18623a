package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/logging"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/dmitrijs2005/fintrack/internal/server/services"
	"github.com/dmitrijs2005/fintrack/internal/server/summary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	goodToken = "good-token"
	aliceID   = "11111111-1111-1111-1111-111111111111"
)

var alice = &models.User{ID: aliceID, UserName: "alice", Email: "alice@example.com"}

type fakeUsers struct {
	registerErr error
	loginErr    error
	authErr     error
}

func (f *fakeUsers) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	if f.registerErr != nil {
		return nil, "", f.registerErr
	}
	return &models.User{ID: aliceID, UserName: username, Email: email}, goodToken, nil
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return alice, goodToken, nil
}

func (f *fakeUsers) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	if token != goodToken {
		return nil, common.ErrorUnauthorized
	}
	return alice, nil
}

type fakeTransactions struct {
	created   []*models.Transaction
	list      []models.Transaction
	deleted   []string
	deleteErr error
	err       error
	panicOn   string
}

func (f *fakeTransactions) Create(ctx context.Context, ownerID, description string, amount decimal.Decimal,
	txType models.TransactionType, category string) (*models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	tx := models.NewTransaction(ownerID, description, amount, txType, category, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	tx.ID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	f.created = append(f.created, tx)
	return tx, nil
}

func (f *fakeTransactions) List(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	if f.panicOn == "list" {
		panic("kaboom")
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeTransactions) Delete(ctx context.Context, ownerID, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, ownerID+"/"+id)
	return nil
}

func (f *fakeTransactions) Categories(ctx context.Context, ownerID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []string{"Food", "Salary"}, nil
}

type fakeSummaries struct {
	txs []models.Transaction
	now time.Time
}

func (f *fakeSummaries) Totals(ctx context.Context, ownerID string) (summary.Totals, error) {
	return summary.ComputeTotals(f.txs), nil
}

func (f *fakeSummaries) CategoryBreakdown(ctx context.Context, ownerID string) ([]summary.CategoryTotal, error) {
	return summary.CategoryBreakdown(f.txs), nil
}

func (f *fakeSummaries) Monthly(ctx context.Context, ownerID string) ([]summary.MonthlyRow, error) {
	return summary.MonthlySeries(f.txs, f.now), nil
}

type fakeExports struct {
	err error
}

func (f *fakeExports) Export(ctx context.Context, ownerID string) (*services.ExportResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.ExportResult{URL: "https://s3.example/x.csv", Key: "exports/" + ownerID + "/x.csv"}, nil
}

type testAPI struct {
	users        *fakeUsers
	transactions *fakeTransactions
	summaries    *fakeSummaries
	exports      *fakeExports
	handler      http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	api := &testAPI{
		users:        &fakeUsers{},
		transactions: &fakeTransactions{},
		summaries:    &fakeSummaries{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)},
		exports:      &fakeExports{},
	}
	h := NewHandlers(api.users, api.transactions, api.summaries, api.exports, logging.Nop{})
	api.handler = NewRouter(h, []string{"*"})
	return api
}

func (a *testAPI) do(t *testing.T, method, path, body string, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}
