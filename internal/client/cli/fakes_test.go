package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/fintrack/internal/client/client"
	"github.com/dmitrijs2005/fintrack/internal/client/config"
	"github.com/dmitrijs2005/fintrack/internal/client/models"
)

type fakeAPI struct {
	token string
	err   error

	pingErr   error
	loginUser string
	loginPass string
	regName   string
	added     []models.NewTransaction
	deleted   []string

	txs       []models.Transaction
	cats      []string
	totals    models.Totals
	breakdown []models.CategoryTotal
	monthly   []models.MonthlyRow
	export    models.Export
}

var _ client.Client = (*fakeAPI)(nil)

var testUser = &models.User{ID: "u1", Username: "alice", Email: "alice@example.com"}

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }

func (f *fakeAPI) Register(_ context.Context, username, email, password string) (*models.User, error) {
	f.regName, f.loginUser, f.loginPass = username, email, password
	if f.err != nil {
		return nil, f.err
	}
	f.token = "tok"
	return &models.User{ID: "u1", Username: username, Email: email}, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*models.User, error) {
	f.loginUser, f.loginPass = email, password
	if f.err != nil {
		return nil, f.err
	}
	f.token = "tok"
	return testUser, nil
}

func (f *fakeAPI) Logout()             { f.token = "" }
func (f *fakeAPI) Authenticated() bool { return f.token != "" }

func (f *fakeAPI) Me(context.Context) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return testUser, nil
}

func (f *fakeAPI) AddTransaction(_ context.Context, tx models.NewTransaction) (*models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.added = append(f.added, tx)
	return &models.Transaction{ID: "t1", Description: tx.Description, Amount: tx.Amount, Type: tx.Type, Category: "Food"}, nil
}

func (f *fakeAPI) ListTransactions(context.Context) ([]models.Transaction, error) {
	return f.txs, f.err
}

func (f *fakeAPI) DeleteTransaction(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) Categories(context.Context) ([]string, error) { return f.cats, f.err }

func (f *fakeAPI) Summary(context.Context) (*models.Totals, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.totals, nil
}

func (f *fakeAPI) CategoryBreakdown(context.Context) ([]models.CategoryTotal, error) {
	return f.breakdown, f.err
}

func (f *fakeAPI) Monthly(context.Context) ([]models.MonthlyRow, error) { return f.monthly, f.err }

func (f *fakeAPI) Export(context.Context) (*models.Export, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.export, nil
}

// newTestApp returns an App reading input from the given lines and writing
// to the returned buffer.
func newTestApp(t *testing.T, api *fakeAPI, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	in := strings.Join(lines, "\n")
	if len(lines) > 0 {
		in += "\n"
	}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config: cfg,
		api:    api,
		reader: bufio.NewReader(strings.NewReader(in)),
		out:    out,
	}, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}
