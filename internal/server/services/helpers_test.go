package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/dbx"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	transactionsrepo "github.com/dmitrijs2005/fintrack/internal/server/repositories/transactions"
	usersrepo "github.com/dmitrijs2005/fintrack/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// fakeUsersRepo keeps users in memory keyed by email.
type fakeUsersRepo struct {
	byEmail map[string]*models.User

	getErr    error
	createErr error
	nextID    int
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorConflict
	}
	f.nextID++
	u.ID = "00000000-0000-0000-0000-00000000000" + string(rune('0'+f.nextID))
	stored := *u
	f.byEmail[u.Email] = &stored
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsersRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			c := *u
			c.PasswordHash = ""
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

// fakeTransactionsRepo keeps transactions in memory in insertion order.
type fakeTransactionsRepo struct {
	items []models.Transaction

	err      error
	nextID   int
	lastFrom time.Time
}

func (f *fakeTransactionsRepo) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	tx.ID = "tx-" + string(rune('a'+f.nextID-1))
	f.items = append(f.items, *tx)
	return tx, nil
}

func (f *fakeTransactionsRepo) sorted(keep func(models.Transaction) bool) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, t := range f.items {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (f *fakeTransactionsRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(func(t models.Transaction) bool { return t.UserID == ownerID }), nil
}

func (f *fakeTransactionsRepo) ListByOwnerSince(ctx context.Context, ownerID string, since time.Time) ([]models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFrom = since
	return f.sorted(func(t models.Transaction) bool { return t.UserID == ownerID && !t.Date.Before(since) }), nil
}

func (f *fakeTransactionsRepo) DeleteByOwnerAndID(ctx context.Context, ownerID, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, t := range f.items {
		if t.ID == id && t.UserID == ownerID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeTransactionsRepo) DistinctCategories(ctx context.Context, ownerID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, t := range f.items {
		if t.UserID == ownerID && !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTransactionsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), t: &fakeTransactionsRepo{}}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error         { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository               { return m.u }
func (m *fakeRepoManager) Transactions(db dbx.DBTX) transactionsrepo.Repository { return m.t }
