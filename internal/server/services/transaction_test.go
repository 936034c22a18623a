package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "11111111-1111-1111-1111-111111111111"
	bob   = "22222222-2222-2222-2222-222222222222"
)

func newTransactionService(t *testing.T, rm *fakeRepoManager, now time.Time) *TransactionService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	s := NewTransactionService(db, rm)
	s.now = func() time.Time { return now }
	return s
}

func TestTransactionService_Create(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	rm := newFakeRepoManager()
	s := newTransactionService(t, rm, now)

	tx, err := s.Create(context.Background(), alice, "  Coffee ", decimal.RequireFromString("3.456"),
		models.TransactionTypeExpense, "  coffee  SHOP")
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "Coffee", tx.Description)
	assert.Equal(t, "Coffee Shop", tx.Category)
	assert.True(t, decimal.RequireFromString("3.46").Equal(tx.Amount))
	assert.Equal(t, now, tx.Date)
	assert.Equal(t, alice, tx.UserID)
	assert.Len(t, rm.t.items, 1)
}

func TestTransactionService_Create_RejectsWithoutPersisting(t *testing.T) {
	rm := newFakeRepoManager()
	s := newTransactionService(t, rm, time.Now())

	cases := []struct {
		name   string
		desc   string
		amount decimal.Decimal
		typ    models.TransactionType
		cat    string
	}{
		{"zero amount", "x", decimal.Zero, models.TransactionTypeExpense, "food"},
		{"negative amount", "x", decimal.NewFromInt(-1), models.TransactionTypeExpense, "food"},
		{"bad type", "x", decimal.NewFromInt(1), "Transfer", "food"},
		{"blank description", "   ", decimal.NewFromInt(1), models.TransactionTypeIncome, "salary"},
		{"blank category", "x", decimal.NewFromInt(1), models.TransactionTypeIncome, "  "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), alice, c.desc, c.amount, c.typ, c.cat)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
	assert.Empty(t, rm.t.items)
}

func TestTransactionService_Create_StoreError(t *testing.T) {
	rm := newFakeRepoManager()
	rm.t.err = errBoom{}
	s := newTransactionService(t, rm, time.Now())

	_, err := s.Create(context.Background(), alice, "x", decimal.NewFromInt(1), models.TransactionTypeIncome, "salary")
	assert.ErrorContains(t, err, "error creating transaction: boom")
}

func TestTransactionService_ListAndDelete(t *testing.T) {
	rm := newFakeRepoManager()
	ctx := context.Background()

	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	s := newTransactionService(t, rm, day1)
	older, err := s.Create(ctx, alice, "old", decimal.NewFromInt(1), models.TransactionTypeIncome, "salary")
	require.NoError(t, err)

	s.now = func() time.Time { return day2 }
	newer, err := s.Create(ctx, alice, "new", decimal.NewFromInt(2), models.TransactionTypeExpense, "food")
	require.NoError(t, err)

	_, err = s.Create(ctx, bob, "bob's", decimal.NewFromInt(3), models.TransactionTypeExpense, "food")
	require.NoError(t, err)

	list, err := s.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	// bob cannot delete alice's transaction
	assert.ErrorIs(t, s.Delete(ctx, bob, older.ID), common.ErrorNotFound)

	require.NoError(t, s.Delete(ctx, alice, older.ID))
	assert.ErrorIs(t, s.Delete(ctx, alice, older.ID), common.ErrorNotFound)

	list, err = s.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	cats, err := s.Categories(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"Food"}, cats)
}

func TestTransactionService_ListError(t *testing.T) {
	rm := newFakeRepoManager()
	rm.t.err = errBoom{}
	s := newTransactionService(t, rm, time.Now())

	_, err := s.List(context.Background(), alice)
	assert.ErrorContains(t, err, "boom")

	_, err = s.Categories(context.Background(), alice)
	assert.ErrorContains(t, err, "boom")
}
