package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

const (
	DescriptionMaxLength = 200
	CategoryMaxLength    = 100
)

// AmountScale is the number of fractional digits stored for an amount.
const AmountScale = 2

// AmountLimit is the exclusive upper bound of an amount; the column is NUMERIC(14,2).
var AmountLimit = decimal.New(1, 12)

// Transaction is a single income or expense record owned by one user.
type Transaction struct {
	ID          string
	UserID      string
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeCategory trims s, collapses inner whitespace to single spaces and
// title-cases every word ("  coffee  SHOP" becomes "Coffee Shop").
// Applying it twice yields the same result as applying it once.
func NormalizeCategory(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		w = strings.ToLower(w)
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// NewTransaction builds a transaction from raw user input. Description is
// trimmed, category normalized and amount rounded to cents; the result still
// has to pass Validate before it may be stored.
func NewTransaction(userID, description string, amount decimal.Decimal, txType TransactionType, category string, now time.Time) *Transaction {
	return &Transaction{
		UserID:      userID,
		Description: strings.TrimSpace(description),
		Amount:      amount.Round(AmountScale),
		Type:        txType,
		Category:    NormalizeCategory(category),
		Date:        now,
	}
}

// Validate enforces the invariants of a stored transaction.
func (t *Transaction) Validate() error {
	if t.UserID == "" || t.Description == "" || t.Type == "" || t.Category == "" {
		return common.NewValidationError(common.MsgFillAllFields)
	}
	if !t.Amount.IsPositive() {
		return common.NewValidationError("Amount must be greater than zero")
	}
	if t.Amount.GreaterThanOrEqual(AmountLimit) {
		return common.NewValidationError("Amount must be less than 1000000000000")
	}
	if !t.Type.Valid() {
		return common.NewValidationError("Type must be either Income or Expense")
	}
	if utf8.RuneCountInString(t.Description) > DescriptionMaxLength {
		return common.NewValidationError("Description must be at most 200 characters")
	}
	if utf8.RuneCountInString(t.Category) > CategoryMaxLength {
		return common.NewValidationError("Category must be at most 100 characters")
	}
	return nil
}
