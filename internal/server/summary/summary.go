// Package summary aggregates a user's transactions into the figures shown on
// the dashboard: overall totals, the expense breakdown by category and the
// month-by-month income/expense trend.
//
// All functions are pure: they take the transactions already loaded from the
// store and never touch I/O.
package summary

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/shopspring/decimal"
)

// MonthlyWindow is how far back MonthlySeries looks, in calendar months.
const MonthlyWindow = 6

// MonthKeyLayout formats the month key of a MonthlyRow.
const MonthKeyLayout = "2006-01"

type Totals struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type MonthlyRow struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ComputeTotals sums income and expenses. Balance is always
// TotalIncome - TotalExpenses.
func ComputeTotals(txs []models.Transaction) Totals {
	income, expenses := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}
	return Totals{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}
}

// CategoryBreakdown groups expenses by category and orders the groups by total,
// largest first. Equal totals keep the order in which their category first
// appears in txs.
func CategoryBreakdown(txs []models.Transaction) []CategoryTotal {
	out := make([]CategoryTotal, 0)
	index := make(map[string]int)

	for _, tx := range txs {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, CategoryTotal{Category: tx.Category, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(tx.Amount)
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Total.GreaterThan(out[b].Total)
	})
	return out
}

// WindowStart returns the earliest instant MonthlySeries includes for now.
func WindowStart(now time.Time) time.Time {
	return now.AddDate(0, -MonthlyWindow, 0)
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlySeries buckets transactions dated within [WindowStart(now), now] by
// UTC calendar month and reports income and expense per month in ascending
// order. Months without any transaction are omitted; a month with only one
// kind reports zero for the other.
func MonthlySeries(txs []models.Transaction, now time.Time) []MonthlyRow {
	cutoff := WindowStart(now)
	buckets := make(map[monthKey]*MonthlyRow)
	keys := make([]monthKey, 0)

	for _, tx := range txs {
		if tx.Date.Before(cutoff) || tx.Date.After(now) {
			continue
		}
		d := tx.Date.UTC()
		k := monthKey{year: d.Year(), month: d.Month()}
		row, ok := buckets[k]
		if !ok {
			row = &MonthlyRow{
				Month:   d.Format(MonthKeyLayout),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			buckets[k] = row
			keys = append(keys, k)
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			row.Income = row.Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			row.Expense = row.Expense.Add(tx.Amount)
		}
	}

	sort.Slice(keys, func(a, b int) bool {
		if keys[a].year != keys[b].year {
			return keys[a].year < keys[b].year
		}
		return keys[a].month < keys[b].month
	})

	out := make([]MonthlyRow, 0, len(keys))
	for _, k := range keys {
		out = append(out, *buckets[k])
	}
	return out
}
