package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/fintrack/internal/client/models"
	"github.com/shopspring/decimal"
)

const (
	barWidth     = 40
	incomeBar    = "█"
	expenseBar   = "░"
	categoryBar  = "■"
	maxLabelSize = 20
)

// barLength scales v against top to at most barWidth cells. Any non-zero
// value gets at least one cell.
func barLength(v, top decimal.Decimal) int {
	if !top.IsPositive() || !v.IsPositive() {
		return 0
	}
	n := int(v.Mul(decimal.NewFromInt(barWidth)).Div(top).Round(0).IntPart())
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return n
}

func padLabel(s string, width int) string {
	if utf8.RuneCountInString(s) > width {
		r := []rune(s)
		s = string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
}

func labelWidth[T any](rows []T, label func(T) string) int {
	w := 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(label(r)); n > w {
			w = n
		}
	}
	return min(w, maxLabelSize)
}

// renderCategoryChart draws one bar per category with its share of all
// expenses. Rows keep the server's order (largest first).
func renderCategoryChart(w io.Writer, rows []models.CategoryTotal) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No expenses yet.")
		return
	}

	sum, top := decimal.Zero, decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Total)
		if r.Total.GreaterThan(top) {
			top = r.Total
		}
	}

	lw := labelWidth(rows, func(r models.CategoryTotal) string { return r.Category })
	for _, r := range rows {
		share := decimal.Zero
		if sum.IsPositive() {
			share = r.Total.Mul(decimal.NewFromInt(100)).Div(sum)
		}
		bar := strings.Repeat(categoryBar, barLength(r.Total, top))
		fmt.Fprintf(w, "%s %-*s %10s %5s%%\n",
			padLabel(r.Category, lw), barWidth, bar, r.Total.StringFixed(2), share.StringFixed(1))
	}
}

// renderMonthlyChart draws an income and an expense bar per month on a
// shared scale.
func renderMonthlyChart(w io.Writer, rows []models.MonthlyRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No transactions in the last 6 months.")
		return
	}

	top := decimal.Zero
	for _, r := range rows {
		top = decimal.Max(top, r.Income, r.Expense)
	}

	fmt.Fprintf(w, "%s income  %s expense\n", incomeBar, expenseBar)
	for _, r := range rows {
		fmt.Fprintf(w, "%s %-*s %10s\n", r.Month, barWidth,
			strings.Repeat(incomeBar, barLength(r.Income, top)), r.Income.StringFixed(2))
		fmt.Fprintf(w, "%s %-*s %10s\n", strings.Repeat(" ", len(r.Month)), barWidth,
			strings.Repeat(expenseBar, barLength(r.Expense, top)), r.Expense.StringFixed(2))
	}
}
