package cli

import (
	"context"
	"fmt"
	"path"

	"github.com/dmitrijs2005/fintrack/internal/filex"
	"github.com/dmitrijs2005/fintrack/internal/netx"
)

// exportDir is where downloaded statements are saved, relative to the
// working directory.
const exportDir = "exports"

// downloadStatement and saveStatement are test seams.
var (
	downloadStatement = netx.DownloadFromPresignedURL
	saveStatement     = filex.SaveToSubDir
)

// Summary prints total income, total expenses and the balance.
func (a *App) Summary(ctx context.Context) error {
	totals, err := a.api.Summary(ctx)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintf(a.out, "Income:   %12s\n", totals.TotalIncome.StringFixed(2))
	fmt.Fprintf(a.out, "Expenses: %12s\n", totals.TotalExpenses.StringFixed(2))
	fmt.Fprintf(a.out, "Balance:  %12s\n", totals.Balance.StringFixed(2))
	return nil
}

// Chart prints expenses by category.
func (a *App) Chart(ctx context.Context) error {
	rows, err := a.api.CategoryBreakdown(ctx)
	if err != nil {
		a.report(err)
		return err
	}

	renderCategoryChart(a.out, rows)
	return nil
}

// Monthly prints income and expenses per month over the last six months.
func (a *App) Monthly(ctx context.Context) error {
	rows, err := a.api.Monthly(ctx)
	if err != nil {
		a.report(err)
		return err
	}

	renderMonthlyChart(a.out, rows)
	return nil
}

// Export asks the server for a CSV statement, prints its download link and
// saves a copy under exportDir.
func (a *App) Export(ctx context.Context) error {
	exp, err := a.api.Export(ctx)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintln(a.out, "Statement ready (link valid for 15 minutes):")
	fmt.Fprintln(a.out, exp.URL)

	data, err := downloadStatement(ctx, exp.URL)
	if err != nil {
		fmt.Fprintln(a.out, "Could not download statement:", err.Error())
		return err
	}

	saved, err := saveStatement(exportDir, path.Base(exp.Key), data)
	if err != nil {
		fmt.Fprintln(a.out, "Could not save statement:", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Saved to", saved)
	return nil
}
