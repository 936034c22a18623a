package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/fintrack/internal/client/models"
)

// Add prompts for the transaction fields and records it.
func (a *App) Add(ctx context.Context) error {
	kind, err := getSimpleText(a.reader, "Type (income/expense)", a.out)
	if err != nil {
		return err
	}
	txType, err := parseType(kind)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	amount, err := getAmount(a.reader, "Amount", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, a.categoryPrompt(ctx), a.out)
	if err != nil {
		return err
	}

	tx, err := a.api.AddTransaction(ctx, models.NewTransaction{
		Description: description,
		Amount:      amount,
		Type:        txType,
		Category:    category,
	})
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintf(a.out, "Added %s %s (%s) %s\n", tx.Type, tx.Amount.StringFixed(2), tx.Category, tx.ID)
	return nil
}

// List prints the user's transactions, newest first.
func (a *App) List(ctx context.Context) error {
	txs, err := a.api.ListTransactions(ctx)
	if err != nil {
		a.report(err)
		return err
	}
	if len(txs) == 0 {
		fmt.Fprintln(a.out, "No transactions yet. Use 'add' to record one.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tAMOUNT\tCATEGORY\tDESCRIPTION\tID")
	for _, tx := range txs {
		sign := "+"
		if tx.Type == models.TypeExpense {
			sign = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s%s\t%s\t%s\t%s\n",
			tx.Date.Local().Format("2006-01-02"), tx.Type, sign, tx.Amount.StringFixed(2),
			tx.Category, tx.Description, tx.ID)
	}
	return tw.Flush()
}

// Delete removes a transaction by id, taken from args or prompted for.
func (a *App) Delete(ctx context.Context, args []string) error {
	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		var err error
		id, err = getSimpleText(a.reader, "Enter transaction id to delete", a.out)
		if err != nil {
			return err
		}
	}
	if id == "" {
		fmt.Fprintln(a.out, "Error:", errEmptyInput.Error())
		return errEmptyInput
	}

	if err := a.api.DeleteTransaction(ctx, id); err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintln(a.out, "Transaction deleted")
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	cats, err := a.api.Categories(ctx)
	if err != nil {
		a.report(err)
		return err
	}
	if len(cats) == 0 {
		fmt.Fprintln(a.out, "No categories yet.")
		return nil
	}

	for _, c := range cats {
		fmt.Fprintln(a.out, "-", c)
	}
	return nil
}

// categoryPrompt lists the user's known categories as hints. Hints are
// best effort; a failed lookup just leaves them out.
func (a *App) categoryPrompt(ctx context.Context) string {
	cats, err := a.api.Categories(ctx)
	if err != nil || len(cats) == 0 {
		return "Category"
	}
	return fmt.Sprintf("Category (known: %s)", strings.Join(cats, ", "))
}
