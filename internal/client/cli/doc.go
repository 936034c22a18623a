// Package cli provides the interactive fintrack command-line client.
//
// It wires configuration and the REST client into a REPL. Typical flow:
// check the server is reachable, register or log in, then record
// transactions and look at totals, the category chart and the six month
// income/expense chart.
//
// Commands:
//   - register, login, logout, me
//   - add, list, delete [id], categories
//   - summary, chart, monthly, export
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command dispatch.
package cli
