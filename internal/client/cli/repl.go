package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	Summary(ctx context.Context) error
	Chart(ctx context.Context) error
	Monthly(ctx context.Context) error
	Export(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the fintrack CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit". Commands that need a session print a hint instead of
// running while logged out.
//
// Command errors are reported by the handlers themselves; the loop ignores
// them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("fintrack%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			printlnFn()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help", "?":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, (l)ist, delete [id], categories, summary, chart, monthly, export, me, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
			continue

		case "register":
			_ = a.Register(ctx)
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !isProtected(cmd) {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)
		case "me":
			_ = a.Me(ctx)
		case "add":
			_ = a.Add(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "delete", "rm":
			_ = a.Delete(ctx, args)
		case "categories":
			_ = a.Categories(ctx)
		case "summary":
			_ = a.Summary(ctx)
		case "chart":
			_ = a.Chart(ctx)
		case "monthly":
			_ = a.Monthly(ctx)
		case "export":
			_ = a.Export(ctx)
		}
	}
}

func isProtected(cmd string) bool {
	switch cmd {
	case "logout", "me", "add", "l", "list", "delete", "rm", "categories", "summary", "chart", "monthly", "export":
		return true
	}
	return false
}
