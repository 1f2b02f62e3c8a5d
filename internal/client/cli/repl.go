package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Groups(ctx context.Context) error
	Expenses(ctx context.Context, groupID string) error
	Balances(ctx context.Context, groupID string) error
	Voice(ctx context.Context, groupID, path string) error
}

// runREPL starts a simple read–eval–print loop for the BillBreak CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                      show available commands
//	  - signup                    create an account
//	  - login                     authenticate
//	  - exit | quit               leave the program
//
//	Logged in:
//	  - help                      show available commands
//	  - whoami                    show the current user
//	  - groups                    list groups
//	  - expenses <groupId>        list a group's expenses
//	  - balances <groupId>        show balances and suggested settlements
//	  - voice <groupId> <file>    add an expense from a WAV recording
//	  - logout                    log out
//	  - exit | quit               leave the program
//
// Authenticated commands are refused while logged out. Errors returned by
// command handlers are ignored here; handlers print their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bb %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, groups, expenses <groupId>, balances <groupId>, voice <groupId> <file.wav>, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup", "register":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "groups":
			_ = a.Groups(ctx)

		case "expenses":
			if len(args) != 1 {
				printlnFn("Usage: expenses <groupId>")
				continue
			}
			_ = a.Expenses(ctx, args[0])

		case "balances":
			if len(args) != 1 {
				printlnFn("Usage: balances <groupId>")
				continue
			}
			_ = a.Balances(ctx, args[0])

		case "voice":
			if len(args) != 2 {
				printlnFn("Usage: voice <groupId> <file.wav>")
				continue
			}
			_ = a.Voice(ctx, args[0], args[1])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "whoami", "groups", "expenses", "balances", "voice", "logout":
		return true
	}
	return false
}
