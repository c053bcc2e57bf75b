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
	banner() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	New(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Dismiss(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Writely client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Before each prompt, a pending error from either state projection is shown
// as a banner line; "dismiss" clears it. Any errors returned by command
// handlers are ignored here; handlers surface their own errors through
// controller state. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if msg := a.banner(); msg != "" {
			printlnFn("! " + msg)
		}
		printlnFn(fmt.Sprintf("writely %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show, new, edit, delete, dismiss, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "new":
			_ = a.New(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
