package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn(ctx context.Context) bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	Logout(ctx context.Context) error
	Verify(ctx context.Context, link string) error
	ResetPassword(ctx context.Context, email string) error
	Status(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Tables(ctx context.Context, query string) error
	Filter(ctx context.Context, query string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Show(ctx context.Context, id int64) error
	Export(ctx context.Context, query string) error
	Metrics(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: signup, signin, verify <token|link>, reset-password [email], status, help, exit"
	helpSignedIn  = "Available commands: dashboard, tables [query], filter [query], show <id>, add, edit <id>, delete <id>, export [query], metrics, status, logout, help, exit"
)

// runREPL starts the read–eval–print loop of the contactdesk shell.
//
// It reads a line from p, parses the first token as the command, and
// dispatches to methods on a. The prompt is rebuilt before every read so it
// reflects the current location. The loop exits on EOF or when the user
// types "exit" or "quit"; an interrupt only abandons the current line.
//
// Handler errors are printed and the loop continues; view-level failures
// are already rendered by the handlers themselves.
func runREPL(ctx context.Context, a execIface, p prompter, promptFn func() string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := p.Line(promptFn())
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				printlnFn("Use 'exit' or 'quit' to leave.")
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		rest := strings.Join(args, " ")

		switch cmd {
		case "help":
			if a.isSignedIn(ctx) {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return nil
		}

		err = dispatch(ctx, a, cmd, args, rest)
		switch {
		case err == nil:
		case errors.Is(err, errUsage):
			printlnFn(err.Error())
		case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
			printlnFn("Cancelled.")
		default:
			printlnFn("Error:", err)
		}
	}
}

var errUsage = errors.New("usage")

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string, rest string) error {
	switch cmd {
	case "signup", "register":
		return a.SignUp(ctx)
	case "signin", "login":
		return a.SignIn(ctx)
	case "logout":
		return a.Logout(ctx)
	case "verify":
		if len(args) != 1 {
			return usage("verify <token|link>")
		}
		return a.Verify(ctx, args[0])
	case "reset-password":
		return a.ResetPassword(ctx, rest)
	case "status":
		return a.Status(ctx)
	case "dashboard":
		return a.Dashboard(ctx)
	case "tables", "l", "list":
		return a.Tables(ctx, rest)
	case "filter":
		return a.Filter(ctx, rest)
	case "add":
		return a.Add(ctx)
	case "edit", "delete", "show":
		id, err := parseID(args)
		if err != nil {
			return usage(cmd + " <id>")
		}
		switch cmd {
		case "edit":
			return a.Edit(ctx, id)
		case "delete":
			return a.Delete(ctx, id)
		default:
			return a.Show(ctx, id)
		}
	case "export":
		return a.Export(ctx, rest)
	case "metrics":
		return a.Metrics(ctx)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, errUsage
	}
	return id, nil
}
