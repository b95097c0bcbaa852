package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, term string) error
	Show(ctx context.Context, id string) error
	Reveal(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Copy(ctx context.Context, id, field string) error
	Stats(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Profile(ctx context.Context) error
	Rename(ctx context.Context) error
	Export(ctx context.Context, dir string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: (l)ist [term], show <id>, reveal <id>, add, edit <id>, delete <id>, " +
		"copy <id> [value|username|url], stats, passwd, profile, name, export [dir], logout, exit"
)

// needsID lists commands that take a key id and their usage line.
var needsID = map[string]string{
	"show":   "Usage: show <id>",
	"reveal": "Usage: reveal <id>",
	"edit":   "Usage: edit <id>",
	"delete": "Usage: delete <id>",
	"copy":   "Usage: copy <id> [value|username|url]",
}

// public commands work without a session.
var public = map[string]bool{
	"help": true, "register": true, "login": true, "exit": true, "quit": true,
}

// runREPL starts a simple read–eval–print loop for the SecureVault CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Commands other than help, register, login and exit require a signed-in
// user. Errors returned by command handlers are ignored here; the flows have
// already reported them to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("sv %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if usage, ok := needsID[cmd]; ok && len(args) == 0 {
			printlnFn(usage)
			continue
		}
		if !public[cmd] && !a.isLoggedIn() {
			if _, known := commands[cmd]; known {
				printlnFn("Please log in first")
				continue
			}
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx, strings.Join(args, " "))

		case "show":
			_ = a.Show(ctx, args[0])

		case "reveal":
			_ = a.Reveal(ctx, args[0])

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, args[0])

		case "delete":
			_ = a.Delete(ctx, args[0])

		case "copy":
			field := "value"
			if len(args) > 1 {
				field = args[1]
			}
			_ = a.Copy(ctx, args[0], field)

		case "stats":
			_ = a.Stats(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "name":
			_ = a.Rename(ctx)

		case "export":
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			_ = a.Export(ctx, dir)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// commands is the set of names the REPL dispatches.
var commands = map[string]struct{}{
	"help": {}, "register": {}, "login": {}, "logout": {}, "l": {}, "list": {},
	"show": {}, "reveal": {}, "add": {}, "edit": {}, "delete": {}, "copy": {},
	"stats": {}, "passwd": {}, "profile": {}, "name": {}, "export": {},
	"exit": {}, "quit": {},
}
