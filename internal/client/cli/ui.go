package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/securevault/internal/client/services"
	"github.com/fatih/color"
)

// toaster prints flow notifications as one or two colored lines.
type toaster struct {
	mu  sync.Mutex
	out io.Writer
}

var _ services.Notifier = (*toaster)(nil)

func (t *toaster) Success(title, description string) {
	t.print(color.GreenString("✓"), title, description)
}

func (t *toaster) Error(title, description string) {
	t.print(color.RedString("✗"), title, description)
}

func (t *toaster) print(mark, title, description string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", mark, color.New(color.Bold).Sprint(title))
	if description != "" {
		fmt.Fprintf(t.out, "%s %s\n", color.CyanString("→"), description)
	}
}

// router remembers the active view. The REPL shows it in the prompt.
type router struct {
	mu    sync.RWMutex
	route string
}

var _ services.Navigator = (*router)(nil)

func (r *router) Navigate(route string) {
	r.mu.Lock()
	r.route = route
	r.mu.Unlock()
}

func (r *router) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.route
}

// promptConfirmer asks a yes/no question on the terminal. Anything other
// than "y" or "yes" declines.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

var _ services.Confirmer = (*promptConfirmer)(nil)

func (c *promptConfirmer) Confirm(ctx context.Context, title, description string) bool {
	if ctx.Err() != nil {
		return false
	}
	answer, err := getSimpleText(c.in, fmt.Sprintf("%s %s\n%s [y/N]", color.YellowString("!"), title, description), c.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
