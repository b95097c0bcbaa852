package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/dmitrijs2005/securevault/internal/client/client"
	"github.com/dmitrijs2005/securevault/internal/client/config"
	"github.com/dmitrijs2005/securevault/internal/client/services"
	"github.com/dmitrijs2005/securevault/internal/client/session"
	"github.com/dmitrijs2005/securevault/internal/client/store"
	"github.com/dmitrijs2005/securevault/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// backend is everything the CLI needs from the server.
type backend interface {
	client.Auth
	client.Records
	client.Profiles
	Ping(ctx context.Context) error
}

type App struct {
	config *config.Config
	logger logging.Logger
	api    backend

	session  *session.Context
	store    *store.Store
	keys     *services.KeyFlows
	auth     *services.AuthFlows
	settings *services.SettingsFlows

	notifier  *toaster
	router    *router
	clipboard *clipboardManager
	spinner   *loadingIndicator
	http      *http.Client

	reader *bufio.Reader
	out    io.Writer

	mu   sync.RWMutex
	mode Mode
}

func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	api, err := client.NewVaultClient(c.ServerEndpointAddr, c.RequestTimeout, logger)
	if err != nil {
		logger.Error(context.Background(), "error initializing client", "error", err)
		return nil, err
	}

	return newApp(c, api, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api backend, logger logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config:    c,
		logger:    logger.With("module", "cli"),
		api:       api,
		store:     store.New(),
		notifier:  &toaster{out: out},
		router:    &router{route: services.RouteHome},
		clipboard: newClipboardManager(c.ClipboardClearDelay, logger),
		spinner:   newLoadingIndicator(out),
		http:      &http.Client{Timeout: c.RequestTimeout},
		reader:    bufio.NewReader(in),
		out:       out,
	}

	confirmer := &promptConfirmer{in: a.reader, out: out}

	a.session = session.New(api, logger)
	a.keys = services.NewKeyFlows(api, a.store, a.notifier, a.router, confirmer, logger)
	a.auth = services.NewAuthFlows(api, a.store, a.notifier, a.router, logger)
	a.settings = services.NewSettingsFlows(api, a.notifier, logger)
	return a
}

// Run starts the session, the connectivity watcher and the REPL. It blocks
// until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.session.Start(ctx)
	a.spinner.attach(a.store)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	printlnFn("Welcome to SecureVault CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the session, wipes a pending clipboard secret and closes
// the connection.
func (a *App) Close() {
	a.session.Close()
	a.spinner.detach()
	if err := a.clipboard.Close(); err != nil {
		a.logger.Warn(context.Background(), "failed to clear clipboard", "error", err)
	}
	if err := a.api.Close(); err != nil {
		a.logger.Warn(context.Background(), "failed to close connection", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.logger.Info(context.Background(), "switched mode", "mode", mode)
	}
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Email + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = "(" + s + ") "
	}
	return s + a.router.Current()
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	err := a.api.Ping(ctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}

// scoped runs a command in its own view scope. Ctrl+C cancels the command
// in flight instead of the whole program.
func (a *App) scoped(ctx context.Context, fn func(ctx context.Context) error) error {
	sc := services.NewScope(ctx)
	defer sc.Close()

	ictx, stop := signal.NotifyContext(sc.Context(), os.Interrupt)
	defer stop()
	return fn(ictx)
}
