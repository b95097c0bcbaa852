// Package session mirrors the remote authentication state: who is signed in
// and whether that is still being determined.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/securevault/internal/client/client"
	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/dmitrijs2005/securevault/internal/logging"
)

// Context tracks the current identity. It starts in the loading state with
// no user and leaves it on the first auth notification or once the initial
// session query has returned, whichever comes first.
type Context struct {
	auth   client.Auth
	logger logging.Logger

	mu      sync.Mutex
	user    *models.User
	session *models.Session
	loading bool
	ready   chan struct{}
	unsub   func()
	started bool
	closed  bool
}

func New(auth client.Auth, logger logging.Logger) *Context {
	return &Context{
		auth:    auth,
		logger:  logger.With("module", "session"),
		loading: true,
		ready:   make(chan struct{}),
	}
}

// Start subscribes to auth notifications and seeds the identity from the
// current session. Only the first call has an effect.
func (c *Context) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started || c.closed {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	unsub := c.auth.OnAuthStateChange(c.onAuthEvent)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		unsub()
		return
	}
	c.unsub = unsub
	c.mu.Unlock()

	sess, err := c.auth.CurrentSession(ctx)
	if err != nil {
		c.logger.Error(ctx, "failed to get current session", "error", err)
		c.settle(nil, false)
		return
	}
	c.settle(sess, false)
}

func (c *Context) onAuthEvent(event client.AuthEvent, sess *models.Session) {
	c.logger.Debug(context.Background(), "auth state changed", "event", event)
	c.settle(sess, true)
}

// settle leaves the loading state. A seed result never overrides identity
// that a notification has already delivered.
func (c *Context) settle(sess *models.Session, fromEvent bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !fromEvent && !c.loading {
		return
	}
	c.session = sess
	c.user = nil
	if sess != nil && sess.User != nil {
		u := *sess.User
		c.user = &u
	}
	if c.loading {
		c.loading = false
		close(c.ready)
	}
}

// User returns the signed-in user or nil.
func (c *Context) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *Context) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Session returns the session seen last, or nil.
func (c *Context) Session() *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// Wait blocks until the loading state is left or ctx is done.
func (c *Context) Wait(ctx context.Context) error {
	select {
	case <-c.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close unsubscribes from auth notifications. It is safe to call more than
// once and before Start.
func (c *Context) Close() {
	c.mu.Lock()
	c.closed = true
	unsub := c.unsub
	c.unsub = nil
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}
