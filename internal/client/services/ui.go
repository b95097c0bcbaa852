// Package services holds the client flows: the CRUD flows over security
// keys, the auth flows and the settings flows. Flows talk to the backend
// through the client collaborators, mirror results into the record store and
// report to the user through the Notifier and Navigator they are given.
package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/securevault/internal/client/client"
)

// Routes the flows navigate to.
const (
	RouteHome      = "/"
	RouteLogin     = "/auth/login"
	RouteRegister  = "/auth/register"
	RouteDashboard = "/dashboard"
	RouteKeys      = "/dashboard/keys"
	RouteNewKey    = "/dashboard/keys/new"
	RouteSettings  = "/dashboard/settings"
)

// KeyRoute is the detail route of a key.
func KeyRoute(id string) string {
	return RouteKeys + "/" + id
}

// EditKeyRoute is the edit route of a key.
func EditKeyRoute(id string) string {
	return KeyRoute(id) + "/edit"
}

const errorTitle = "Error"

// Notifier shows transient messages to the user.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

// Navigator switches the active view.
type Navigator interface {
	Navigate(route string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, title, description string) bool
}

// Clipboard receives copied values.
type Clipboard interface {
	Copy(text string) error
}

// ErrSubmitting is returned when a form is submitted while a previous submit
// is still pending.
var ErrSubmitting = errors.New("form is already being submitted")

// Message returns the text to show for err: the collaborator's message when
// it has one, fallback otherwise.
func Message(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var re *client.RemoteError
	if errors.As(err, &re) {
		if strings.TrimSpace(re.Message) != "" {
			return re.Message
		}
		return fallback
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}

// Scope ties requests to the lifetime of a view. Flows run with Context and
// drop their results once the scope is closed.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

func (s *Scope) Context() context.Context {
	return s.ctx
}

// Close cancels requests still in flight. It may be called more than once.
func (s *Scope) Close() {
	s.once.Do(s.cancel)
}

// Alive reports whether the scope is still open.
func (s *Scope) Alive() bool {
	return s.ctx.Err() == nil
}
