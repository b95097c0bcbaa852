package client

import (
	"context"

	"github.com/dmitrijs2005/securevault/internal/client/models"
)

// AuthEvent names an authentication state change.
type AuthEvent string

const (
	EventSignedIn       AuthEvent = "SIGNED_IN"
	EventSignedOut      AuthEvent = "SIGNED_OUT"
	EventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
	EventUserUpdated    AuthEvent = "USER_UPDATED"
)

// AuthListener is called with the event and the session current after it;
// the session is nil for EventSignedOut.
type AuthListener func(event AuthEvent, session *models.Session)

// Auth is the remote authentication collaborator.
type Auth interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context) error
	UpdatePassword(ctx context.Context, password string) (*models.User, error)
	CurrentSession(ctx context.Context) (*models.Session, error)
	OnAuthStateChange(fn AuthListener) (unsubscribe func())
	Close() error
}

// Filter selects rows whose Column equals Value.
type Filter struct {
	Column string
	Value  string
}

// ListQuery narrows and orders a List call. The zero value lists every key
// of the signed-in user in server order.
type ListQuery struct {
	Eq      *Filter
	OrderBy string
	Desc    bool
}

// Records is the remote storage collaborator. Every call is scoped to the
// signed-in user's rows by the server.
type Records interface {
	List(ctx context.Context, q ListQuery) ([]*models.SecurityKey, error)
	Get(ctx context.Context, id string) (*models.SecurityKey, error)
	Insert(ctx context.Context, in models.KeyInput) (*models.SecurityKey, error)
	Update(ctx context.Context, id string, in models.KeyInput) (*models.SecurityKey, error)
	Delete(ctx context.Context, id string) error
}

// Profiles serves the settings page.
type Profiles interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, fullName string) (*models.Profile, error)
	ExportVault(ctx context.Context) (*models.Export, error)
}
