// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/securevault/internal/server/models"
)

// Repository issues, looks up and revokes refresh tokens.
type Repository interface {
	// Create stores token for userID and returns its expiry (now+validity).
	Create(ctx context.Context, userID string, token string, validity time.Duration) (time.Time, error)

	// Consume deletes token and returns the row it removed, or
	// common.ErrorNotFound when no such token exists. Of two concurrent
	// calls for the same token at most one succeeds.
	Consume(ctx context.Context, token string) (*models.RefreshToken, error)

	// DeleteForUser revokes every token of userID on sign out.
	DeleteForUser(ctx context.Context, userID string) error

	// PruneExpired drops userID's tokens that expired before now and reports
	// how many rows went away.
	PruneExpired(ctx context.Context, userID string, now time.Time) (int64, error)
}
