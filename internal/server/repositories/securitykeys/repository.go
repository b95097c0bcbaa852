// Package securitykeys stores the secrets users keep in their vault. Every
// query is scoped to the owning user.
package securitykeys

import (
	"context"

	"github.com/dmitrijs2005/securevault/internal/server/models"
)

type Repository interface {
	// List returns the keys selected by q. Unknown filter or order columns
	// yield common.ErrorValidation.
	List(ctx context.Context, q models.KeyQuery) ([]*models.SecurityKey, error)
	Get(ctx context.Context, userID, id string) (*models.SecurityKey, error)
	// Create inserts key and fills its ID and timestamps.
	Create(ctx context.Context, key *models.SecurityKey) (*models.SecurityKey, error)
	// Update replaces every editable field of the key and bumps updated_at.
	Update(ctx context.Context, key *models.SecurityKey) (*models.SecurityKey, error)
	Delete(ctx context.Context, userID, id string) error
}
