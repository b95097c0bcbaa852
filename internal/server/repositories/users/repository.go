// Package users declares and implements storage of account rows.
package users

import (
	"context"

	"github.com/dmitrijs2005/securevault/internal/server/models"
)

// Repository stores user accounts. Lookups that match nothing return
// common.ErrorNotFound.
type Repository interface {
	// Create inserts user and fills its ID and timestamps. A duplicate email
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, id string, hash, salt []byte) error
	UpdateFullName(ctx context.Context, id string, fullName string) (*models.User, error)
}
