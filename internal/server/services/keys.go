package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/dmitrijs2005/securevault/internal/server/models"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// KeyService manages a user's security keys. Every call is scoped to the
// caller, so keys of other users behave as if they did not exist.
type KeyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewKeyService(db *sql.DB, m repomanager.RepositoryManager) *KeyService {
	return &KeyService{db: db, repomanager: m}
}

func (s *KeyService) List(ctx context.Context, q models.KeyQuery) ([]*models.SecurityKey, error) {
	return s.repomanager.SecurityKeys(s.db).List(ctx, q)
}

func (s *KeyService) Get(ctx context.Context, userID, id string) (*models.SecurityKey, error) {
	if err := checkKeyID(id); err != nil {
		return nil, err
	}
	return s.repomanager.SecurityKeys(s.db).Get(ctx, userID, id)
}

// Create validates key and stores it for userID.
func (s *KeyService) Create(ctx context.Context, userID string, key *models.SecurityKey) (*models.SecurityKey, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	key.ID = ""
	key.UserID = userID
	return s.repomanager.SecurityKeys(s.db).Create(ctx, key)
}

// Update replaces all editable fields of the key id.
func (s *KeyService) Update(ctx context.Context, userID, id string, key *models.SecurityKey) (*models.SecurityKey, error) {
	if err := checkKeyID(id); err != nil {
		return nil, err
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}
	key.ID = id
	key.UserID = userID
	return s.repomanager.SecurityKeys(s.db).Update(ctx, key)
}

func (s *KeyService) Delete(ctx context.Context, userID, id string) error {
	if err := checkKeyID(id); err != nil {
		return err
	}
	return s.repomanager.SecurityKeys(s.db).Delete(ctx, userID, id)
}

// checkKeyID rejects IDs that cannot name a stored key. Keys are addressed
// by UUID; any other ID names no key.
func checkKeyID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", common.ErrorValidation)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: security key %q", common.ErrorNotFound, id)
	}
	return nil
}

func validateKey(key *models.SecurityKey) error {
	if key == nil {
		return fmt.Errorf("%w: key is required", common.ErrorValidation)
	}
	key.Name = strings.TrimSpace(key.Name)
	switch {
	case key.Name == "":
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	case key.Value == "":
		return fmt.Errorf("%w: value is required", common.ErrorValidation)
	case !models.ValidKeyType(key.Type):
		return fmt.Errorf("%w: invalid key type %q", common.ErrorValidation, key.Type)
	}
	return nil
}
