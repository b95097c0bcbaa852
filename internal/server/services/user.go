// Package services contains server-side business logic. This file implements
// UserService, which handles accounts, sign-in and the rotation of
// server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/dmitrijs2005/securevault/internal/dbx"
	"github.com/dmitrijs2005/securevault/internal/server/auth"
	"github.com/dmitrijs2005/securevault/internal/server/config"
	"github.com/dmitrijs2005/securevault/internal/server/models"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/repomanager"
)

// MinPasswordLength is the shortest password accepted on sign up and on
// password change.
const MinPasswordLength = 6

// Session is what a successful sign-in or refresh hands back to the client.
type Session struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// UserService provides authentication-related operations.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// SignUp creates an account. A taken email yields common.ErrorAlreadyExists.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := checkPassword(password); err != nil {
		return nil, err
	}

	hash, salt := auth.HashPassword(password)
	user := &models.User{Email: email, PasswordHash: hash, PasswordSalt: salt}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, fmt.Errorf("%w: user already registered", common.ErrorAlreadyExists)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// SignIn verifies the credentials and starts a new session. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: invalid login credentials", common.ErrorUnauthorized)
		}
		return nil, common.ErrorInternal
	}
	if !auth.CheckPassword(password, user.PasswordHash, user.PasswordSalt) {
		return nil, fmt.Errorf("%w: invalid login credentials", common.ErrorUnauthorized)
	}
	return s.newSession(ctx, user, s.db)
}

// RefreshToken consumes a refresh token and returns a fresh session. The
// token is deleted in the same transaction that issues its replacement, so
// presenting it twice, even concurrently, yields at most one session.
// Unknown tokens yield ErrInvalidToken and expired ones
// ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	var (
		session *Session
		expired bool
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		token, err := s.repomanager.RefreshTokens(tx).Consume(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error consuming refresh token: %w", err)
		}
		if token.Expired(time.Now()) {
			// commit the delete, report expiry afterwards
			expired = true
			return nil
		}
		user, err := s.repomanager.Users(tx).GetByID(ctx, token.UserID)
		if err != nil {
			return fmt.Errorf("error loading user: %w", err)
		}
		session, err = s.newSession(ctx, user, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, common.ErrRefreshTokenExpired
	}
	return session, nil
}

// SignOut revokes every refresh token of the user, ending all of their
// sessions.
func (s *UserService) SignOut(ctx context.Context, userID string) error {
	if err := s.repomanager.RefreshTokens(s.db).DeleteForUser(ctx, userID); err != nil {
		return fmt.Errorf("error revoking sessions: %w", err)
	}
	return nil
}

// UpdatePassword replaces the user's password. Existing sessions stay valid.
func (s *UserService) UpdatePassword(ctx context.Context, userID, password string) (*models.User, error) {
	if err := checkPassword(password); err != nil {
		return nil, err
	}

	hash, salt := auth.HashPassword(password)
	repo := s.repomanager.Users(s.db)
	if err := repo.UpdatePassword(ctx, userID, hash, salt); err != nil {
		return nil, fmt.Errorf("error updating password: %w", err)
	}
	return repo.GetByID(ctx, userID)
}

// Profile returns the user's account row.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// UpdateProfile sets the user's display name.
func (s *UserService) UpdateProfile(ctx context.Context, userID, fullName string) (*models.User, error) {
	return s.repomanager.Users(s.db).UpdateFullName(ctx, userID, strings.TrimSpace(fullName))
}

// --- helpers below ---

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: invalid email address", common.ErrorValidation)
	}
	return email, nil
}

func checkPassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password should be at least %d characters", common.ErrorValidation, MinPasswordLength)
	}
	return nil
}

func (s *UserService) newSession(ctx context.Context, user *models.User, tx dbx.DBTX) (*Session, error) {
	access, expires, err := auth.GenerateToken(auth.Identity{UserID: user.ID, Email: user.Email}, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	tokens := s.repomanager.RefreshTokens(tx)
	if _, err := tokens.PruneExpired(ctx, user.ID, time.Now()); err != nil {
		return nil, common.ErrorInternal
	}
	if _, err := tokens.Create(ctx, user.ID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &Session{User: user, AccessToken: access, RefreshToken: refresh, ExpiresAt: expires}, nil
}
