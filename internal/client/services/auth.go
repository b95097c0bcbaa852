package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/securevault/internal/client/client"
	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/dmitrijs2005/securevault/internal/client/store"
	"github.com/dmitrijs2005/securevault/internal/logging"
)

var (
	ErrPasswordMismatch = errors.New("new passwords do not match")
	ErrPasswordEmpty    = errors.New("password is required")
	ErrEmailEmpty       = errors.New("email is required")
)

// userText is what the user sees for the local input errors above.
var userText = map[error]string{
	ErrPasswordMismatch: "New passwords do not match",
	ErrPasswordEmpty:    "Password is required",
	ErrEmailEmpty:       "Email is required",
}

// AuthFlows drives login, registration, logout and password change.
type AuthFlows struct {
	auth      client.Auth
	store     *store.Store
	notifier  Notifier
	navigator Navigator
	logger    logging.Logger
}

func NewAuthFlows(auth client.Auth, st *store.Store, n Notifier, nav Navigator, logger logging.Logger) *AuthFlows {
	return &AuthFlows{
		auth:      auth,
		store:     st,
		notifier:  n,
		navigator: nav,
		logger:    logger.With("module", "auth"),
	}
}

func checkCredentials(email string, password []byte) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailEmpty
	}
	if len(password) == 0 {
		return ErrPasswordEmpty
	}
	return nil
}

func (a *AuthFlows) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	if err := checkCredentials(email, password); err != nil {
		a.notifier.Error("Login failed", userText[err])
		return nil, err
	}

	sess, err := a.auth.SignIn(ctx, strings.TrimSpace(email), string(password))
	if err != nil {
		a.logger.Error(ctx, "login failed", "error", err)
		a.notifier.Error("Login failed", Message(err, "An error occurred during login."))
		return nil, err
	}

	a.notifier.Success("Login successful", "You have been logged in successfully.")
	a.navigator.Navigate(RouteDashboard)
	return sess, nil
}

// Register creates an account. The user signs in afterwards.
func (a *AuthFlows) Register(ctx context.Context, email string, password []byte) (*models.User, error) {
	if err := checkCredentials(email, password); err != nil {
		a.notifier.Error("Registration failed", userText[err])
		return nil, err
	}

	u, err := a.auth.SignUp(ctx, strings.TrimSpace(email), string(password))
	if err != nil {
		a.logger.Error(ctx, "registration failed", "error", err)
		a.notifier.Error("Registration failed", Message(err, "An error occurred during registration."))
		return nil, err
	}

	a.notifier.Success("Registration successful", "Your account has been created. You can log in now.")
	a.navigator.Navigate(RouteLogin)
	return u, nil
}

// Logout signs out and drops the mirrored keys.
func (a *AuthFlows) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		a.notifier.Error(errorTitle, Message(err, "An error occurred during logout."))
		return err
	}

	a.store.Reset()
	a.notifier.Success("Logged out", "You have been logged out successfully.")
	a.navigator.Navigate(RouteHome)
	return nil
}

// ChangePassword checks the confirmation locally before any remote call.
func (a *AuthFlows) ChangePassword(ctx context.Context, newPassword, confirm []byte) error {
	if string(newPassword) != string(confirm) {
		a.notifier.Error(errorTitle, userText[ErrPasswordMismatch])
		return ErrPasswordMismatch
	}
	if len(newPassword) == 0 {
		a.notifier.Error(errorTitle, userText[ErrPasswordEmpty])
		return ErrPasswordEmpty
	}

	if _, err := a.auth.UpdatePassword(ctx, string(newPassword)); err != nil {
		a.logger.Error(ctx, "password update failed", "error", err)
		a.notifier.Error(errorTitle, Message(err, "Failed to update password"))
		return err
	}

	a.notifier.Success("Password updated", "Your password has been updated successfully.")
	return nil
}
