package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/securevault/internal/client/client"
	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/dmitrijs2005/securevault/internal/client/store"
	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/dmitrijs2005/securevault/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	client.Auth

	signInEmail string
	signInErr   error
	signUpErr   error
	signOutErr  error
	signOuts    int
	updatedPw   string
	updateErr   error
	calls       int
}

func (f *fakeAuth) SignIn(_ context.Context, email, _ string) (*models.Session, error) {
	f.calls++
	f.signInEmail = email
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &models.Session{User: &models.User{ID: "u1", Email: email}}, nil
}

func (f *fakeAuth) SignUp(_ context.Context, email, _ string) (*models.User, error) {
	f.calls++
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &models.User{ID: "u1", Email: email}, nil
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.calls++
	f.signOuts++
	return f.signOutErr
}

func (f *fakeAuth) UpdatePassword(_ context.Context, pw string) (*models.User, error) {
	f.calls++
	f.updatedPw = pw
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.User{ID: "u1"}, nil
}

type authFixture struct {
	auth     *fakeAuth
	store    *store.Store
	notifier *recNotifier
	nav      *recNavigator
	flows    *AuthFlows
}

func newAuthFixture() *authFixture {
	fx := &authFixture{auth: &fakeAuth{}, store: store.New(), notifier: &recNotifier{}, nav: &recNavigator{}}
	fx.flows = NewAuthFlows(fx.auth, fx.store, fx.notifier, fx.nav, logging.Nop{})
	return fx
}

func TestLogin_Success(t *testing.T) {
	fx := newAuthFixture()
	sess, err := fx.flows.Login(context.Background(), " a@b.c ", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", sess.User.Email)
	assert.Equal(t, "a@b.c", fx.auth.signInEmail)
	assert.Equal(t, toast{Title: "Login successful", Description: "You have been logged in successfully."}, fx.notifier.last())
	assert.Equal(t, []string{"/dashboard"}, fx.nav.routes)
}

func TestLogin_Failure(t *testing.T) {
	fx := newAuthFixture()
	fx.auth.signInErr = remoteErr(common.ErrorUnauthorized, "invalid login credentials")

	_, err := fx.flows.Login(context.Background(), "a@b.c", []byte("bad"))
	require.Error(t, err)
	assert.Equal(t, toast{Title: "Login failed", Description: "invalid login credentials", Err: true}, fx.notifier.last())
	assert.Empty(t, fx.nav.routes)
}

func TestLogin_MissingInputMakesNoCall(t *testing.T) {
	fx := newAuthFixture()
	_, err := fx.flows.Login(context.Background(), "", []byte("pw"))
	require.ErrorIs(t, err, ErrEmailEmpty)
	_, err = fx.flows.Login(context.Background(), "a@b.c", nil)
	require.ErrorIs(t, err, ErrPasswordEmpty)
	assert.Zero(t, fx.auth.calls)
	assert.Equal(t, "Password is required", fx.notifier.last().Description)
}

func TestRegister(t *testing.T) {
	fx := newAuthFixture()
	u, err := fx.flows.Register(context.Background(), "a@b.c", []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", u.Email)
	assert.Equal(t, []string{"/auth/login"}, fx.nav.routes)

	fx.auth.signUpErr = remoteErr(common.ErrorAlreadyExists, "user already registered")
	_, err = fx.flows.Register(context.Background(), "a@b.c", []byte("secret"))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, "user already registered", fx.notifier.last().Description)
}

func TestLogout_ClearsStore(t *testing.T) {
	fx := newAuthFixture()
	fx.store.Add(&models.SecurityKey{ID: "1"})

	require.NoError(t, fx.flows.Logout(context.Background()))
	assert.Empty(t, fx.store.Snapshot().Keys)
	assert.Equal(t, "Logged out", fx.notifier.last().Title)
	assert.Equal(t, []string{"/"}, fx.nav.routes)
}

func TestLogout_Failure(t *testing.T) {
	fx := newAuthFixture()
	fx.store.Add(&models.SecurityKey{ID: "1"})
	fx.auth.signOutErr = remoteErr(common.ErrorUnavailable, "")

	require.Error(t, fx.flows.Logout(context.Background()))
	assert.Len(t, fx.store.Snapshot().Keys, 1)
	assert.Equal(t, "An error occurred during logout.", fx.notifier.last().Description)
	assert.Empty(t, fx.nav.routes)
}

func TestChangePassword_MismatchMakesNoCall(t *testing.T) {
	fx := newAuthFixture()
	err := fx.flows.ChangePassword(context.Background(), []byte("one"), []byte("two"))
	require.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Zero(t, fx.auth.calls)
	assert.Equal(t, toast{Title: "Error", Description: "New passwords do not match", Err: true}, fx.notifier.last())
}

func TestChangePassword_Empty(t *testing.T) {
	fx := newAuthFixture()
	require.ErrorIs(t, fx.flows.ChangePassword(context.Background(), nil, nil), ErrPasswordEmpty)
	assert.Zero(t, fx.auth.calls)
}

func TestChangePassword_Success(t *testing.T) {
	fx := newAuthFixture()
	require.NoError(t, fx.flows.ChangePassword(context.Background(), []byte("newpass"), []byte("newpass")))
	assert.Equal(t, "newpass", fx.auth.updatedPw)
	assert.Equal(t, "Password updated", fx.notifier.last().Title)
}

func TestChangePassword_RemoteFailure(t *testing.T) {
	fx := newAuthFixture()
	fx.auth.updateErr = remoteErr(common.ErrorValidation, "password must be at least 6 characters")
	require.Error(t, fx.flows.ChangePassword(context.Background(), []byte("abc"), []byte("abc")))
	assert.Equal(t, "password must be at least 6 characters", fx.notifier.last().Description)
}
