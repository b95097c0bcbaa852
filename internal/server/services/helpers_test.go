package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/dmitrijs2005/securevault/internal/dbx"
	"github.com/dmitrijs2005/securevault/internal/server/models"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/securitykeys"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// fakeUsers is an in-memory users.Repository keyed by ID.
type fakeUsers struct {
	users.Repository
	byID      map[string]*models.User
	createErr error
	getErr    error
	updateErr error
}

func newFakeUsers(us ...*models.User) *fakeUsers {
	f := &fakeUsers{byID: map[string]*models.User{}}
	for _, u := range us {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = "u-new"
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id string, hash, salt []byte) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash, u.PasswordSalt = hash, salt
	return nil
}

func (f *fakeUsers) UpdateFullName(_ context.Context, id, name string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.FullName = name
	return u, nil
}

type fakeRefreshRepo struct {
	// tokens holds live rows by token value; Consume removes them.
	tokens     map[string]*models.RefreshToken
	consumeErr error
	delErr     error
	createErr  error

	created    []string
	consumed   []string
	revokedFor []string
	prunedFor  []string
}

func newFakeRefreshRepo(rows ...*models.RefreshToken) *fakeRefreshRepo {
	f := &fakeRefreshRepo{tokens: map[string]*models.RefreshToken{}}
	for _, rt := range rows {
		f.tokens[rt.Token] = rt
	}
	return f
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID string, token string, validity time.Duration) (time.Time, error) {
	if f.createErr != nil {
		return time.Time{}, f.createErr
	}
	f.created = append(f.created, token)
	return time.Now().Add(validity), nil
}

func (f *fakeRefreshRepo) Consume(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.consumeErr != nil {
		return nil, f.consumeErr
	}
	rt, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.tokens, token)
	f.consumed = append(f.consumed, token)
	return rt, nil
}

func (f *fakeRefreshRepo) PruneExpired(_ context.Context, userID string, _ time.Time) (int64, error) {
	f.prunedFor = append(f.prunedFor, userID)
	return 0, nil
}

func (f *fakeRefreshRepo) DeleteForUser(_ context.Context, userID string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.revokedFor = append(f.revokedFor, userID)
	return nil
}

// fakeKeys records the last query and returns canned results.
type fakeKeys struct {
	securitykeys.Repository
	lastQuery models.KeyQuery
	listOut   []*models.SecurityKey
	listErr   error
	saved     *models.SecurityKey
	deleted   []string
	err       error
}

func (f *fakeKeys) List(_ context.Context, q models.KeyQuery) ([]*models.SecurityKey, error) {
	f.lastQuery = q
	return f.listOut, f.listErr
}

func (f *fakeKeys) Get(_ context.Context, userID, id string) (*models.SecurityKey, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SecurityKey{ID: id, UserID: userID}, nil
}

func (f *fakeKeys) Create(_ context.Context, k *models.SecurityKey) (*models.SecurityKey, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = k
	out := *k
	out.ID = "k-new"
	return &out, nil
}

func (f *fakeKeys) Update(_ context.Context, k *models.SecurityKey) (*models.SecurityKey, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = k
	return k, nil
}

func (f *fakeKeys) Delete(_ context.Context, userID, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, userID+"/"+id)
	return nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	u *fakeUsers
	r *fakeRefreshRepo
	k *fakeKeys
}

func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) SecurityKeys(dbx.DBTX) securitykeys.Repository   { return m.k }
