package securitykeys

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/dmitrijs2005/securevault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyCols = []string{"id", "user_id", "name", "type", "description", "value", "url", "username", "tags", "expires_at", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func keyRow(rows *sqlmock.Rows, id, name string, created time.Time, expires any) *sqlmock.Rows {
	return rows.AddRow(id, "u1", name, "password", "", "v", "", "", []byte(`["work"]`), expires, created, created)
}

func TestList_OrderedNewestFirst(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	t1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(keyCols)
	keyRow(rows, "k2", "newer", t1, nil)
	keyRow(rows, "k1", "older", t0, t1)

	mock.ExpectQuery(`(?s)FROM\s+security_keys\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC$`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), models.KeyQuery{UserID: "u1", OrderBy: "created_at", Descending: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "k2", got[0].ID)
	assert.Equal(t, []string{"work"}, got[0].Tags)
	assert.Nil(t, got[0].ExpiresAt)
	require.NotNil(t, got[1].ExpiresAt)
	assert.Equal(t, t1, *got[1].ExpiresAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EqualityFilter(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)WHERE\s+user_id\s*=\s*\$1\s+AND\s+type\s*=\s*\$2$`).
		WithArgs("u1", "api_key").
		WillReturnRows(sqlmock.NewRows(keyCols))

	got, err := repo.List(context.Background(), models.KeyQuery{UserID: "u1", Filter: &models.KeyFilter{Column: "type", Value: "api_key"}})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_RejectsUnknownColumns(t *testing.T) {
	repo, _ := newRepoWithMock(t)

	_, err := repo.List(context.Background(), models.KeyQuery{UserID: "u1", Filter: &models.KeyFilter{Column: "value; DROP TABLE users"}})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = repo.List(context.Background(), models.KeyQuery{UserID: "u1", OrderBy: "value"})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestList_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM\s+security_keys`).WillReturnError(errors.New("down"))

	_, err := repo.List(context.Background(), models.KeyQuery{UserID: "u1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select keys")
}

func TestGet(t *testing.T) {
	q := `(?s)FROM\s+security_keys\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2$`

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("k1", "u1").
			WillReturnRows(keyRow(sqlmock.NewRows(keyCols), "k1", "GitHub", time.Now(), nil))

		got, err := repo.Get(context.Background(), "u1", "k1")
		require.NoError(t, err)
		assert.Equal(t, "GitHub", got.Name)
	})

	t.Run("other user's key is not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("k1", "u2").WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "u2", "k1")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+security_keys\s*\(user_id,.*VALUES\s*\(\$1,.*\$9\)\s*RETURNING\s+id,`).
		WithArgs("u1", "GitHub Token", "api_key", "", "ghp_xxx", "", "", []byte(`[]`), nil).
		WillReturnRows(keyRow(sqlmock.NewRows(keyCols), "k1", "GitHub Token", now, nil))

	got, err := repo.Create(context.Background(), &models.SecurityKey{UserID: "u1", Name: "GitHub Token", Type: "api_key", Value: "ghp_xxx"})
	require.NoError(t, err)
	assert.Equal(t, "k1", got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	q := `(?s)UPDATE\s+security_keys\s+SET\s+name\s*=\s*\$3,.*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("updated", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).
			WithArgs("42", "u1", "Renamed", "password", "", "v", "", "", []byte(`["a","b"]`), expires).
			WillReturnRows(keyRow(sqlmock.NewRows(keyCols), "42", "Renamed", time.Now(), expires))

		got, err := repo.Update(context.Background(), &models.SecurityKey{
			ID: "42", UserID: "u1", Name: "Renamed", Type: "password", Value: "v",
			Tags: []string{"a", "b"}, ExpiresAt: &expires,
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(context.Background(), &models.SecurityKey{ID: "42", UserID: "u1"})
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestDelete(t *testing.T) {
	q := `(?s)DELETE\s+FROM\s+security_keys\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`

	t.Run("deleted", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs("7", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Delete(context.Background(), "u1", "7"))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs("7", "u1").WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.Delete(context.Background(), "u1", "7"), common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WillReturnError(errors.New("network error"))
		err := repo.Delete(context.Background(), "u1", "7")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network error")
	})
}
