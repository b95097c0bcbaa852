package refreshtokens

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

const insertQ = `(?s)^\s*INSERT\s+INTO\s+refresh_tokens\b.*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(insertQ).
		WithArgs("u1", "tok123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	exp, err := repo.Create(context.Background(), "u1", "tok123", 30*time.Minute)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), "u1", "tok123", time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")
}

func TestConsume(t *testing.T) {
	q := `(?s)DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+token\s*=\s*\$1\s+RETURNING\s+id,\s*user_id,\s*expires_at,\s*created_at`

	t.Run("deletes and returns the row", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		exp := time.Now().Add(time.Hour)
		mock.ExpectQuery(q).WithArgs("tok").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at", "created_at"}).
				AddRow("rt-1", "u1", exp, time.Now()))

		got, err := repo.Consume(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.UserID)
		assert.Equal(t, "tok", got.Token)
		assert.Equal(t, exp, got.Expires)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already consumed", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("tok").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at", "created_at"}))

		_, err := repo.Consume(context.Background(), "tok")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("tok").WillReturnError(errors.New("x"))

		_, err := repo.Consume(context.Background(), "tok")
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestDeleteForUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs("u2").
		WillReturnError(errors.New("boom"))

	require.NoError(t, repo.DeleteForUser(context.Background(), "u1"))
	err := repo.DeleteForUser(context.Background(), "u2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPruneExpired(t *testing.T) {
	const q = `DELETE FROM refresh_tokens WHERE user_id = \$1 AND expires_at < \$2`
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("reports removed rows", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs("u1", now).WillReturnResult(sqlmock.NewResult(0, 3))

		n, err := repo.PruneExpired(context.Background(), "u1", now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs("u1", now).WillReturnError(errors.New("conn reset"))

		_, err := repo.PruneExpired(context.Background(), "u1", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "conn reset")
	})
}
