package securitykeys

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/dmitrijs2005/securevault/internal/dbx"
	"github.com/dmitrijs2005/securevault/internal/server/models"
)

// Columns a listing may filter or order by. Values are the SQL column names.
var (
	filterColumns = map[string]string{
		"name":     "name",
		"type":     "type",
		"username": "username",
		"url":      "url",
	}
	orderColumns = map[string]string{
		"created_at": "created_at",
		"updated_at": "updated_at",
		"name":       "name",
		"type":       "type",
		"expires_at": "expires_at",
	}
)

const keyColumns = `id, user_id, name, type, description, value, url, username, tags, expires_at, created_at, updated_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, q models.KeyQuery) ([]*models.SecurityKey, error) {
	query := `SELECT ` + keyColumns + ` FROM ` + common.SecurityKeysTable + ` WHERE user_id = $1`
	args := []any{q.UserID}

	if q.Filter != nil {
		col, ok := filterColumns[q.Filter.Column]
		if !ok {
			return nil, fmt.Errorf("%w: cannot filter by %q", common.ErrorValidation, q.Filter.Column)
		}
		query += ` AND ` + col + ` = $2`
		args = append(args, q.Filter.Value)
	}

	if q.OrderBy != "" {
		col, ok := orderColumns[q.OrderBy]
		if !ok {
			return nil, fmt.Errorf("%w: cannot order by %q", common.ErrorValidation, q.OrderBy)
		}
		query += ` ORDER BY ` + col
		if q.Descending {
			query += ` DESC`
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select keys: %w", err)
	}
	defer rows.Close()

	result := make([]*models.SecurityKey, 0)
	for rows.Next() {
		key, err := scanKey(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.SecurityKey, error) {
	query := `SELECT ` + keyColumns + ` FROM ` + common.SecurityKeysTable + ` WHERE id = $1 AND user_id = $2`
	return scanOne(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *PostgresRepository) Create(ctx context.Context, key *models.SecurityKey) (*models.SecurityKey, error) {
	tags, err := encodeTags(key.Tags)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO ` + common.SecurityKeysTable + ` (user_id, name, type, description, value, url, username, tags, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + keyColumns

	return scanOne(r.db.QueryRowContext(ctx, query,
		key.UserID, key.Name, key.Type, key.Description, key.Value, key.URL, key.Username, tags, nullTime(key.ExpiresAt)))
}

func (r *PostgresRepository) Update(ctx context.Context, key *models.SecurityKey) (*models.SecurityKey, error) {
	tags, err := encodeTags(key.Tags)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE ` + common.SecurityKeysTable + `
		SET name = $3, type = $4, description = $5, value = $6, url = $7, username = $8,
			tags = $9, expires_at = $10, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + keyColumns

	return scanOne(r.db.QueryRowContext(ctx, query,
		key.ID, key.UserID, key.Name, key.Type, key.Description, key.Value, key.URL, key.Username, tags, nullTime(key.ExpiresAt)))
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM ` + common.SecurityKeysTable + ` WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOne(row *sql.Row) (*models.SecurityKey, error) {
	key, err := scanKey(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return key, nil
}

func scanKey(s scanner) (*models.SecurityKey, error) {
	var (
		key     models.SecurityKey
		tags    []byte
		expires sql.NullTime
	)
	if err := s.Scan(&key.ID, &key.UserID, &key.Name, &key.Type, &key.Description, &key.Value,
		&key.URL, &key.Username, &tags, &expires, &key.CreatedAt, &key.UpdatedAt); err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &key.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	}
	if expires.Valid {
		t := expires.Time
		key.ExpiresAt = &t
	}
	return &key, nil
}

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return b, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
