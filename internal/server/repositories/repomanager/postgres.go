// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/securevault/internal/dbx"
	"github.com/dmitrijs2005/securevault/internal/logging"
	"github.com/dmitrijs2005/securevault/internal/server/migrations"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/securitykeys"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const migrationsDialect = "pgx"

// PostgresRepositoryManager vends PostgreSQL-backed repositories over any
// dbx.DBTX and owns the schema migrations.
type PostgresRepositoryManager struct {
	logger logging.Logger
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) SecurityKeys(db dbx.DBTX) securitykeys.Repository {
	return securitykeys.NewPostgresRepository(db)
}

// goose keeps its settings in package state; these seams let tests run
// without a live database.
var (
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}
	gooseVersion = func(ctx context.Context, db *sql.DB) (int64, error) {
		return goose.GetDBVersionContext(ctx, db)
	}
)

// RunMigrations applies every pending embedded migration and logs the schema
// version it ends on.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(logging.NewPrintfAdapter(m.logger.With("component", "migrations")))
	if err := goose.SetDialect(migrationsDialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	v, err := gooseVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	m.logger.Info(ctx, "schema up to date", "version", v)
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
// A nil logger is replaced by logging.Nop.
func NewPostgresRepositoryManager(logger logging.Logger) RepositoryManager {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &PostgresRepositoryManager{logger: logger}
}
