package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/securevault/internal/dbx"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/securitykeys"
	"github.com/dmitrijs2005/securevault/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to either the pool or a
// transaction, so services can compose several of them inside dbx.WithTx.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//		rt, err := rm.RefreshTokens(tx).Consume(ctx, token)
//		if err != nil {
//			return err
//		}
//		_, err = rm.Users(tx).GetByID(ctx, rt.UserID)
//		return err
//	})
type RepositoryManager interface {
	// RunMigrations brings the schema up to the latest embedded version.
	RunMigrations(context.Context, *sql.DB) error

	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	SecurityKeys(db dbx.DBTX) securitykeys.Repository
}
