package repomanager

import (
	"context"
	"database/sql"

	"github.com/Shivam7262/Writely/internal/dbx"
	"github.com/Shivam7262/Writely/internal/server/repositories/documents"
	"github.com/Shivam7262/Writely/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// several repository calls inside one transaction by passing the same handle.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Documents(db dbx.DBTX) documents.Repository
}
