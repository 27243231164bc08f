// Package db wires database connections to the repository implementations
// behind a single RepositoryManager.
package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/server/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Notes() notes.Repository
}

// NewRepositoryManager picks a backend by DSN shape: postgres URLs go to
// the pgx-backed manager, anything else is treated as a SQLite file path.
func NewRepositoryManager(dsn string) (RepositoryManager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewPostgresRepositoryManager(dsn)
	}
	return NewSQLiteRepositoryManager(dsn)
}
