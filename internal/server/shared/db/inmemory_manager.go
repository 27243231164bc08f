package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/notekeeper/internal/server/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/users"
)

type InMemoryRepositoryManager struct {
	users users.Repository
	notes notes.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) Close() error {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Notes() notes.Repository {
	return m.notes
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		notes: notes.NewInMemoryRepository(),
	}
}
