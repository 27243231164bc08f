package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/server/migrations"
	"github.com/dmitrijs2005/notekeeper/internal/server/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/users"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

type SQLiteRepositoryManager struct {
	db    *sql.DB
	users users.Repository
	notes notes.Repository
}

func (m *SQLiteRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *SQLiteRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SQLiteRepositoryManager) Notes() notes.Repository {
	return m.notes
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "sqlite"); err != nil {
		return err
	}

	return nil
}

func NewSQLiteRepositoryManager(path string) (RepositoryManager, error) {

	if path == "" {
		path = "notekeeper.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// serialize writers at the storage layer
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("db setup error: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("db setup error: %w", err)
	}

	users, err := users.NewSQLiteRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	notes, err := notes.NewSQLiteRepository(db)
	if err != nil {
		return nil, fmt.Errorf("note repo creation error: %w", err)
	}

	m := &SQLiteRepositoryManager{
		db:    db,
		users: users,
		notes: notes,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
