package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, user *User) (*User, error) {

	query :=
		`INSERT INTO users (name, username, password_hash, is_admin, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.Name, user.Username, user.PasswordHash, user.IsAdmin,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error reading inserted id: %w", err)
	}
	user.ID = id

	return user, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query :=
		`SELECT id, name, username, password_hash, is_admin, created_at, updated_at FROM users
		 WHERE username = ?
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Name, &user.Username, &user.PasswordHash,
		&user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}
