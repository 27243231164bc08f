package notes

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

func (r *SQLiteRepository) Create(ctx context.Context, note *Note) (*Note, error) {

	query :=
		`INSERT INTO notes (description, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 `

	res, err := r.db.ExecContext(ctx, query,
		note.Description, note.UserID, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error reading inserted id: %w", err)
	}
	note.ID = id

	return note, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*Note, error) {
	query :=
		`SELECT id, description, user_id, created_at, updated_at FROM notes
		 WHERE id = ? AND deleted_at IS NULL
		 `

	note := &Note{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&note.ID, &note.Description, &note.UserID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return note, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, note *Note) error {
	query :=
		`UPDATE notes SET description = ?, updated_at = ?
		 WHERE id = ? AND deleted_at IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, note.Description, note.UpdatedAt, note.ID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return rowsAffectedOrNotFound(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`UPDATE notes SET deleted_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return rowsAffectedOrNotFound(res)
}
