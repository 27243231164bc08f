package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *Note) (*Note, error) {

	query :=
		`INSERT INTO notes (description, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.Description, note.UserID, note.CreatedAt, note.UpdatedAt).Scan(&note.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Note, error) {
	query :=
		`SELECT id, description, user_id, created_at, updated_at FROM notes
		 WHERE id = $1 AND deleted_at IS NULL
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

func (r *PostgresRepository) Update(ctx context.Context, note *Note) error {
	query :=
		`UPDATE notes SET description = $1, updated_at = $2
		 WHERE id = $3 AND deleted_at IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, note.Description, note.UpdatedAt, note.ID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return rowsAffectedOrNotFound(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`UPDATE notes SET deleted_at = now()
		 WHERE id = $1 AND deleted_at IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return rowsAffectedOrNotFound(res)
}

func rowsAffectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
