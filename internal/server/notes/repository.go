package notes

import (
	"context"
)

// Repository persists notes. GetByID, Update and Delete never see
// soft-deleted records; they fail with common.ErrorNotFound instead.
type Repository interface {
	Create(ctx context.Context, note *Note) (*Note, error)
	GetByID(ctx context.Context, id int64) (*Note, error)
	Update(ctx context.Context, note *Note) error
	Delete(ctx context.Context, id int64) error
}
