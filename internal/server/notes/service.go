package notes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/server/auth"
	"github.com/dmitrijs2005/notekeeper/internal/server/authz"
)

// Service implements the note operations. Every mutating or reading
// operation looks the note up first and then checks ownership, so a
// missing note reports NotFound before any access decision is made.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new note owned by the actor. Any authenticated actor
// may create notes.
func (s *Service) Create(ctx context.Context, actor *auth.Claims, description *string) (*Note, error) {

	now := time.Now().UTC()
	note := &Note{
		Description: description,
		UserID:      actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(ctx, note)
}

// Get returns the note if the actor owns it or is an admin.
func (s *Service) Get(ctx context.Context, actor *auth.Claims, id int64) (*Note, error) {

	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, note.UserID); err != nil {
		return nil, err
	}

	return note, nil
}

// Update replaces the note body and bumps the update timestamp.
func (s *Service) Update(ctx context.Context, actor *auth.Claims, id int64, description *string) (*Note, error) {

	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, note.UserID); err != nil {
		return nil, err
	}

	note.Description = description
	note.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// Delete removes the note logically; a later Get or Delete of the same
// id reports NotFound.
func (s *Service) Delete(ctx context.Context, actor *auth.Claims, id int64) error {

	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, note.UserID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
