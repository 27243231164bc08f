package notes

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// InMemoryRepository keeps notes in a mutex-guarded map. Used in tests.
type InMemoryRepository struct {
	mu     sync.Mutex
	items  map[int64]*Note
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[int64]*Note), nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, note *Note) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = r.nextID
	r.nextID++

	stored := *note
	r.items[note.ID] = &stored

	return note, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.items[id]
	if !ok || n.DeletedAt != nil {
		return nil, common.ErrorNotFound
	}

	found := *n
	return &found, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, note *Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.items[note.ID]
	if !ok || n.DeletedAt != nil {
		return common.ErrorNotFound
	}

	n.Description = note.Description
	n.UpdatedAt = note.UpdatedAt
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.items[id]
	if !ok || n.DeletedAt != nil {
		return common.ErrorNotFound
	}

	now := time.Now().UTC()
	n.DeletedAt = &now
	return nil
}
