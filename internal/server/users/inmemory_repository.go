package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// InMemoryRepository keeps users in a mutex-guarded map. Used in tests.
type InMemoryRepository struct {
	mu     sync.Mutex
	items  map[int64]*User
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[int64]*User), nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++

	stored := *user
	r.items[user.ID] = &stored

	return user, nil
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}
