package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/truthlens/truthlens/internal/common"
)

// InMemoryRepository keeps users in a map. Used by the in-memory repository
// manager for tests and local development without Postgres.
type InMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*User
	byKey map[string]string // email -> id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:  make(map[string]*User),
		byKey: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byKey[user.Email]; ok {
		return nil, common.ErrAlreadyExists
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	copied := *user
	r.byID[user.ID] = &copied
	r.byKey[user.Email] = user.ID
	return user, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	u := *r.byID[id]
	return &u, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *u
	return &copied, nil
}
