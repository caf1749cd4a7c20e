package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/ports"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/arena"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory user directory. Phones are indexed so uniqueness is checked under the same lock as the insert.
type Repository struct {
	mu      sync.RWMutex
	users   *arena.Arena[domain.User]
	byPhone map[int64]int64
}

func NewRepository() *Repository {
	return &Repository{
		users:   arena.New(func(u domain.User) int64 { return u.ID }),
		byPhone: map[int64]int64{},
	}
}

// Save appends a user with a fresh id when ID is zero, otherwise replaces the stored user.
func (r *Repository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	clone := *user
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, ok := r.byPhone[clone.Phone]; ok && owner != clone.ID {
		return nil, ports.ErrPhoneTaken
	}
	if clone.ID == 0 {
		clone.ID = r.users.NextID()
	} else if existing, ok := r.users.Get(clone.ID); ok {
		delete(r.byPhone, existing.Phone)
	} else {
		return nil, ports.ErrNotFound
	}
	r.users.Put(clone)
	r.byPhone[clone.Phone] = clone.ID
	return &clone, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users.Get(id)
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &user, nil
}

func (r *Repository) GetByPhone(_ context.Context, phone int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPhone[phone]
	if !ok {
		return nil, ports.ErrNotFound
	}
	user, ok := r.users.Get(id)
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &user, nil
}

// DeleteByName removes the first user whose name matches case-insensitively.
func (r *Repository) DeleteByName(_ context.Context, name string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users.Find(func(u domain.User) bool { return u.HasName(name) })
	if !ok {
		return nil, ports.ErrNotFound
	}
	r.users.Remove(user.ID)
	delete(r.byPhone, user.Phone)
	return &user, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := r.users.Items()
	list := make([]*domain.User, 0, len(users))
	for i := range users {
		list = append(list, &users[i])
	}
	return list, nil
}
