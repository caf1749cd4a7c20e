package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/ports"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/arena"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory dish catalog.
type Repository struct {
	mu     sync.RWMutex
	dishes *arena.Arena[domain.Dish]
}

func NewRepository() *Repository {
	return &Repository{dishes: arena.New(func(d domain.Dish) int64 { return d.ID })}
}

// Save appends a dish with a fresh id when ID is zero, otherwise replaces the stored dish.
func (r *Repository) Save(_ context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	clone := *dish
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		clone.ID = r.dishes.NextID()
	} else if _, ok := r.dishes.Get(clone.ID); !ok {
		return nil, ports.ErrNotFound
	}
	r.dishes.Put(clone)
	return &clone, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dish, ok := r.dishes.Get(id)
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &dish, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dishes.Remove(id) {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteAll(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dishes.Clear(), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return toPointers(r.dishes.Items()), nil
}

func (r *Repository) Find(_ context.Context, filter domain.Filter) ([]*domain.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return toPointers(r.dishes.Filter(filter.Matches)), nil
}

func toPointers(dishes []domain.Dish) []*domain.Dish {
	list := make([]*domain.Dish, 0, len(dishes))
	for i := range dishes {
		list = append(list, &dishes[i])
	}
	return list
}
