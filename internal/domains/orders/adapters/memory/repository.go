package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/arena"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps orders in memory in the order they were placed.
type Repository struct {
	mu     sync.RWMutex
	orders *arena.Arena[domain.Order]
}

func NewRepository() *Repository {
	return &Repository{orders: arena.New(func(o domain.Order) int64 { return o.ID })}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		clone.ID = r.orders.NextID()
	} else if _, ok := r.orders.Get(clone.ID); !ok {
		return nil, ports.ErrNotFound
	}
	r.orders.Put(clone)
	return &clone, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders.Get(id)
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &order, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.orders.Remove(id) {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return toPointers(r.orders.Items()), nil
}

func (r *Repository) ListByDish(_ context.Context, dishID int64) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return toPointers(r.orders.Filter(func(o domain.Order) bool { return o.DishID == dishID })), nil
}

func toPointers(orders []domain.Order) []*domain.Order {
	out := make([]*domain.Order, 0, len(orders))
	for i := range orders {
		out = append(out, &orders[i])
	}
	return out
}
