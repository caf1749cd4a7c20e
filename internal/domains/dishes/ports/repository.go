package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
)

var ErrNotFound = errors.New("dish not found")

// Repository owns the dish collection. Save assigns an id when the dish carries none.
type Repository interface {
	Save(ctx context.Context, dish *domain.Dish) (*domain.Dish, error)
	GetByID(ctx context.Context, id int64) (*domain.Dish, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int, error)
	List(ctx context.Context) ([]*domain.Dish, error)
	Find(ctx context.Context, filter domain.Filter) ([]*domain.Dish, error)
}
