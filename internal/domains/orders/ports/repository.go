package ports

import (
	"context"
	"errors"

	dishdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/domain"
	userdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository owns the order ledger.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Order, error)
	ListByDish(ctx context.Context, dishID int64) ([]*domain.Order, error)
}

// UserLookup resolves the user an order references. The user memory repository satisfies it.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*userdomain.User, error)
}

// DishLookup resolves the dish an order references. The dish memory repository satisfies it.
type DishLookup interface {
	GetByID(ctx context.Context, id int64) (*dishdomain.Dish, error)
}
