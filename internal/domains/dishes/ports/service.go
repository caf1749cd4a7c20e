package ports

import (
	"context"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/application/types"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
)

// Service exposes the dish catalog use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*domain.Dish, error)
	Get(ctx context.Context, id int64) (*domain.Dish, error)
	Search(ctx context.Context, query types.SearchDishesQuery) ([]*domain.Dish, error)
	Add(ctx context.Context, cmd types.AddDishCommand) (*domain.Dish, error)
	UpdatePrice(ctx context.Context, cmd types.UpdateDishPriceCommand) (*domain.Dish, error)
	Remove(ctx context.Context, id int64) error
	RemoveAll(ctx context.Context) (int, error)
}
