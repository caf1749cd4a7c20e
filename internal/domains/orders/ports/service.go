package ports

import (
	"context"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/domain"
)

// Service exposes the order ledger use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*domain.EnrichedOrder, error)
	Get(ctx context.Context, id int64) (*domain.EnrichedOrder, error)
	Add(ctx context.Context, cmd types.AddOrderCommand) (*domain.Order, error)
	Remove(ctx context.Context, id int64) error
	TotalForDish(ctx context.Context, dishID int64) (*domain.DishTotal, error)
}
