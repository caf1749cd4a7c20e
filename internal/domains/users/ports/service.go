package ports

import (
	"context"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/application/types"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
)

// Service exposes the user directory use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	FindByPhone(ctx context.Context, phone int64) (*domain.User, error)
	Add(ctx context.Context, cmd types.AddUserCommand) (*domain.User, error)
	RemoveByName(ctx context.Context, name string) error
}
