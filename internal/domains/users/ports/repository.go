package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
)

var ErrNotFound = errors.New("user not found")

// ErrPhoneTaken is returned when a phone number already belongs to another user.
var ErrPhoneTaken = errors.New("phone number already registered")

// Repository owns the user collection and the phone uniqueness invariant.
type Repository interface {
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByPhone(ctx context.Context, phone int64) (*domain.User, error)
	DeleteByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
