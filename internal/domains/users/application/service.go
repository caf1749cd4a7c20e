package application

import (
	"context"
	"strings"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/application/types"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/ports"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/consistency"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/validation"
)

// Service exposes the user directory use cases.
type Service struct {
	repo ports.Repository
	gate *consistency.Gate
}

// Option customises the service.
type Option func(*Service)

// WithGate shares the cross-store gate so removals cannot interleave with order creation.
func WithGate(gate *consistency.Gate) Option {
	return func(s *Service) {
		if gate != nil {
			s.gate = gate
		}
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, gate: consistency.NewGate()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, id)
	}
	return user, nil
}

func (s *Service) FindByPhone(ctx context.Context, phone int64) (*domain.User, error) {
	user, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, mapError(err, phone)
	}
	return user, nil
}

// Add registers a user. A phone already in the directory is a conflict and leaves the directory unchanged.
func (s *Service) Add(ctx context.Context, cmd types.AddUserCommand) (*domain.User, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}
	user, err := domain.NewUser(0, cmd.Name, cmd.Phone)
	if err != nil {
		return nil, mapError(err, nil)
	}
	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, mapError(err, cmd.Phone)
	}
	return saved, nil
}

// RemoveByName deletes the first user, in registration order, whose name matches case-insensitively.
// Orders placed by that user are kept and resolve to a null user.
func (s *Service) RemoveByName(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("name", "is required")
	}
	return s.gate.Write(func() error {
		_, err := s.repo.DeleteByName(ctx, name)
		return mapError(err, name)
	})
}

var _ ports.Service = (*Service)(nil)
