package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/application/types"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/ports"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/consistency"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/validation"
)

// Service orchestrates the dish catalog use cases.
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

// NewService wires the catalog with its repository.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, gate: consistency.NewGate()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*domain.Dish, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Dish, error) {
	dish, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, id)
	}
	return dish, nil
}

// Search composes the optional name and price criteria. An empty result is reported as not found.
func (s *Service) Search(ctx context.Context, query types.SearchDishesQuery) ([]*domain.Dish, error) {
	filter := domain.Filter{Name: query.Name, Price: query.Price}
	result, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, mapError(err, 0)
	}
	if len(result) == 0 {
		return nil, apperr.NotFound("dish", describeFilter(filter), ports.ErrNotFound)
	}
	return result, nil
}

func (s *Service) Add(ctx context.Context, cmd types.AddDishCommand) (*domain.Dish, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}
	dish, err := domain.NewDish(0, cmd.Name, cmd.Price)
	if err != nil {
		return nil, mapError(err, 0)
	}
	saved, err := s.repo.Save(ctx, dish)
	if err != nil {
		return nil, mapError(err, 0)
	}
	return saved, nil
}

func (s *Service) UpdatePrice(ctx context.Context, cmd types.UpdateDishPriceCommand) (*domain.Dish, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}
	dish, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, mapError(err, cmd.ID)
	}
	if err := dish.UpdatePrice(cmd.Price); err != nil {
		return nil, mapError(err, cmd.ID)
	}
	saved, err := s.repo.Save(ctx, dish)
	if err != nil {
		return nil, mapError(err, cmd.ID)
	}
	return saved, nil
}

// Remove deletes a dish. Orders that reference it are kept and resolve to a null dish.
func (s *Service) Remove(ctx context.Context, id int64) error {
	return s.gate.Write(func() error {
		return mapError(s.repo.Delete(ctx, id), id)
	})
}

// RemoveAll empties the catalog and reports how many dishes were dropped.
func (s *Service) RemoveAll(ctx context.Context) (int, error) {
	var removed int
	err := s.gate.Write(func() error {
		n, err := s.repo.DeleteAll(ctx)
		removed = n
		return err
	})
	if err != nil {
		return 0, mapError(err, 0)
	}
	return removed, nil
}

func describeFilter(filter domain.Filter) string {
	var parts []string
	if filter.Name != nil {
		parts = append(parts, fmt.Sprintf("name~%q", *filter.Name))
	}
	if filter.Price != nil {
		parts = append(parts, fmt.Sprintf("price=%v", *filter.Price))
	}
	return strings.Join(parts, ",")
}

var _ ports.Service = (*Service)(nil)
