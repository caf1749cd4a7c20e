package application

import (
	"context"
	"fmt"

	dishdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/ports"
	userdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/consistency"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/validation"
)

// Service orchestrates the order ledger. Orders reference users and dishes by id;
// references are checked when an order is placed and resolved again on every read.
type Service struct {
	repo   ports.Repository
	users  ports.UserLookup
	dishes ports.DishLookup
	gate   *consistency.Gate
}

type Option func(*Service)

// WithGate shares the cross-store gate with the dish catalog and user directory.
func WithGate(gate *consistency.Gate) Option {
	return func(s *Service) {
		if gate != nil {
			s.gate = gate
		}
	}
}

func NewService(repo ports.Repository, users ports.UserLookup, dishes ports.DishLookup, opts ...Option) *Service {
	s := &Service{repo: repo, users: users, dishes: dishes, gate: consistency.NewGate()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*domain.EnrichedOrder, error) {
	var result []*domain.EnrichedOrder
	err := s.gate.Read(func() error {
		orders, err := s.repo.List(ctx)
		if err != nil {
			return err
		}
		result = make([]*domain.EnrichedOrder, 0, len(orders))
		for _, order := range orders {
			enriched, err := s.enrich(ctx, order)
			if err != nil {
				return err
			}
			result = append(result, enriched)
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err, 0)
	}
	return result, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.EnrichedOrder, error) {
	var result *domain.EnrichedOrder
	err := s.gate.Read(func() error {
		order, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		result, err = s.enrich(ctx, order)
		return err
	})
	if err != nil {
		return nil, mapError(err, id)
	}
	return result, nil
}

// Add appends an order once both references resolve. Nothing is stored when either is missing.
func (s *Service) Add(ctx context.Context, cmd types.AddOrderCommand) (*domain.Order, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}
	order, err := domain.NewOrder(0, cmd.UserID, cmd.DishID)
	if err != nil {
		return nil, mapError(err, 0)
	}
	var saved *domain.Order
	err = s.gate.Write(func() error {
		if _, err := s.users.GetByID(ctx, cmd.UserID); err != nil {
			if isMissing(err) {
				return apperr.NotFound("user", cmd.UserID, err)
			}
			return fmt.Errorf("resolve user: %w", err)
		}
		if _, err := s.dishes.GetByID(ctx, cmd.DishID); err != nil {
			if isMissing(err) {
				return apperr.NotFound("dish", cmd.DishID, err)
			}
			return fmt.Errorf("resolve dish: %w", err)
		}
		saved, err = s.repo.Save(ctx, order)
		return err
	})
	if err != nil {
		return nil, mapError(err, 0)
	}
	return saved, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	return mapError(s.repo.Delete(ctx, id), id)
}

// TotalForDish prices every order of a dish at the dish's current price. A removed dish totals zero.
func (s *Service) TotalForDish(ctx context.Context, dishID int64) (*domain.DishTotal, error) {
	total := domain.DishTotal{DishID: dishID}
	err := s.gate.Read(func() error {
		dish, err := s.lookupDish(ctx, dishID)
		if err != nil || dish == nil {
			return err
		}
		orders, err := s.repo.ListByDish(ctx, dishID)
		if err != nil {
			return err
		}
		total = domain.TotalFor(dish, len(orders))
		return nil
	})
	if err != nil {
		return nil, mapError(err, 0)
	}
	return &total, nil
}

func (s *Service) enrich(ctx context.Context, order *domain.Order) (*domain.EnrichedOrder, error) {
	user, err := s.lookupUser(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	dish, err := s.lookupDish(ctx, order.DishID)
	if err != nil {
		return nil, err
	}
	return &domain.EnrichedOrder{Order: *order, User: user, Dish: dish}, nil
}

func (s *Service) lookupUser(ctx context.Context, id int64) (*userdomain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if isMissing(err) {
		return nil, nil
	}
	return user, err
}

func (s *Service) lookupDish(ctx context.Context, id int64) (*dishdomain.Dish, error) {
	dish, err := s.dishes.GetByID(ctx, id)
	if isMissing(err) {
		return nil, nil
	}
	return dish, err
}

var _ ports.Service = (*Service)(nil)
