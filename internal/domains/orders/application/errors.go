package application

import (
	"errors"

	dishports "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/ports"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/ports"
	userports "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/ports"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
)

func mapError(err error, id int64) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrInvalidUser):
		return apperr.ValidationFrom("userId", "must be a positive integer", err)
	case errors.Is(err, domain.ErrInvalidDish):
		return apperr.ValidationFrom("dishId", "must be a positive integer", err)
	case errors.Is(err, ports.ErrNotFound):
		return apperr.NotFound("order", id, err)
	}
	return err
}

func isMissing(err error) bool {
	return errors.Is(err, userports.ErrNotFound) || errors.Is(err, dishports.ErrNotFound)
}
