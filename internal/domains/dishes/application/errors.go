package application

import (
	"errors"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/ports"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
)

func mapError(err error, id int64) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return apperr.ValidationFrom("name", "is required", err)
	case errors.Is(err, domain.ErrInvalidPrice):
		return apperr.ValidationFrom("price", "must be a positive number", err)
	case errors.Is(err, ports.ErrNotFound):
		if id == 0 {
			return apperr.NotFound("dish", nil, err)
		}
		return apperr.NotFound("dish", id, err)
	}
	return err
}
