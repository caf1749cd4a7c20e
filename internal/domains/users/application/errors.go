package application

import (
	"errors"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/ports"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
)

func mapError(err error, identifier any) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return apperr.ValidationFrom("name", "is required", err)
	case errors.Is(err, domain.ErrInvalidPhone):
		return apperr.ValidationFrom("tel", "must contain exactly 8 digits", err)
	case errors.Is(err, ports.ErrPhoneTaken):
		return apperr.Conflict("tel", identifier, err)
	case errors.Is(err, ports.ErrNotFound):
		return apperr.NotFound("user", identifier, err)
	}
	return err
}
