package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/validation"
)

func TestToAddDishCommand(t *testing.T) {
	cmd, err := ToAddDishCommand(validation.Payload{"name": "Pizza Margherita", "price": "10"})
	require.NoError(t, err)
	require.Equal(t, "Pizza Margherita", cmd.Name)
	require.Equal(t, 10.0, cmd.Price)

	_, err = ToAddDishCommand(validation.Payload{"name": "Pizza"})
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "price", verr.Field)

	_, err = ToAddDishCommand(validation.Payload{"name": "Pizza", "price": "free"})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "price", verr.Field)
}

func TestToSearchQuery(t *testing.T) {
	query, err := ToSearchQuery(" pizza ", "")
	require.NoError(t, err)
	require.NotNil(t, query.Name)
	require.Equal(t, "pizza", *query.Name)
	require.Nil(t, query.Price)

	query, err = ToSearchQuery("", "12")
	require.NoError(t, err)
	require.Nil(t, query.Name)
	require.Equal(t, 12.0, *query.Price)

	_, err = ToSearchQuery("", "cheap")
	require.True(t, apperr.IsValidation(err))
}
