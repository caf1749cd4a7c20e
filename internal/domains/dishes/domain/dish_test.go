package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDish(t *testing.T) {
	dish, err := NewDish(1, "  Pizza Margherita ", 10)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Margherita", dish.Name)

	_, err = NewDish(1, " ", 10)
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewDish(1, "Pizza", 0)
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestFilterMatches(t *testing.T) {
	pizza := Dish{ID: 1, Name: "Pizza Margherita", Price: 10}
	name := "PIZZA"
	price := 10.0
	other := 8.0

	assert.True(t, Filter{}.Matches(pizza))
	assert.True(t, Filter{Name: &name}.Matches(pizza))
	assert.True(t, Filter{Name: &name, Price: &price}.Matches(pizza))
	assert.False(t, Filter{Name: &name, Price: &other}.Matches(pizza))
	assert.False(t, Filter{Price: &other}.Matches(pizza))
	assert.True(t, Filter{}.IsEmpty())
	assert.False(t, Filter{Price: &price}.IsEmpty())
}
