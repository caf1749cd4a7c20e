package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dishmemory "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/adapters/memory"
	dishapp "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/application"
	dishtypes "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/application/types"
	ordermemory "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/adapters/memory"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/application/types"
	usermemory "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/adapters/memory"
	userapp "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/application"
	usertypes "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/application/types"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/consistency"
)

type fixture struct {
	orders *Service
	dishes *dishapp.Service
	users  *userapp.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	gate := consistency.NewGate()
	dishRepo := dishmemory.NewRepository()
	userRepo := usermemory.NewRepository()
	f := fixture{
		orders: NewService(ordermemory.NewRepository(), userRepo, dishRepo, WithGate(gate)),
		dishes: dishapp.NewService(dishRepo, dishapp.WithGate(gate)),
		users:  userapp.NewService(userRepo, userapp.WithGate(gate)),
	}
	for _, cmd := range []dishtypes.AddDishCommand{
		{Name: "Pizza Margherita", Price: 10},
		{Name: "Burger Maison", Price: 8},
		{Name: "Pâtes Carbonara", Price: 12},
	} {
		_, err := f.dishes.Add(ctx, cmd)
		require.NoError(t, err)
	}
	for _, cmd := range []usertypes.AddUserCommand{
		{Name: "Ali", Phone: 24600900},
		{Name: "Mohamed", Phone: 23129129},
		{Name: "Karim", Phone: 25123123},
	} {
		_, err := f.users.Add(ctx, cmd)
		require.NoError(t, err)
	}
	for _, cmd := range []types.AddOrderCommand{
		{UserID: 2, DishID: 1},
		{UserID: 3, DishID: 3},
		{UserID: 1, DishID: 1},
	} {
		_, err := f.orders.Add(ctx, cmd)
		require.NoError(t, err)
	}
	return f
}

func TestGet_EnrichesOrder(t *testing.T) {
	f := newFixture(t)

	order, err := f.orders.Get(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, order.User)
	require.NotNil(t, order.Dish)
	assert.Equal(t, "Mohamed", order.User.Name)
	assert.Equal(t, "Pizza Margherita", order.Dish.Name)
	assert.Equal(t, 10.0, order.Dish.Price)

	_, err = f.orders.Get(context.Background(), 99)
	require.True(t, apperr.IsNotFound(err))
}

func TestTotalForDish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	total, err := f.orders.TotalForDish(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, total.Total)

	total, err = f.orders.TotalForDish(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, total.Total)

	_, err = f.dishes.UpdatePrice(ctx, dishtypes.UpdateDishPriceCommand{ID: 1, Price: 11})
	require.NoError(t, err)
	total, err = f.orders.TotalForDish(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 22.0, total.Total)

	require.NoError(t, f.dishes.Remove(ctx, 1))
	total, err = f.orders.TotalForDish(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total.DishID)
	assert.Zero(t, total.Total)
}

func TestAdd_UnresolvedReferencesAppendNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.orders.Add(ctx, types.AddOrderCommand{UserID: 42, DishID: 1})
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user", nf.Entity)

	_, err = f.orders.Add(ctx, types.AddOrderCommand{UserID: 1, DishID: 42})
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "dish", nf.Entity)

	_, err = f.orders.Add(ctx, types.AddOrderCommand{UserID: 0, DishID: 1})
	require.True(t, apperr.IsValidation(err))

	list, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	added, err := f.orders.Add(ctx, types.AddOrderCommand{UserID: 1, DishID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), added.ID)
}

func TestList_DanglingReferencesResolveToNil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.RemoveByName(ctx, "mohamed"))
	require.NoError(t, f.dishes.Remove(ctx, 3))

	list, err := f.orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Nil(t, list[0].User)
	assert.NotNil(t, list[0].Dish)
	assert.Nil(t, list[1].Dish)
	assert.NotNil(t, list[1].User)

	first, err := f.orders.List(ctx)
	require.NoError(t, err)
	second, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.orders.Remove(ctx, 2))
	require.True(t, apperr.IsNotFound(f.orders.Remove(ctx, 2)))

	list, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, []int64{list[0].ID, list[1].ID})
}

func TestAdd_RacesWithDishRemoval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, _ = f.orders.Add(ctx, types.AddOrderCommand{UserID: 1, DishID: 2})
		}
	}()
	go func() {
		defer wg.Done()
		_ = f.dishes.Remove(ctx, 2)
	}()
	wg.Wait()

	// every order placed for dish 2 was created before the removal
	list, err := f.orders.List(ctx)
	require.NoError(t, err)
	for _, o := range list {
		if o.DishID == 2 {
			assert.Nil(t, o.Dish)
		}
	}
	_, err = f.orders.Add(ctx, types.AddOrderCommand{UserID: 1, DishID: 2})
	require.True(t, apperr.IsNotFound(err))
}
