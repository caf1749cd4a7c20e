package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/ports"
)

func seed(t *testing.T, repo *Repository, dishes ...domain.Dish) {
	t.Helper()
	for _, d := range dishes {
		dish := d
		_, err := repo.Save(context.Background(), &dish)
		require.NoError(t, err)
	}
}

func TestRepository_SaveAssignsSequentialIDs(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	seed(t, repo, domain.Dish{Name: "Pizza Margherita", Price: 10}, domain.Dish{Name: "Burger Maison", Price: 8})

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
}

func TestRepository_SaveUnknownIDDoesNotResurrect(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	seed(t, repo, domain.Dish{Name: "Pizza", Price: 10})
	require.NoError(t, repo.Delete(ctx, 1))

	_, err := repo.Save(ctx, &domain.Dish{ID: 1, Name: "Pizza", Price: 12})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_DeleteThenAddDoesNotReuseIDs(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	seed(t, repo,
		domain.Dish{Name: "Pizza", Price: 10},
		domain.Dish{Name: "Burger", Price: 8},
		domain.Dish{Name: "Pasta", Price: 12},
	)
	require.NoError(t, repo.Delete(ctx, 1))
	require.ErrorIs(t, repo.Delete(ctx, 1), ports.ErrNotFound)

	added, err := repo.Save(ctx, &domain.Dish{Name: "Salad", Price: 6})
	require.NoError(t, err)
	assert.Equal(t, int64(4), added.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	ids := make([]int64, 0, len(list))
	for _, d := range list {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []int64{2, 3, 4}, ids)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	seed(t, repo, domain.Dish{Name: "Pizza", Price: 10})

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	got.Price = 99

	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, again.Price)
}

func TestRepository_FindAndDeleteAll(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	seed(t, repo,
		domain.Dish{Name: "Pizza Margherita", Price: 10},
		domain.Dish{Name: "Pizza Regina", Price: 12},
		domain.Dish{Name: "Burger", Price: 10},
	)
	name := "pizza"
	found, err := repo.Find(ctx, domain.Filter{Name: &name})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
