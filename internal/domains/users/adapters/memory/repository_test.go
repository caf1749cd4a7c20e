package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
	"github.com/Apurer/go-gin-restaurant-api/internal/domains/users/ports"
)

func TestRepository_SaveAndLookup(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.User{Name: "Alice", Phone: 12345678})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	byPhone, err := repo.GetByPhone(ctx, 12345678)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byPhone.Name)

	_, err = repo.GetByPhone(ctx, 87654321)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_SaveRejectsDuplicatePhone(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	_, err := repo.Save(ctx, &domain.User{Name: "Alice", Phone: 12345678})
	require.NoError(t, err)

	_, err = repo.Save(ctx, &domain.User{Name: "Bob", Phone: 12345678})
	require.ErrorIs(t, err, ports.ErrPhoneTaken)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_ConcurrentDuplicatePhoneOnlyOneWins(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Save(ctx, &domain.User{Name: "Racer", Phone: 11112222}); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestRepository_DeleteByNameRemovesFirstMatch(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	for _, u := range []domain.User{
		{Name: "Alice", Phone: 11111111},
		{Name: "alice", Phone: 22222222},
		{Name: "Bob", Phone: 33333333},
	} {
		user := u
		_, err := repo.Save(ctx, &user)
		require.NoError(t, err)
	}

	removed, err := repo.DeleteByName(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)

	// phone of the removed user is free again
	_, err = repo.Save(ctx, &domain.User{Name: "Carol", Phone: 11111111})
	require.NoError(t, err)

	_, err = repo.DeleteByName(ctx, "Zoe")
	require.ErrorIs(t, err, ports.ErrNotFound)
}
