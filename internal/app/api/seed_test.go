package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed_Embedded(t *testing.T) {
	data, err := LoadSeed("")
	require.NoError(t, err)
	require.Len(t, data.Dishes, 3)
	require.Len(t, data.Users, 3)
	require.Len(t, data.Orders, 3)
	assert.Equal(t, "Pâtes Carbonara", data.Dishes[2].Name)
	assert.Equal(t, int64(24600900), data.Users[0].Phone)
	assert.Equal(t, int64(2), data.Orders[0].UserID)
}

func TestLoadSeed_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dishes:\n  - name: Soupe\n    price: 4\n"), 0o600))

	data, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, data.Dishes, 1)
	assert.Empty(t, data.Users)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
