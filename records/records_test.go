package records

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", FileName))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_BestEmpty(t *testing.T) {
	store := openTemp(t)

	_, ok, err := store.Best()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SaveAndBest(t *testing.T) {
	store := openTemp(t)
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	_, err := store.Save(Run{Deaths: 12, Levels: 5, Duration: 3 * time.Minute, CompletedAt: base})
	require.NoError(t, err)
	_, err = store.Save(Run{Deaths: 4, Levels: 5, Duration: 5 * time.Minute, CompletedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = store.Save(Run{Deaths: 4, Levels: 5, Duration: 2 * time.Minute, CompletedAt: base.Add(2 * time.Hour)})
	require.NoError(t, err)

	best, ok, err := store.Best()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, best.Deaths)
	assert.Equal(t, 2*time.Minute, best.Duration)
	assert.True(t, best.CompletedAt.Equal(base.Add(2*time.Hour)))
}

func TestStore_Recent(t *testing.T) {
	store := openTemp(t)
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := store.Save(Run{Deaths: i, Levels: 3, CompletedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	runs, err := store.Recent(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, 4, runs[0].Deaths)
	assert.Equal(t, 2, runs[2].Deaths)
}
