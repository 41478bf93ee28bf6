package progress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/automoto/simple-platformer/persist"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{})
}

func TestLoad_FreshInstall(t *testing.T) {
	tr := NewTracker(persist.NewMemory(), quietLogger())

	assert.Equal(t, 0, tr.MaxUnlocked())
	assert.True(t, tr.IsUnlocked(0))
	assert.False(t, tr.IsUnlocked(1))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, level := range []int{0, 1, 4, 250} {
		items := persist.NewMemory()
		require.NoError(t, Save(items, Progress{MaxUnlockedLevel: level}))
		assert.Equal(t, Progress{MaxUnlockedLevel: level}, Load(items, quietLogger()))
	}
}

func TestLoad_FileFormat(t *testing.T) {
	items := persist.NewMemory()
	require.NoError(t, items.SaveItem(ItemKey, []byte(`{"max_unlocked_level": 3}`)))

	assert.Equal(t, 3, Load(items, quietLogger()).MaxUnlockedLevel)
}

func TestLoad_CorruptDefaults(t *testing.T) {
	var logs bytes.Buffer
	items := persist.NewMemory()
	require.NoError(t, items.SaveItem(ItemKey, []byte(`{"max_unlocked_level": "three"`)))

	p := Load(items, log.New(&logs))
	assert.Equal(t, 0, p.MaxUnlockedLevel)
	assert.Contains(t, logs.String(), "unreadable")
}

func TestLoad_NegativeDefaults(t *testing.T) {
	items := persist.NewMemory()
	require.NoError(t, items.SaveItem(ItemKey, []byte(`{"max_unlocked_level": -2}`)))

	assert.Equal(t, 0, Load(items, quietLogger()).MaxUnlockedLevel)
}

func TestTracker_UnlockIdempotent(t *testing.T) {
	items := persist.NewMemory()
	tr := NewTracker(items, quietLogger())

	assert.True(t, tr.Unlock(2))
	assert.Equal(t, 1, items.Writes(ItemKey))

	assert.False(t, tr.Unlock(2))
	assert.False(t, tr.Unlock(1))
	assert.Equal(t, 2, tr.MaxUnlocked())
	assert.Equal(t, 1, items.Writes(ItemKey), "no second write for known levels")

	assert.Equal(t, 2, Load(items, quietLogger()).MaxUnlockedLevel)
}

func TestTracker_Monotonic(t *testing.T) {
	tr := NewTracker(persist.NewMemory(), quietLogger())

	highest := 0
	for _, level := range []int{1, 0, 3, 2, 3, 5, 4} {
		tr.Unlock(level)
		assert.GreaterOrEqual(t, tr.MaxUnlocked(), highest)
		highest = tr.MaxUnlocked()
	}
	assert.Equal(t, 5, highest)
}

func TestTracker_Reset(t *testing.T) {
	items := persist.NewMemory()
	tr := NewTracker(items, quietLogger())
	tr.Unlock(4)

	tr.Reset()

	assert.Equal(t, 0, tr.MaxUnlocked())
	assert.Equal(t, 2, items.Writes(ItemKey))
	assert.Equal(t, 0, Load(items, quietLogger()).MaxUnlockedLevel)
}

func TestTracker_WriteFailureKeepsMemoryState(t *testing.T) {
	var logs bytes.Buffer
	items := persist.NewMemory()
	items.SaveErr = errors.New("read-only file system")
	tr := NewTracker(items, log.New(&logs))

	assert.True(t, tr.Unlock(3))
	assert.Equal(t, 3, tr.MaxUnlocked())
	assert.True(t, tr.IsUnlocked(3))
	assert.Contains(t, logs.String(), "could not save progress")
}
