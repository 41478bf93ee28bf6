package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/simple-platformer/level"
)

func TestEmbeddedLevelsParse(t *testing.T) {
	loader, err := level.NewLoader(Levels())
	require.NoError(t, err)
	require.Equal(t, 5, loader.Count())

	for i := 0; i < loader.Count(); i++ {
		desc, err := loader.Load(i)
		require.NoError(t, err, loader.Files()[i])
		assert.NotEmpty(t, desc.Name)
		assert.Positive(t, desc.CountKind(level.Platform), desc.Name)
		assert.NotEqual(t, desc.Spawn, desc.Exit, desc.Name)
	}
	assert.Equal(t, "Spike Pit", loader.MustLoad(4).Name)
}
