package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Run("starts empty when no manifest exists", func(t *testing.T) {
		c, err := OpenCache(filepath.Join(t.TempDir(), "manifest.bin"))
		require.NoError(t, err)
		assert.False(t, c.Unchanged("A.cs", []byte("x")))
	})

	t.Run("run identity is a valid uuid", func(t *testing.T) {
		c, err := OpenCache(filepath.Join(t.TempDir(), "manifest.bin"))
		require.NoError(t, err)
		_, err = uuid.Parse(c.RunID())
		assert.NoError(t, err)
	})

	t.Run("record and check", func(t *testing.T) {
		c, err := OpenCache(filepath.Join(t.TempDir(), "manifest.bin"))
		require.NoError(t, err)
		c.Record("A.cs", []byte("x"))
		assert.True(t, c.Unchanged("A.cs", []byte("x")))
		assert.False(t, c.Unchanged("A.cs", []byte("y")))
		assert.False(t, c.Unchanged("B.cs", []byte("x")))
	})

	t.Run("flush and reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache", "manifest.bin")
		c, err := OpenCache(path)
		require.NoError(t, err)
		c.Record("A.cs", []byte("x"))
		require.NoError(t, c.Flush())

		reopened, err := OpenCache(path)
		require.NoError(t, err)
		assert.True(t, reopened.Unchanged("A.cs", []byte("x")))
		// Each open is a new run.
		assert.NotEqual(t, c.RunID(), reopened.RunID())
	})

	t.Run("corrupt manifest fails to open", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.bin")
		require.NoError(t, os.WriteFile(path, []byte("not msgpack at all"), 0o644))
		_, err := OpenCache(path)
		assert.Error(t, err)
	})
}
