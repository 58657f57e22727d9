package writer

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// manifest is the serialized cache state: the identity of the run that
// produced it and one content digest per written path.
type manifest struct {
	RunID   string            `msgpack:"run_id"`
	Digests map[string]string `msgpack:"digests"`
}

// Cache remembers the content digest of every written file so unchanged
// files are not rewritten on the next generation run.
type Cache struct {
	path string

	mu sync.Mutex
	m  manifest
}

// OpenCache loads the cache manifest at path, starting empty when the
// file does not exist yet. Every open starts a fresh run identity.
func OpenCache(path string) (*Cache, error) {
	c := &Cache{
		path: path,
		m:    manifest{RunID: uuid.NewString(), Digests: make(map[string]string)},
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache %s: %w", path, err)
	}
	var prev manifest
	if err := msgpack.Unmarshal(data, &prev); err != nil {
		return nil, fmt.Errorf("decode cache %s: %w", path, err)
	}
	if prev.Digests != nil {
		c.m.Digests = prev.Digests
	}
	return c, nil
}

// RunID returns the identity of the current generation run.
func (c *Cache) RunID() string {
	return c.m.RunID
}

// Unchanged reports whether the content digest for path matches the cached
// one.
func (c *Cache) Unchanged(path string, content []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m.Digests[path] == digest(content)
}

// Record stores the content digest for path.
func (c *Cache) Record(path string, content []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m.Digests[path] = digest(content)
}

// Flush writes the manifest back to disk.
func (c *Cache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := msgpack.Marshal(c.m)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory for cache %s: %w", c.path, err)
		}
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write cache %s: %w", c.path, err)
	}
	return nil
}

func digest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
