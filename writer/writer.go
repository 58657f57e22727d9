// Package writer persists rendered source files: parallel multi-file
// output, a content-digest cache that skips byte-identical rewrites, and a
// watch mode that regenerates on model changes.
package writer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Renderer produces the text of one output file.
type Renderer interface {
	Render() (string, error)
}

// Task pairs an output path, relative to the writer's directory, with the
// renderer producing its content.
type Task struct {
	Path   string
	Source Renderer
}

// Metrics tracks persistence work.
type Metrics struct {
	FilesWritten int
	FilesSkipped int
	TotalBytes   int64
}

// Writer writes rendered files below one output directory.
type Writer struct {
	outDir  string
	workers int
	cache   *Cache

	mu      sync.Mutex
	metrics Metrics
}

// New creates a writer for the given output directory.
func New(outDir string, opts ...Option) *Writer {
	w := &Writer{outDir: outDir, workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Option configures a writer.
type Option func(*Writer)

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(w *Writer) {
		if n > 0 {
			w.workers = n
		}
	}
}

// WithCache attaches a digest cache; files whose rendered content matches
// the cached digest are not rewritten.
func WithCache(c *Cache) Option {
	return func(w *Writer) {
		w.cache = c
	}
}

// Metrics returns a copy of the accumulated metrics.
func (w *Writer) Metrics() Metrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// WriteAll renders and writes every task in parallel. The cache, when
// attached, is flushed after all tasks finish.
func (w *Writer) WriteAll(ctx context.Context, tasks []Task) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, t := range tasks {
		t := t
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.write(t)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if w.cache != nil {
		return w.cache.Flush()
	}
	return nil
}

func (w *Writer) write(t Task) error {
	text, err := t.Source.Render()
	if err != nil {
		return fmt.Errorf("render %s: %w", t.Path, err)
	}
	content := []byte(text)
	fullPath := filepath.Join(w.outDir, t.Path)

	if w.cache != nil && w.cache.Unchanged(t.Path, content) {
		w.mu.Lock()
		w.metrics.FilesSkipped++
		w.mu.Unlock()
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", t.Path, err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", t.Path, err)
	}
	if w.cache != nil {
		w.cache.Record(t.Path, content)
	}

	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(content))
	w.mu.Unlock()
	return nil
}
