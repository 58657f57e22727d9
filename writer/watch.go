package writer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch regenerates on changes to the watched file: whenever it is written
// or recreated, regen is invoked after the debounce interval has passed
// without further events. Watch blocks until ctx is cancelled; regen errors
// are returned and stop the watch.
func Watch(ctx context.Context, path string, debounce time.Duration, regen func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file on save, which
	// would drop a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	target := filepath.Clean(path)
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		case <-fire:
			timer = nil
			fire = nil
			if err := regen(); err != nil {
				return err
			}
		}
	}
}
