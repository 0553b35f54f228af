package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is how long Watch waits after the last write before
// reloading. Editors often write a file in several steps.
var DebounceDelay = 250 * time.Millisecond

// Watch reloads path into c whenever the file changes, until ctx is done.
// Parse errors are logged and the previous records are kept. The parent
// directory is watched because editors replace files by rename.
func Watch(ctx context.Context, path string, c *Catalog, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch catalog: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch catalog: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch catalog: %w", err)
	}
	logger.Info("watching catalog", "path", absPath)

	reload := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if name, _ := filepath.Abs(event.Name); name != absPath {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(DebounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			recs, err := Load(absPath)
			if err != nil {
				logger.Warn("catalog reload failed", "path", absPath, "error", err)
				continue
			}
			if err := c.Replace(recs); err != nil {
				logger.Warn("catalog reload rejected", "path", absPath, "error", err)
				continue
			}
			logger.Info("catalog reloaded", "path", absPath, "events", len(recs), "version", c.Version())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("catalog watcher error", "error", err)
		}
	}
}
