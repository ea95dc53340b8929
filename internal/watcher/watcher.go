package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
)

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

type implWatcher struct {
	voiceDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	settle   time.Duration
}

// Start monitors the voice directory until ctx is cancelled or the watcher is stopped
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Voice watcher started. Monitoring: %s", w.voiceDir)

	var timer *time.Timer
	var fire <-chan time.Time
	last := ""

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			w.logger.Info(ctx, "Voice watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&relevantOps == 0 {
				continue
			}

			w.logger.Debug(ctx, "Voice inventory event: %s %s", event.Op, event.Name)
			last = event.Name
			if timer == nil {
				timer = time.NewTimer(w.settle)
			} else {
				timer.Reset(w.settle)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.handler(ctx, last); err != nil {
				w.logger.Error(ctx, "Failed to handle voice change %s: %v", last, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
