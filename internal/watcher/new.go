package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
)

// New creates a Watcher on voiceDir. Bursts of events within settle are coalesced into one call.
func New(voiceDir string, handler EventHandler, log logger.Logger, settle time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(voiceDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Package installs write many files at once
	if settle <= 0 {
		settle = 500 * time.Millisecond
	}

	return &implWatcher{
		voiceDir: voiceDir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		settle:   settle,
	}, nil
}
