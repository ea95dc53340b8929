package watcher

import "context"

// Watcher signals that the runtime's voice inventory may have changed
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called with the path (or schedule) that triggered the signal
type EventHandler func(ctx context.Context, source string) error
