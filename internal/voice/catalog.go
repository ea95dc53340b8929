package voice

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
)

type implCatalog struct {
	inventory Inventory
	logger    logger.Logger

	current atomic.Pointer[Availability]

	// refreshMu serialises recomputation so an older inventory never lands after a newer one
	refreshMu sync.Mutex

	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(Availability)
}

func (c *implCatalog) Availability(ctx context.Context) Availability {
	if a := c.current.Load(); a != nil {
		return *a
	}
	return c.Refresh(ctx)
}

func (c *implCatalog) Refresh(ctx context.Context) Availability {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	voices, err := c.inventory.ListVoices(ctx)
	if err != nil {
		c.logger.Warn(ctx, "Voice inventory unavailable, assuming no voices: %v", err)
		voices = nil
	}

	a := Compute(voices)
	c.current.Store(&a)
	c.logger.Debug(ctx, "Voice catalog refreshed: %d voices, usable languages %v", len(voices), a.Languages)

	for _, fn := range c.snapshotSubscribers() {
		fn(a)
	}
	return a
}

func (c *implCatalog) Subscribe(fn func(Availability)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers, id)
	}
}

func (c *implCatalog) snapshotSubscribers() []func(Availability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fns := make([]func(Availability), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	return fns
}
