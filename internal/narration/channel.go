package narration

import "sync"

// holder is anything that can own the narration channel
type holder interface {
	// preempt stops the utterance identified by token if it is still playing
	preempt(token uint64)
}

// Channel is the single narration output shared by every card.
// At most one holder owns it; claiming it preempts the previous owner.
//
// Lock order is always Channel then Controller.
type Channel struct {
	mu    sync.Mutex
	owner holder
	token uint64
}

// NewChannel creates an unowned Channel
func NewChannel() *Channel {
	return &Channel{}
}

// claim preempts the current owner (unless it is h) and runs begin.
// When begin reports ok, h becomes the owner of the utterance identified by the returned token.
func (c *Channel) claim(h holder, begin func() (token uint64, ok bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.owner != nil && c.owner != h {
		c.owner.preempt(c.token)
	}
	c.owner, c.token = nil, 0

	token, ok := begin()
	if ok {
		c.owner, c.token = h, token
	}
	return ok
}

// release gives the channel up if h still owns it for token
func (c *Channel) release(h holder, token uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.owner == h && c.token == token {
		c.owner, c.token = nil, 0
	}
}

// Silence preempts whoever currently owns the channel
func (c *Channel) Silence() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.owner != nil {
		c.owner.preempt(c.token)
		c.owner, c.token = nil, 0
	}
}

// Busy reports whether some card owns the channel
func (c *Channel) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.owner != nil
}
