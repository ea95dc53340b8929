package narration

import (
	"context"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/content"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/voice"
)

type implController struct {
	engine  *Engine
	summary model.Summary

	mu       sync.Mutex
	state    State
	mode     model.ContentMode
	language string
	// seq identifies the latest utterance; completions for older ones are ignored
	seq    uint64
	cancel context.CancelFunc
}

// Start narrates the card's current selection, preempting any other audible card.
// Without a speech backend it does nothing.
func (c *implController) Start(ctx context.Context) error {
	if !c.engine.speaker.Available() {
		c.engine.logger.Debug(ctx, "Narration unavailable, ignoring start for summary %d", c.summary.ID)
		return nil
	}

	// Read the catalog before taking any lock: a first read may refresh it and notify cards.
	avail := c.engine.catalog.Availability(ctx)

	var speakErr error
	c.engine.channel.claim(c, func() (uint64, bool) {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.haltLocked()

		u := c.utteranceLocked(avail)
		c.seq++
		seq := c.seq
		speechCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

		if err := c.engine.speaker.Speak(speechCtx, u, func(err error) { c.finished(seq, err) }); err != nil {
			cancel()
			speakErr = fmt.Errorf("speak summary %d: %w", c.summary.ID, err)
			return 0, false
		}

		c.state = Speaking
		c.cancel = cancel
		c.engine.logger.Info(ctx, "Narrating summary %d (%s, %s)", c.summary.ID, c.mode, u.Locale)
		return seq, true
	})

	return speakErr
}

// Stop silences the card. Stopping an idle card is a no-op.
func (c *implController) Stop() {
	c.mu.Lock()
	seq, stopped := c.haltLocked()
	c.mu.Unlock()

	if stopped {
		c.engine.channel.release(c, seq)
	}
}

func (c *implController) SetMode(mode model.ContentMode) {
	c.mu.Lock()
	seq, stopped := c.haltLocked()
	c.mode = mode
	c.mu.Unlock()

	if stopped {
		c.engine.channel.release(c, seq)
	}
}

// SetLanguage selects the narration language; codes outside the reference table select the default
func (c *implController) SetLanguage(code string) {
	if _, ok := model.LookupLanguage(code); !ok {
		code = model.DefaultLanguage
	}

	c.mu.Lock()
	seq, stopped := c.haltLocked()
	c.language = code
	c.mu.Unlock()

	if stopped {
		c.engine.channel.release(c, seq)
	}
}

// RepairLanguage reselects the language when it is no longer usable
func (c *implController) RepairLanguage(usable []string) {
	c.mu.Lock()
	current := c.language
	c.mu.Unlock()

	if repaired := voice.Repair(current, usable); repaired != current {
		c.SetLanguage(repaired)
	}
}

func (c *implController) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := model.Languages[0].Name
	if l, ok := model.LookupLanguage(c.language); ok {
		name = l.Name
	}

	return Snapshot{
		SummaryID:    c.summary.ID,
		Mode:         c.mode,
		ModeLabel:    c.mode.Label(),
		Language:     c.language,
		LanguageName: name,
		Playing:      c.state == Speaking,
		Available:    c.engine.speaker.Available(),
	}
}

// preempt is called by the Channel when another card claims it
func (c *implController) preempt(token uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq == token {
		c.haltLocked()
	}
}

// finished observes the backend's completion event
func (c *implController) finished(seq uint64, err error) {
	c.mu.Lock()
	current := c.seq == seq && c.state == Speaking
	if current {
		c.haltLocked()
	}
	c.mu.Unlock()

	if !current {
		return
	}
	c.engine.channel.release(c, seq)

	ctx := context.Background()
	if err != nil {
		c.engine.logger.Warn(ctx, "Narration of summary %d ended with error: %v", c.summary.ID, err)
		return
	}
	c.engine.logger.Debug(ctx, "Narration of summary %d completed", c.summary.ID)
}

// haltLocked cancels the in-flight utterance and returns to Idle.
// It reports the utterance that was stopped so the caller can release the channel.
func (c *implController) haltLocked() (uint64, bool) {
	if c.state != Speaking {
		return 0, false
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = Idle
	return c.seq, true
}

func (c *implController) utteranceLocked(avail voice.Availability) Utterance {
	lang, ok := model.LookupLanguage(c.language)
	if !ok {
		lang, _ = model.LookupLanguage(model.DefaultLanguage)
	}

	u := Utterance{
		Text:   content.Resolve(c.summary, c.mode),
		Locale: lang.Locale,
	}
	if v, ok := avail.MatchVoice(lang.Locale); ok {
		u.Voice = v
	}
	return u
}
