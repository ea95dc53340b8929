package narration

import (
	"context"
	"sync"
)

// Recorder is an in-memory Speaker. It records every utterance and leaves completion to the caller.
type Recorder struct {
	mu         sync.Mutex
	available  bool
	utterances []Utterance
	pending    []*recording
}

type recording struct {
	ctx  context.Context
	done func(error)
	once sync.Once
}

// NewRecorder creates a Recorder; available=false simulates a runtime with no speech support
func NewRecorder(available bool) *Recorder {
	return &Recorder{available: available}
}

func (r *Recorder) Available() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.available
}

func (r *Recorder) Speak(ctx context.Context, u Utterance, done func(error)) error {
	rec := &recording{ctx: ctx, done: done}

	r.mu.Lock()
	r.utterances = append(r.utterances, u)
	r.pending = append(r.pending, rec)
	r.mu.Unlock()

	// Cancellation finishes the utterance the way a real backend would
	go func() {
		<-ctx.Done()
		rec.finish(nil)
	}()
	return nil
}

// Utterances returns everything spoken so far
func (r *Recorder) Utterances() []Utterance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Utterance(nil), r.utterances...)
}

// Complete simulates the backend finishing utterance i naturally
func (r *Recorder) Complete(i int) {
	r.mu.Lock()
	rec := r.pending[i]
	r.mu.Unlock()
	rec.finish(nil)
}

// Cancelled reports whether utterance i was cancelled by its owner
func (r *Recorder) Cancelled(i int) bool {
	r.mu.Lock()
	rec := r.pending[i]
	r.mu.Unlock()
	return rec.ctx.Err() != nil
}

func (rec *recording) finish(err error) {
	rec.once.Do(func() { rec.done(err) })
}
