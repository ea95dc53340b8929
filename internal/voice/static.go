package voice

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

// StaticInventory is a deterministic Inventory whose voices are set by hand
type StaticInventory struct {
	mu     sync.Mutex
	voices []model.Voice
	err    error
}

// NewStaticInventory creates an inventory reporting voices
func NewStaticInventory(voices ...model.Voice) *StaticInventory {
	return &StaticInventory{voices: voices}
}

// Set replaces the reported voices and clears any configured error
func (s *StaticInventory) Set(voices ...model.Voice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voices = voices
	s.err = nil
}

// Fail makes ListVoices return err until the next Set
func (s *StaticInventory) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *StaticInventory) ListVoices(ctx context.Context) ([]model.Voice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]model.Voice(nil), s.voices...), nil
}
