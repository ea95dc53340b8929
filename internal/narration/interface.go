package narration

import (
	"context"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

// Utterance is one fully resolved narration request
type Utterance struct {
	Text string
	// Locale is the tag requested from the engine, e.g. "en-US"
	Locale string
	// Voice is the matched installed voice. Zero means let the engine choose by Locale.
	Voice model.Voice
}

// Speaker is the runtime speech backend.
// Speak must return without blocking on playback and must call done exactly once,
// from another goroutine, when playback ends, fails, or ctx is cancelled.
type Speaker interface {
	Available() bool
	Speak(ctx context.Context, u Utterance, done func(error)) error
}

// Controller is the narration control surface of one summary card
type Controller interface {
	Start(ctx context.Context) error
	Stop()
	SetMode(mode model.ContentMode)
	SetLanguage(code string)
	RepairLanguage(usable []string)
	Snapshot() Snapshot
}

// State of a Controller
type State int

const (
	Idle State = iota
	Speaking
)

func (s State) String() string {
	if s == Speaking {
		return "speaking"
	}
	return "idle"
}

// Snapshot is a consistent copy of a card's narration settings
type Snapshot struct {
	SummaryID    int64             `json:"summary_id"`
	Mode         model.ContentMode `json:"mode"`
	ModeLabel    string            `json:"mode_label"`
	Language     string            `json:"language"`
	LanguageName string            `json:"language_name"`
	Playing      bool              `json:"playing"`
	// Available is false when the runtime cannot speak at all
	Available bool `json:"available"`
}
