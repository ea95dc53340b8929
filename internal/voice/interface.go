package voice

import (
	"context"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

// Inventory reports the synthesizer voices installed in the runtime
type Inventory interface {
	ListVoices(ctx context.Context) ([]model.Voice, error)
}

// Catalog maps the narration reference table onto the installed voices.
// Readers always see a complete snapshot; Refresh replaces it wholesale.
type Catalog interface {
	// Availability returns the current snapshot, computing it on first use
	Availability(ctx context.Context) Availability
	// Refresh re-reads the inventory and replaces the snapshot
	Refresh(ctx context.Context) Availability
	// Subscribe registers fn to receive every new snapshot. fn must not call Refresh.
	Subscribe(fn func(Availability)) (unsubscribe func())
}
