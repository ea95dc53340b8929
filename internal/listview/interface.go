package listview

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/narration"
)

// ErrCardNotFound is returned when the loaded summaries hold no card for the requested ID.
// Cards hidden by the current query are still found.
var ErrCardNotFound = errors.New("card not found")

// View binds a region/language selection to the summaries shown, one narration card per summary
type View interface {
	// LoadRegions fetches the selectable regions
	LoadRegions(ctx context.Context) error
	Regions() []model.Region

	// Select switches region and language and fetches their summaries.
	// The returned channel closes once that fetch has been applied or discarded as stale.
	Select(ctx context.Context, region, language string) <-chan struct{}
	Selection() (region, language string)
	State() State

	SetQuery(query string)
	Query() string
	Visible() []Card
	// VisibleFor lists the cards matching query without changing the view's own query
	VisibleFor(query string) Listing
	Counts() (visible, total int)
	EmptyReason() string
	Summaries() []model.Summary

	Controller(summaryID int64) (narration.Controller, error)

	// Close stops every card and drops pending fetches
	Close()
}

// State of the view's data
type State int

const (
	Loading State = iota
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "loading"
}

// Card pairs a visible summary with its narration settings
type Card struct {
	Summary   model.Summary      `json:"summary"`
	Narration narration.Snapshot `json:"narration"`
}

// Listing is one consistent read of the cards matching a query
type Listing struct {
	Cards       []Card
	Total       int
	EmptyReason string
}

// Empty-state messages
const (
	NoSearchResults = "No documents match your search. Try different keywords or clear your search."
	NoSummaries     = "No summaries found for this region and language."
	NoWomensRights  = "No women’s rights documents found."
)
