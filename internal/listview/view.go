package listview

import (
	"context"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/backend"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/filter"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/narration"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/voice"
)

type implView struct {
	client      backend.Client
	engine      *narration.Engine
	logger      logger.Logger
	unsubscribe func()

	mu       sync.Mutex
	closed   bool
	regions  []model.Region
	region   string
	language string
	state    State
	query    string

	// seq is bumped on every selection; only the fetch carrying the latest value may apply
	seq         uint64
	cancelFetch context.CancelFunc

	summaries []model.Summary
	cards     map[int64]narration.Controller
}

func (v *implView) LoadRegions(ctx context.Context) error {
	regions, err := v.client.FetchRegions(ctx)
	if err != nil {
		return fmt.Errorf("load regions: %w", err)
	}

	v.mu.Lock()
	v.regions = regions
	v.mu.Unlock()
	return nil
}

func (v *implView) Regions() []model.Region {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]model.Region(nil), v.regions...)
}

func (v *implView) Select(ctx context.Context, region, language string) <-chan struct{} {
	done := make(chan struct{})

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		close(done)
		return done
	}
	v.seq++
	seq := v.seq
	v.region, v.language = region, language
	v.state = Loading
	if v.cancelFetch != nil {
		v.cancelFetch()
	}
	fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	v.cancelFetch = cancel
	v.mu.Unlock()

	v.logger.Info(ctx, "Loading summaries for region %s, language %s", region, language)

	go func() {
		defer close(done)
		defer cancel()

		summaries, err := v.client.FetchSummaries(fetchCtx, region, language)
		v.apply(fetchCtx, seq, summaries, err)
	}()

	return done
}

// apply installs a fetch result if it is still the latest request
func (v *implView) apply(ctx context.Context, seq uint64, summaries []model.Summary, err error) {
	if !v.current(seq) {
		v.logger.Debug(ctx, "Discarding stale summaries response #%d", seq)
		return
	}
	if err != nil {
		v.logger.Error(ctx, "Error loading summaries: %v", err)
		summaries = nil
	}

	// Controllers read the voice catalog, which may notify this view; build them unlocked.
	cards := make(map[int64]narration.Controller, len(summaries))
	for _, s := range summaries {
		cards[s.ID] = v.engine.NewController(ctx, s)
	}

	v.mu.Lock()
	if v.closed || v.seq != seq {
		v.mu.Unlock()
		v.logger.Debug(ctx, "Discarding stale summaries response #%d", seq)
		return
	}
	old := v.cards
	v.summaries = summaries
	v.cards = cards
	v.state = Loaded
	v.cancelFetch = nil
	v.mu.Unlock()

	for _, c := range old {
		c.Stop()
	}
	v.logger.Info(ctx, "Loaded %d summaries", len(summaries))
}

func (v *implView) current(seq uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.closed && v.seq == seq
}

func (v *implView) Selection() (string, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.region, v.language
}

func (v *implView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *implView) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = query
}

func (v *implView) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

func (v *implView) Summaries() []model.Summary {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]model.Summary(nil), v.summaries...)
}

func (v *implView) Visible() []Card {
	v.mu.Lock()
	query := v.query
	v.mu.Unlock()
	return v.VisibleFor(query).Cards
}

func (v *implView) VisibleFor(query string) Listing {
	v.mu.Lock()
	visible := filter.Visible(v.summaries, query)
	controllers := make([]narration.Controller, len(visible))
	for i, s := range visible {
		controllers[i] = v.cards[s.ID]
	}
	total := len(v.summaries)
	reason := emptyReason(v.state, len(visible), total)
	v.mu.Unlock()

	cards := make([]Card, len(visible))
	for i, s := range visible {
		cards[i] = Card{Summary: s, Narration: controllers[i].Snapshot()}
	}
	return Listing{Cards: cards, Total: total, EmptyReason: reason}
}

func (v *implView) Counts() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(filter.Visible(v.summaries, v.query)), len(v.summaries)
}

func (v *implView) EmptyReason() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return emptyReason(v.state, len(filter.Visible(v.summaries, v.query)), len(v.summaries))
}

// emptyReason explains an empty loaded list; it is blank while loading or when something is shown
func emptyReason(state State, visible, total int) string {
	switch {
	case state != Loaded || visible > 0:
		return ""
	case total > 0:
		return NoSearchResults
	default:
		return NoSummaries
	}
}

func (v *implView) Controller(summaryID int64) (narration.Controller, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	c, ok := v.cards[summaryID]
	if !ok {
		return nil, fmt.Errorf("summary %d: %w", summaryID, ErrCardNotFound)
	}
	return c, nil
}

func (v *implView) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.seq++
	if v.cancelFetch != nil {
		v.cancelFetch()
		v.cancelFetch = nil
	}
	cards := v.cards
	v.cards = make(map[int64]narration.Controller)
	v.summaries = nil
	v.mu.Unlock()

	v.unsubscribe()
	for _, c := range cards {
		c.Stop()
	}
}

// repairLanguages keeps every card on a language the runtime can still speak
func (v *implView) repairLanguages(a voice.Availability) {
	v.mu.Lock()
	cards := make([]narration.Controller, 0, len(v.cards))
	for _, c := range v.cards {
		cards = append(cards, c)
	}
	v.mu.Unlock()

	for _, c := range cards {
		c.RepairLanguage(a.Languages)
	}
}
