package narration

import (
	"context"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/voice"
)

// Engine holds what all cards share: the voice catalog, the speaker and the single Channel
type Engine struct {
	catalog voice.Catalog
	speaker Speaker
	channel *Channel
	logger  logger.Logger
}

// NewEngine creates an Engine with its own Channel
func NewEngine(catalog voice.Catalog, speaker Speaker, log logger.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		speaker: speaker,
		channel: NewChannel(),
		logger:  log,
	}
}

// NewController creates an idle card for summary.
// The card starts in the summary's own language when it is narratable, repaired against the catalog.
func (e *Engine) NewController(ctx context.Context, summary model.Summary) Controller {
	lang := model.DefaultLanguage
	if _, ok := model.LookupLanguage(summary.Language); ok {
		lang = summary.Language
	}
	lang = voice.Repair(lang, e.catalog.Availability(ctx).Languages)

	return &implController{
		engine:   e,
		summary:  summary,
		mode:     model.DefaultMode,
		language: lang,
	}
}

// Silence stops whichever card is currently audible
func (e *Engine) Silence() {
	e.channel.Silence()
}

// Busy reports whether any card is speaking
func (e *Engine) Busy() bool {
	return e.channel.Busy()
}
