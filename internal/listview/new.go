package listview

import (
	"github.com/nguyentantai21042004/wazigov-narrator/internal/backend"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/narration"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/voice"
)

// New creates a View. It follows catalog changes so every card keeps a speakable language.
func New(client backend.Client, catalog voice.Catalog, engine *narration.Engine, log logger.Logger) View {
	v := &implView{
		client: client,
		engine: engine,
		logger: log,
		cards:  make(map[int64]narration.Controller),
	}
	v.unsubscribe = catalog.Subscribe(v.repairLanguages)
	return v
}
