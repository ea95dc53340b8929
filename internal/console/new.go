package console

import (
	"io"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/backend"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/listview"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/voice"
)

type implConsole struct {
	view    listview.View
	catalog voice.Catalog
	client  backend.Client
	out     io.Writer
	logger  logger.Logger
}

// New creates a Console writing its output to out
func New(view listview.View, catalog voice.Catalog, client backend.Client, out io.Writer, log logger.Logger) Console {
	return &implConsole{
		view:    view,
		catalog: catalog,
		client:  client,
		out:     out,
		logger:  log,
	}
}
