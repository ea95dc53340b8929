package voice

import (
	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
)

// New creates a Catalog backed by inv
func New(inv Inventory, log logger.Logger) Catalog {
	return &implCatalog{
		inventory:   inv,
		logger:      log,
		subscribers: make(map[int]func(Availability)),
	}
}
