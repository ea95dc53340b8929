package backend

import (
	"net/http"
	"strings"
	"time"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
)

// New creates an HTTP Client for the API at baseURL
func New(baseURL string, timeout time.Duration, log logger.Logger) Client {
	return &implClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// NewWithFallback wraps primary so transport failures degrade to the bundled dataset
func NewWithFallback(primary Client, log logger.Logger) Client {
	return &fallbackClient{
		primary: primary,
		logger:  log,
	}
}
