package backend

import (
	"context"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

// Client talks to the summaries API
type Client interface {
	FetchSummaries(ctx context.Context, region, language string) ([]model.Summary, error)
	FetchRegions(ctx context.Context) ([]model.Region, error)
	SubmitSuggestion(ctx context.Context, s model.Suggestion) (string, error)
}
