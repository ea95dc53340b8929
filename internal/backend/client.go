package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

type implClient struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

// APIError is returned for non-2xx responses
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.StatusCode, e.Body)
}

func (c *implClient) FetchSummaries(ctx context.Context, region, language string) ([]model.Summary, error) {
	q := url.Values{}
	q.Set("region", region)
	q.Set("language", language)

	c.logger.Debug(ctx, "Fetching summaries for region: %s, language: %s", region, language)

	// Trailing slash avoids a redirect from the API
	var summaries []model.Summary
	if err := c.do(ctx, http.MethodGet, "/api/summaries/?"+q.Encode(), nil, &summaries); err != nil {
		return nil, fmt.Errorf("fetch summaries: %w", err)
	}
	return summaries, nil
}

func (c *implClient) FetchRegions(ctx context.Context) ([]model.Region, error) {
	c.logger.Debug(ctx, "Fetching regions")

	var regions []model.Region
	if err := c.do(ctx, http.MethodGet, "/api/regions/", nil, &regions); err != nil {
		return nil, fmt.Errorf("fetch regions: %w", err)
	}
	return regions, nil
}

func (c *implClient) SubmitSuggestion(ctx context.Context, s model.Suggestion) (string, error) {
	var res struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/suggestions", s, &res); err != nil {
		return "", fmt.Errorf("submit suggestion: %w", err)
	}
	return res.Message, nil
}

func (c *implClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(data)}
		c.logger.Error(ctx, "API Error: %s %s: status %d, body %s", method, path, resp.StatusCode, apiErr.Body)
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
