// Package filter narrows a list of summaries down to those matching a search query.
package filter

import (
	"strings"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

// Visible returns the summaries whose title or body contains query, ignoring case.
// A blank query keeps everything. Order is preserved and the input is never modified.
func Visible(summaries []model.Summary, query string) []model.Summary {
	if strings.TrimSpace(query) == "" {
		return append([]model.Summary(nil), summaries...)
	}
	q := strings.ToLower(query)

	visible := make([]model.Summary, 0, len(summaries))
	for _, s := range summaries {
		if Matches(s, q) {
			visible = append(visible, s)
		}
	}
	return visible
}

// Matches reports whether s contains query in its title or body, ignoring case.
// Surrounding whitespace in query is significant.
func Matches(s model.Summary, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(s.DocumentTitle), q) ||
		strings.Contains(strings.ToLower(s.Body()), q)
}

// WomensRightsRegion is the region the women's rights collection is drawn from
const WomensRightsRegion = "UG"

// WomensRights keeps summaries about women's rights and gender equality:
// text mentioning "women" or "gender", or a title mentioning "women". Order is preserved.
func WomensRights(summaries []model.Summary) []model.Summary {
	out := make([]model.Summary, 0, len(summaries))
	for _, s := range summaries {
		text := strings.ToLower(s.Text)
		if strings.Contains(text, "women") || strings.Contains(text, "gender") ||
			strings.Contains(strings.ToLower(s.DocumentTitle), "women") {
			out = append(out, s)
		}
	}
	return out
}
