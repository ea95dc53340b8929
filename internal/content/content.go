// Package content decides which text of a summary gets narrated.
package content

import (
	"strings"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

// FallbackExplanation is narrated when a summary carries no explanation
const FallbackExplanation = "This budget impacts gender equality and reduced inequalities in your region."

// untitled stands in for a blank document title so the result is never empty
const untitled = "Untitled document"

// Resolve returns the text to narrate for s in the given mode.
// Unknown modes resolve like ModeAll. The result is never empty.
func Resolve(s model.Summary, mode model.ContentMode) string {
	switch mode {
	case model.ModeTitle:
		return title(s)
	case model.ModeOriginal:
		return original(s)
	case model.ModeExplanation:
		return explanation(s)
	default:
		parts := []string{title(s), original(s), explanation(s)}
		for i, p := range parts {
			parts[i] = terminate(p)
		}
		return strings.Join(parts, " ")
	}
}

func title(s model.Summary) string {
	if t := strings.TrimSpace(s.DocumentTitle); t != "" {
		return t
	}
	return untitled
}

func original(s model.Summary) string {
	if t := strings.TrimSpace(s.OriginalText); t != "" {
		return t
	}
	if t := strings.TrimSpace(s.Text); t != "" {
		return t
	}
	return title(s)
}

func explanation(s model.Summary) string {
	if t := strings.TrimSpace(s.Explanation); t != "" {
		return t
	}
	return FallbackExplanation
}

// terminate ends a sentence with a full stop unless it already has terminal punctuation
func terminate(s string) string {
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
