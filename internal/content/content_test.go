package content

import (
	"strings"
	"testing"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

func TestResolve(t *testing.T) {
	full := model.Summary{
		DocumentTitle: "Uganda Budget 2025/26",
		Text:          "The budget allocates $50M for women's health programs.",
		OriginalText:  "Section 4.2: maternal care",
		Explanation:   "More clinics near you",
	}
	bare := model.Summary{
		DocumentTitle: "Kenya Policy",
		Text:          "Roads are prioritised",
	}

	tests := []struct {
		name    string
		summary model.Summary
		mode    model.ContentMode
		want    string
	}{
		{"title", full, model.ModeTitle, "Uganda Budget 2025/26"},
		{"original prefers excerpt", full, model.ModeOriginal, "Section 4.2: maternal care"},
		{"original falls back to text", bare, model.ModeOriginal, "Roads are prioritised"},
		{"explanation present", full, model.ModeExplanation, "More clinics near you"},
		{"explanation fallback", bare, model.ModeExplanation, FallbackExplanation},
		{
			"all joins in order",
			full,
			model.ModeAll,
			"Uganda Budget 2025/26. Section 4.2: maternal care. More clinics near you.",
		},
		{
			"all with fallbacks",
			bare,
			model.ModeAll,
			"Kenya Policy. Roads are prioritised. " + FallbackExplanation,
		},
		{"unknown mode behaves as all", bare, model.ContentMode("x"), "Kenya Policy. Roads are prioritised. " + FallbackExplanation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.summary, tt.mode); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	summaries := []model.Summary{
		{},
		{DocumentTitle: "  "},
		{Text: "only text"},
		{OriginalText: "only excerpt"},
	}
	modes := []model.ContentMode{model.ModeTitle, model.ModeOriginal, model.ModeExplanation, model.ModeAll}

	for _, s := range summaries {
		for _, m := range modes {
			if strings.TrimSpace(Resolve(s, m)) == "" {
				t.Errorf("Resolve(%+v, %s) returned empty text", s, m)
			}
		}
	}
}

func TestResolveAllContainsTitle(t *testing.T) {
	summaries := []model.Summary{
		{DocumentTitle: "Uganda Budget 2025/26", Text: "a"},
		{DocumentTitle: "Ends with a question?", Explanation: "b"},
		{DocumentTitle: "Tanzania Health Act.", OriginalText: "c"},
	}

	for _, s := range summaries {
		all := Resolve(s, model.ModeAll)
		if !strings.HasPrefix(all, Resolve(s, model.ModeTitle)) {
			t.Errorf("Resolve(all) = %q does not start with title", all)
		}
	}
}
