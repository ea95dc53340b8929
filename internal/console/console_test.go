package console

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/listview"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/narration"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/voice"
)

type stubClient struct {
	summaries   map[string][]model.Summary
	suggestions []model.Suggestion
}

func (c *stubClient) FetchSummaries(ctx context.Context, region, language string) ([]model.Summary, error) {
	var out []model.Summary
	for _, s := range c.summaries[region] {
		if s.Language == language {
			out = append(out, s)
		}
	}
	return out, nil
}

func (c *stubClient) FetchRegions(ctx context.Context) ([]model.Region, error) {
	return []model.Region{{ID: 1, Name: "Uganda", Code: "UG"}, {ID: 2, Name: "Kenya", Code: "KE"}}, nil
}

func (c *stubClient) SubmitSuggestion(ctx context.Context, s model.Suggestion) (string, error) {
	c.suggestions = append(c.suggestions, s)
	return "Thanks for your suggestion!", nil
}

type fixture struct {
	client   *stubClient
	recorder *narration.Recorder
	view     listview.View
	out      *bytes.Buffer
	console  Console
}

func newFixture(t *testing.T, speechAvailable bool) *fixture {
	t.Helper()
	client := &stubClient{summaries: map[string][]model.Summary{
		"UG": {
			{ID: 1, DocumentTitle: "Uganda Budget 2025/26", Text: "Funding for women's health.", Language: "en",
				FactCheck: model.FactCheck{SourceURL: "https://example.com/ug.pdf", IsVerified: true}},
			{ID: 3, DocumentTitle: "Uganda Budget 2025/26", Text: "Regional development and rural roads.", Language: "en"},
			{ID: 2, DocumentTitle: "Bajeti ya Uganda", Text: "Afya ya wanawake.", Language: "sw"},
		},
	}}

	catalog := voice.New(voice.NewStaticInventory(model.Voice{Locale: "en-US"}, model.Voice{Locale: "sw"}), logger.Discard())
	rec := narration.NewRecorder(speechAvailable)
	engine := narration.NewEngine(catalog, rec, logger.Discard())
	view := listview.New(client, catalog, engine, logger.Discard())
	t.Cleanup(view.Close)

	select {
	case <-view.Select(context.Background(), "UG", "en"):
	case <-time.After(2 * time.Second):
		t.Fatal("initial fetch did not settle")
	}

	out := &bytes.Buffer{}
	return &fixture{
		client:   client,
		recorder: rec,
		view:     view,
		out:      out,
		console:  New(view, catalog, client, out, logger.Discard()),
	}
}

func (f *fixture) exec(t *testing.T, line string) string {
	t.Helper()
	f.out.Reset()
	if err := f.console.Execute(context.Background(), line); err != nil {
		t.Fatalf("Execute(%q) error = %v", line, err)
	}
	return f.out.String()
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"", Command{}},
		{"   ", Command{}},
		{"list", Command{Name: "list", Args: []string{}}},
		{"  PLAY 3 ", Command{Name: "play", Args: []string{"3"}}},
		{"search women health", Command{Name: "search", Args: []string{"women", "health"}}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := Parse(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCommandArgs(t *testing.T) {
	cmd := Parse("suggest https://example.com Health budget 2025")
	if got := cmd.Rest(1); got != "Health budget 2025" {
		t.Errorf("Rest(1) = %q", got)
	}
	if got := cmd.Rest(9); got != "" {
		t.Errorf("Rest(9) = %q, want empty", got)
	}
	if _, err := Parse("play x").ID(0); err == nil {
		t.Error("ID() should reject non numeric input")
	}
	if _, err := Parse("play").ID(0); err == nil {
		t.Error("ID() should reject missing input")
	}
}

func TestExecuteErrors(t *testing.T) {
	f := newFixture(t, true)

	tests := []struct {
		name string
		line string
		want error
	}{
		{"unknown command", "dance", ErrUnknownCommand},
		{"quit", "quit", ErrQuit},
		{"unknown card", "play 99", listview.ErrCardNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.console.Execute(context.Background(), tt.line)
			if !errors.Is(err, tt.want) {
				t.Errorf("Execute(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}

	for _, line := range []string{"mode 1 chorus", "voice 1 fr", "language xx", "region", "suggest onlyurl"} {
		if err := f.console.Execute(context.Background(), line); err == nil {
			t.Errorf("Execute(%q) should fail", line)
		}
	}
}

func TestListAndSearch(t *testing.T) {
	f := newFixture(t, true)

	out := f.exec(t, "list")
	for _, want := range []string{
		"Region: UG  Language: English",
		"Showing 2 of 2 summaries",
		"[1] Uganda Budget 2025/26",
		"Fact check: Verified (https://example.com/ug.pdf)",
		"Narration: Everything, English, idle",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}

	out = f.exec(t, "search WOMEN")
	if !strings.Contains(out, "Showing 1 of 2 summaries") || strings.Contains(out, "[3]") {
		t.Errorf("search output:\n%s", out)
	}

	out = f.exec(t, "search nothing-matches")
	if !strings.Contains(out, listview.NoSearchResults) {
		t.Errorf("search output missing empty state:\n%s", out)
	}

	out = f.exec(t, "search")
	if !strings.Contains(out, "Showing 2 of 2 summaries") {
		t.Errorf("clearing search output:\n%s", out)
	}
}

func TestRegionAndLanguage(t *testing.T) {
	f := newFixture(t, true)

	out := f.exec(t, "regions")
	if !strings.Contains(out, "* UG   Uganda") || !strings.Contains(out, "  KE   Kenya") {
		t.Errorf("regions output:\n%s", out)
	}

	out = f.exec(t, "language sw")
	if !strings.Contains(out, "Showing 1 of 1 summaries") || !strings.Contains(out, "[2] Bajeti ya Uganda") {
		t.Errorf("language output:\n%s", out)
	}

	out = f.exec(t, "region ke")
	if !strings.Contains(out, listview.NoSummaries) {
		t.Errorf("region output:\n%s", out)
	}
	if region, language := f.view.Selection(); region != "KE" || language != "sw" {
		t.Errorf("selection = %s/%s, want KE/sw", region, language)
	}

	if err := f.console.Execute(context.Background(), "region ZZ"); err == nil {
		t.Error("unknown region should fail once regions are loaded")
	}
}

func TestNarrationCommands(t *testing.T) {
	f := newFixture(t, true)

	f.exec(t, "mode 1 title")
	f.exec(t, "voice 1 sw")
	out := f.exec(t, "play 1")
	if !strings.Contains(out, "Playing summary 1: Title in Swahili") {
		t.Errorf("play output:\n%s", out)
	}

	utts := f.recorder.Utterances()
	if len(utts) != 1 || utts[0].Text != "Uganda Budget 2025/26" || utts[0].Locale != "sw" {
		t.Fatalf("utterances = %+v", utts)
	}

	f.exec(t, "play 3")
	if !f.recorder.Cancelled(0) {
		t.Error("playing card 3 should cancel card 1")
	}

	f.exec(t, "stop 3")
	ctrl, _ := f.view.Controller(3)
	if ctrl.Snapshot().Playing {
		t.Error("card 3 should be idle after stop")
	}
}

func TestPlayWithoutSpeech(t *testing.T) {
	f := newFixture(t, false)

	out := f.exec(t, "play 1")
	if !strings.Contains(out, "not available") {
		t.Errorf("play output:\n%s", out)
	}
	if len(f.recorder.Utterances()) != 0 {
		t.Error("nothing should be spoken")
	}
	if out := f.exec(t, "list"); !strings.Contains(out, "Narration unavailable") {
		t.Errorf("list output:\n%s", out)
	}
}

func TestVoices(t *testing.T) {
	f := newFixture(t, true)

	out := f.exec(t, "voices")
	if !strings.Contains(out, "Narration languages: English (en), Swahili (sw)") {
		t.Errorf("voices output:\n%s", out)
	}
}

func TestSuggest(t *testing.T) {
	f := newFixture(t, true)

	out := f.exec(t, "suggest https://example.com/budget.pdf Health budget 2025 | Please cover clinics email=amina@example.com")
	if !strings.Contains(out, "Thanks for your suggestion!") {
		t.Errorf("suggest output:\n%s", out)
	}
	want := model.Suggestion{
		URL:     "https://example.com/budget.pdf",
		Title:   "Health budget 2025",
		Comment: "Please cover clinics",
		Email:   "amina@example.com",
	}
	if len(f.client.suggestions) != 1 || f.client.suggestions[0] != want {
		t.Errorf("suggestions = %+v, want %+v", f.client.suggestions, want)
	}
}

func TestParseSuggestion(t *testing.T) {
	const url = "https://example.com/doc.pdf"
	tests := []struct {
		name    string
		words   string
		want    model.Suggestion
		wantErr bool
	}{
		{
			name:  "title only",
			words: "Health budget",
			want:  model.Suggestion{URL: url, Title: "Health budget"},
		},
		{
			name:  "title and comment",
			words: "Health budget | covers maternal care | twice",
			want:  model.Suggestion{URL: url, Title: "Health budget", Comment: "covers maternal care | twice"},
		},
		{
			name:  "email anywhere",
			words: "email=a@b.org Health budget",
			want:  model.Suggestion{URL: url, Title: "Health budget", Email: "a@b.org"},
		},
		{
			name:    "missing title",
			words:   "| only a comment",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSuggestion(url, strings.Fields(tt.words))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSuggestion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSuggestion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWomen(t *testing.T) {
	f := newFixture(t, true)
	f.exec(t, "region KE")

	out := f.exec(t, "women en")
	if !strings.Contains(out, "Empowering Women (SDG 5)") || !strings.Contains(out, "[1] Uganda Budget 2025/26") {
		t.Errorf("women output:\n%s", out)
	}
	if strings.Contains(out, "[3]") {
		t.Errorf("women output includes an unrelated summary:\n%s", out)
	}
	if region, _ := f.view.Selection(); region != "KE" {
		t.Errorf("women should not change the selection, region = %s", region)
	}

	out = f.exec(t, "women sw")
	if !strings.Contains(out, listview.NoWomensRights) {
		t.Errorf("women sw output:\n%s", out)
	}

	if err := f.console.Execute(context.Background(), "women xx"); err == nil {
		t.Error("unknown language should fail")
	}
}

func TestExport(t *testing.T) {
	f := newFixture(t, true)
	path := filepath.Join(t.TempDir(), "ug.docx")

	out := f.exec(t, "export "+path)
	if !strings.Contains(out, "Exported 2 summaries") {
		t.Errorf("export output:\n%s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}

func TestRun(t *testing.T) {
	f := newFixture(t, true)

	in := strings.NewReader("help\nbogus\nquit\nplay 1\n")
	if err := f.console.Run(context.Background(), in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := f.out.String()
	if !strings.Contains(out, "Commands:") {
		t.Error("help was not printed")
	}
	if !strings.Contains(out, `Error: "bogus": unknown command`) {
		t.Errorf("unknown command not reported:\n%s", out)
	}
	if len(f.recorder.Utterances()) != 0 {
		t.Error("commands after quit should not run")
	}
}

func TestRunStopsAtEOF(t *testing.T) {
	f := newFixture(t, true)

	if err := f.console.Run(context.Background(), strings.NewReader("list\n")); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(f.out.String(), "Showing 2 of 2 summaries") {
		t.Errorf("output:\n%s", f.out.String())
	}
}
