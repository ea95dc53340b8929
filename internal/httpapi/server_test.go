package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	summaries map[string][]model.Summary
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
	return []model.Region{{ID: 1, Name: "Uganda", Code: "UG"}}, nil
}

func (c *stubClient) SubmitSuggestion(ctx context.Context, s model.Suggestion) (string, error) {
	return "ok", nil
}

type fixture struct {
	recorder *narration.Recorder
	view     listview.View
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := &stubClient{summaries: map[string][]model.Summary{
		"UG": {
			{ID: 1, DocumentTitle: "Uganda Budget 2025/26", Text: "Funding for women's health.", Language: "en"},
			{ID: 3, DocumentTitle: "Uganda Budget 2025/26", Text: "Regional development and rural roads.", Language: "en"},
		},
		"KE": {},
	}}

	catalog := voice.New(voice.NewStaticInventory(model.Voice{Locale: "en-US"}, model.Voice{Locale: "sw"}), logger.Discard())
	rec := narration.NewRecorder(true)
	engine := narration.NewEngine(catalog, rec, logger.Discard())
	view := listview.New(client, catalog, engine, logger.Discard())
	t.Cleanup(view.Close)

	select {
	case <-view.Select(context.Background(), "UG", "en"):
	case <-time.After(2 * time.Second):
		t.Fatal("initial fetch did not settle")
	}

	return &fixture{
		recorder: rec,
		view:     view,
		handler:  New(view, catalog, client, logger.Discard()).Routes(),
	}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func TestSummaries(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name      string
		path      string
		wantIDs   []int64
		wantTotal int
		wantEmpty string
	}{
		{name: "all", path: "/summaries", wantIDs: []int64{1, 3}, wantTotal: 2},
		{name: "query", path: "/summaries?q=WOMEN", wantIDs: []int64{1}, wantTotal: 2},
		{name: "no match", path: "/summaries?q=zzz", wantIDs: nil, wantTotal: 2, wantEmpty: listview.NoSearchResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodGet, tt.path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			var resp summariesResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatal(err)
			}
			var ids []int64
			for _, c := range resp.Cards {
				ids = append(ids, c.Summary.ID)
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("ids = %v, want %v", ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
				}
			}
			if resp.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", resp.Total, tt.wantTotal)
			}
			if resp.EmptyReason != tt.wantEmpty {
				t.Errorf("empty_reason = %q, want %q", resp.EmptyReason, tt.wantEmpty)
			}
		})
	}

	if f.view.Query() != "" {
		t.Errorf("view query changed to %q", f.view.Query())
	}
}

func TestVoices(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/voices", "")
	var resp voicesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Languages) != 2 || resp.Languages[0].Code != "en" || resp.Languages[1].Name != "Swahili" {
		t.Errorf("languages = %+v, want en and sw", resp.Languages)
	}
	if len(resp.Voices) != 2 {
		t.Errorf("voices = %+v, want 2", resp.Voices)
	}
}

func TestPlayPreemptsOtherCard(t *testing.T) {
	f := newFixture(t)

	if w := f.do(t, http.MethodPost, "/cards/1/play", ""); w.Code != http.StatusOK {
		t.Fatalf("play 1 status = %d", w.Code)
	}
	w := f.do(t, http.MethodPost, "/cards/3/play", "")
	if w.Code != http.StatusOK {
		t.Fatalf("play 3 status = %d", w.Code)
	}

	var snap narration.Snapshot
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if !snap.Playing {
		t.Error("card 3 should be playing")
	}

	first, _ := f.view.Controller(1)
	if first.Snapshot().Playing {
		t.Error("card 1 should have been preempted")
	}
	if !f.recorder.Cancelled(0) {
		t.Error("first utterance should be cancelled")
	}

	w = f.do(t, http.MethodPost, "/cards/3/stop", "")
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.Playing {
		t.Error("card 3 should be idle after stop")
	}
}

func TestCardErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"unknown card", http.MethodPost, "/cards/99/play", "", http.StatusNotFound},
		{"non numeric id", http.MethodPost, "/cards/abc/play", "", http.StatusNotFound},
		{"bad mode", http.MethodPut, "/cards/1/mode", `{"mode":"chorus"}`, http.StatusBadRequest},
		{"bad body", http.MethodPut, "/cards/1/mode", `{`, http.StatusBadRequest},
		{"unavailable language", http.MethodPut, "/cards/1/language", `{"language":"fr"}`, http.StatusBadRequest},
		{"wrong method", http.MethodGet, "/cards/1/play", "", http.StatusMethodNotAllowed},
		{"wrong method on stop", http.MethodPut, "/cards/1/stop", "", http.StatusMethodNotAllowed},
		{"wrong method on mode", http.MethodPost, "/cards/1/mode", `{"mode":"title"}`, http.StatusMethodNotAllowed},
		{"wrong method on language", http.MethodDelete, "/cards/1/language", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := f.do(t, tt.method, tt.path, tt.body); w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestModeAndLanguage(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPut, "/cards/1/mode", `{"mode":"original"}`)
	var snap narration.Snapshot
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.Mode != model.ModeOriginal || snap.ModeLabel != "Budget Text" {
		t.Errorf("snapshot = %+v, want original mode", snap)
	}

	w = f.do(t, http.MethodPut, "/cards/1/language", `{"language":"sw"}`)
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.Language != "sw" || snap.LanguageName != "Swahili" {
		t.Errorf("snapshot = %+v, want sw", snap)
	}
}

func TestSelection(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPut, "/selection", `{"region":"KE"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
	if region, language := f.view.Selection(); region != "KE" || language != "en" {
		t.Errorf("selection = %s/%s, want KE/en", region, language)
	}

	if w := f.do(t, http.MethodPut, "/selection", `{"language":"xx"}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown language status = %d, want 400", w.Code)
	}
}

func TestSummariesMatchViewCounts(t *testing.T) {
	f := newFixture(t)
	f.view.SetQuery("roads")

	w := f.do(t, http.MethodGet, "/summaries", "")
	var resp summariesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	visible, total := f.view.Counts()
	if resp.Visible != visible || resp.Total != total || resp.EmptyReason != f.view.EmptyReason() {
		t.Errorf("response %d/%d %q, view %d/%d %q", resp.Visible, resp.Total, resp.EmptyReason, visible, total, f.view.EmptyReason())
	}
	if resp.Query != "roads" {
		t.Errorf("query = %q, want roads", resp.Query)
	}
}

func TestWomen(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantIDs    []int64
		wantEmpty  string
	}{
		{name: "view language", path: "/summaries/women", wantStatus: http.StatusOK, wantIDs: []int64{1}},
		{name: "no documents", path: "/summaries/women?language=sw", wantStatus: http.StatusOK, wantEmpty: listview.NoWomensRights},
		{name: "unknown language", path: "/summaries/women?language=xx", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodGet, tt.path, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp womenResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatal(err)
			}
			var ids []int64
			for _, s := range resp.Summaries {
				ids = append(ids, s.ID)
			}
			if len(ids) != len(tt.wantIDs) || (len(ids) > 0 && ids[0] != tt.wantIDs[0]) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
			if resp.Region != "UG" || resp.EmptyReason != tt.wantEmpty {
				t.Errorf("region = %q, empty_reason = %q, want UG and %q", resp.Region, resp.EmptyReason, tt.wantEmpty)
			}
		})
	}
}
