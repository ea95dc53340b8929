package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/filter"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/listview"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/narration"
)

type summariesResponse struct {
	Region      string          `json:"region"`
	Language    string          `json:"language"`
	State       string          `json:"state"`
	Query       string          `json:"query"`
	Visible     int             `json:"visible"`
	Total       int             `json:"total"`
	EmptyReason string          `json:"empty_reason,omitempty"`
	Cards       []listview.Card `json:"cards"`
}

// summariesHandler lists the visible cards. A q parameter filters without touching the view's own query.
func (s *Server) summariesHandler(w http.ResponseWriter, r *http.Request) {
	query := s.view.Query()
	if values := r.URL.Query(); values.Has("q") {
		query = values.Get("q")
	}

	listing := s.view.VisibleFor(query)
	region, language := s.view.Selection()
	writeJSON(w, http.StatusOK, summariesResponse{
		Region:      region,
		Language:    language,
		State:       s.view.State().String(),
		Query:       query,
		Visible:     len(listing.Cards),
		Total:       listing.Total,
		EmptyReason: listing.EmptyReason,
		Cards:       listing.Cards,
	})
}

type womenResponse struct {
	Region      string          `json:"region"`
	Language    string          `json:"language"`
	EmptyReason string          `json:"empty_reason,omitempty"`
	Summaries   []model.Summary `json:"summaries"`
}

// womenHandler serves the women's rights collection, in the view's language unless ?language= is given
func (s *Server) womenHandler(w http.ResponseWriter, r *http.Request) {
	_, language := s.view.Selection()
	if l := r.URL.Query().Get("language"); l != "" {
		language = l
	}
	if _, ok := model.LookupLanguage(language); !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown language %q", language))
		return
	}

	summaries, err := s.client.FetchSummaries(r.Context(), filter.WomensRightsRegion, language)
	if err != nil {
		s.logger.Error(r.Context(), "Failed to fetch women's rights documents: %v", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	resp := womenResponse{
		Region:    filter.WomensRightsRegion,
		Language:  language,
		Summaries: filter.WomensRights(summaries),
	}
	if len(resp.Summaries) == 0 {
		resp.EmptyReason = listview.NoWomensRights
	}
	writeJSON(w, http.StatusOK, resp)
}

type languageInfo struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Locale string `json:"locale"`
}

type voiceInfo struct {
	Locale string `json:"locale"`
	Name   string `json:"name"`
}

type voicesResponse struct {
	Languages []languageInfo `json:"languages"`
	Voices    []voiceInfo    `json:"voices"`
}

func (s *Server) voicesHandler(w http.ResponseWriter, r *http.Request) {
	avail := s.catalog.Availability(r.Context())

	resp := voicesResponse{
		Languages: make([]languageInfo, 0, len(avail.Languages)),
		Voices:    make([]voiceInfo, 0, len(avail.Voices)),
	}
	for _, code := range avail.Languages {
		if l, ok := model.LookupLanguage(code); ok {
			resp.Languages = append(resp.Languages, languageInfo{Code: l.Code, Name: l.Name, Locale: l.Locale})
		}
	}
	for _, v := range avail.Voices {
		resp.Voices = append(resp.Voices, voiceInfo{Locale: v.Locale, Name: v.Name})
	}

	writeJSON(w, http.StatusOK, resp)
}

type selectionRequest struct {
	Region   string `json:"region"`
	Language string `json:"language"`
}

// selectionHandler switches region and/or language. The fetch completes in the background.
func (s *Server) selectionHandler(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	region, language := s.view.Selection()
	if req.Region != "" {
		region = req.Region
	}
	if req.Language != "" {
		if _, ok := model.LookupLanguage(req.Language); !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown language %q", req.Language))
			return
		}
		language = req.Language
	}

	s.view.Select(r.Context(), region, language)
	writeJSON(w, http.StatusAccepted, selectionRequest{Region: region, Language: language})
}

func (s *Server) playHandler(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.card(w, r)
	if !ok {
		return
	}
	if err := ctrl.Start(r.Context()); err != nil {
		s.logger.Error(r.Context(), "Failed to start narration: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ctrl.Snapshot())
}

func (s *Server) stopHandler(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.card(w, r)
	if !ok {
		return
	}
	ctrl.Stop()
	writeJSON(w, http.StatusOK, ctrl.Snapshot())
}

type modeRequest struct {
	Mode string `json:"mode"`
}

func (s *Server) modeHandler(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.card(w, r)
	if !ok {
		return
	}

	var req modeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctrl.SetMode(mode)
	writeJSON(w, http.StatusOK, ctrl.Snapshot())
}

type languageRequest struct {
	Language string `json:"language"`
}

// languageHandler only accepts languages the runtime can currently speak
func (s *Server) languageHandler(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.card(w, r)
	if !ok {
		return
	}

	var req languageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.catalog.Availability(r.Context()).Contains(req.Language) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("language %q is not available", req.Language))
		return
	}

	ctrl.SetLanguage(req.Language)
	writeJSON(w, http.StatusOK, ctrl.Snapshot())
}

// card resolves the {id} path variable, writing the error response itself on failure
func (s *Server) card(w http.ResponseWriter, r *http.Request) (narration.Controller, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return nil, false
	}

	ctrl, err := s.view.Controller(id)
	if errors.Is(err, listview.ErrCardNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return ctrl, true
}
