// Package server exposes segment resolution and roster reads over JSON.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"wrestling-booker/internal/constants"
	"wrestling-booker/internal/domain"
	"wrestling-booker/internal/engine"
	"wrestling-booker/internal/service"
)

type BookingServer struct {
	segments *service.SegmentService
	roster   *service.RosterService
	rules    *service.RulesService
	logger   zerolog.Logger
}

func NewBookingServer(segments *service.SegmentService, roster *service.RosterService, rules *service.RulesService, logger zerolog.Logger) *BookingServer {
	return &BookingServer{
		segments: segments,
		roster:   roster,
		rules:    rules,
		logger:   logger,
	}
}

// Register wires the handlers onto the mux.
func (s *BookingServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/segments/match", s.handleMatch)
	mux.HandleFunc("POST /v1/segments/promo", s.handlePromo)
	mux.HandleFunc("POST /v1/segments/narrative", s.handleNarrative)
	mux.HandleFunc("GET /v1/segments", s.handleListSegments)
	mux.HandleFunc("GET /v1/segments/{id}", s.handleGetSegment)
	mux.HandleFunc("GET /v1/wrestlers", s.handleListWrestlers)
	mux.HandleFunc("GET /v1/wrestlers/{id}", s.handleGetWrestler)
	mux.HandleFunc("PUT /v1/wrestlers", s.handleUpsertWrestler)
	mux.HandleFunc("POST /v1/wrestlers/{id}/injuries", s.handleRecordInjury)
	mux.HandleFunc("POST /v1/injuries/{id}/heal", s.handleHealInjury)
	mux.HandleFunc("GET /v1/rules/high-heat", s.handleHighHeatRules)
	mux.HandleFunc("PUT /v1/rules", s.handleUpsertRule)
}

type matchRequest struct {
	Teams       [][]string `json:"teams"`
	Stipulation string     `json:"stipulation"`
	Multiplier  float64    `json:"multiplier"`
	TitleMatch  bool       `json:"title_match"`
}

type promoRequest struct {
	WrestlerIDs []string `json:"wrestler_ids"`
	Multiplier  float64  `json:"multiplier"`
}

type narrativeRequest struct {
	Names []string `json:"names"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *BookingServer) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.segments.ResolveMatch(r.Context(), service.MatchRequest{
		Teams:       req.Teams,
		Stipulation: req.Stipulation,
		Multiplier:  req.Multiplier,
		TitleMatch:  req.TitleMatch,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *BookingServer) handlePromo(w http.ResponseWriter, r *http.Request) {
	var req promoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.segments.ResolvePromo(r.Context(), service.PromoRequest{
		WrestlerIDs: req.WrestlerIDs,
		Multiplier:  req.Multiplier,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *BookingServer) handleNarrative(w http.ResponseWriter, r *http.Request) {
	var req narrativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := s.segments.ResolveNarrative(r.Context(), service.NarrativeRequest{Names: req.Names})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (s *BookingServer) handleGetWrestler(w http.ResponseWriter, r *http.Request) {
	profile, err := s.roster.GetWrestler(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "wrestler not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *BookingServer) handleListSegments(w http.ResponseWriter, r *http.Request) {
	segments, err := s.segments.ListRecentSegments(r.Context(), constants.SegmentHistoryLimit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, segments)
}

func (s *BookingServer) handleGetSegment(w http.ResponseWriter, r *http.Request) {
	segment, err := s.segments.GetSegment(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if segment == nil {
		writeError(w, http.StatusNotFound, "segment not found")
		return
	}
	writeJSON(w, http.StatusOK, segment)
}

type upsertWrestlerRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FanWeight  int    `json:"fan_weight"`
	Tier       string `json:"tier"`
	IsChampion bool   `json:"is_champion"`
	HasAccount bool   `json:"has_account"`
}

func (s *BookingServer) handleUpsertWrestler(w http.ResponseWriter, r *http.Request) {
	var req upsertWrestlerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tier, err := domain.ParseTier(req.Tier)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	wrestler := &domain.Wrestler{
		ID:         req.ID,
		Name:       req.Name,
		FanWeight:  req.FanWeight,
		Tier:       tier,
		IsChampion: req.IsChampion,
		HasAccount: req.HasAccount,
	}
	if err := s.roster.UpsertWrestler(r.Context(), wrestler); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wrestler)
}

type recordInjuryRequest struct {
	Description string `json:"description"`
}

func (s *BookingServer) handleRecordInjury(w http.ResponseWriter, r *http.Request) {
	var req recordInjuryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	injury := &domain.Injury{
		WrestlerID:  r.PathValue("id"),
		Description: req.Description,
	}
	if err := s.roster.RecordInjury(r.Context(), injury); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, injury)
}

func (s *BookingServer) handleHealInjury(w http.ResponseWriter, r *http.Request) {
	if err := s.roster.HealInjury(r.Context(), r.PathValue("id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *BookingServer) handleHighHeatRules(w http.ResponseWriter, r *http.Request) {
	rules, err := s.rules.HighHeatRules(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

type upsertRuleRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	RequiresHighHeat bool   `json:"requires_high_heat"`
	IsActive         bool   `json:"is_active"`
	BumpPolicy       string `json:"bump_policy"`
}

func (s *BookingServer) handleUpsertRule(w http.ResponseWriter, r *http.Request) {
	var req upsertRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rule := &domain.Rule{
		Name:             req.Name,
		Description:      req.Description,
		RequiresHighHeat: req.RequiresHighHeat,
		IsActive:         req.IsActive,
		BumpPolicy:       domain.ParseBumpPolicy(req.BumpPolicy),
	}
	if err := s.rules.UpsertRule(r.Context(), rule); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

func (s *BookingServer) handleListWrestlers(w http.ResponseWriter, r *http.Request) {
	wrestlers, err := s.roster.ListWrestlers(r.Context(), constants.RosterSearchLimit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wrestlers)
}

// writeServiceError maps validation failures to 400 and everything else to
// 500, logging only the latter.
func (s *BookingServer) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, engine.ErrTooFewTeams),
		errors.Is(err, engine.ErrEmptyTeam),
		errors.Is(err, engine.ErrNoParticipants),
		errors.Is(err, service.ErrUnknownWrestler),
		errors.Is(err, service.ErrInvalidWrestler),
		errors.Is(err, service.ErrInvalidRule):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
