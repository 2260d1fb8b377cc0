package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"league-tracker/internal/domain"
	"league-tracker/internal/region"
	"league-tracker/internal/service"

	"github.com/rs/zerolog"
)

// Server exposes the aggregator over a JSON HTTP API. defaultRegion is
// the shard used when a request carries no recognizable region.
type Server struct {
	profileSvc    *service.ProfileService
	matchSvc      *service.MatchService
	historySvc    *service.HistoryService
	defaultRegion region.Region
	logger        zerolog.Logger
}

func New(profileSvc *service.ProfileService, matchSvc *service.MatchService, historySvc *service.HistoryService, defaultRegion region.Region, logger zerolog.Logger) *Server {
	return &Server{
		profileSvc:    profileSvc,
		matchSvc:      matchSvc,
		historySvc:    historySvc,
		defaultRegion: defaultRegion,
		logger:        logger,
	}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/players/{name}/{tag}", s.handleGetPlayer)
	mux.HandleFunc("GET /api/matches/{matchID}", s.handleGetMatch)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	return mux
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	identity := domain.PlayerIdentity{
		GameName: r.PathValue("name"),
		TagLine:  r.PathValue("tag"),
	}
	regionTag := r.URL.Query().Get("region")

	profile, err := s.profileSvc.GetPlayerProfile(r.Context(), identity, regionTag)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := toProfileResponse(profile)

	if r.URL.Query().Get("matches") == "true" {
		results, err := s.matchSvc.GetRecentResults(r.Context(), profile.Account.Puuid, region.Resolve(profile.Region), profile.RecentMatches)
		if err == nil {
			resp.RecentResults = toMatchResults(results)
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("matchID")
	puuid := r.URL.Query().Get("puuid")
	if puuid == "" {
		s.writeError(w, r, service.ErrInvalidInput)
		return
	}
	reg := region.ResolveOr(r.URL.Query().Get("region"), s.defaultRegion)

	result, err := s.matchSvc.GetMatchDetail(r.Context(), matchID, puuid, reg)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toMatchResult(*result))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	records, err := s.historySvc.SearchSuggestions(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	suggestions := make([]suggestionResponse, 0, len(records))
	for _, rec := range records {
		suggestions = append(suggestions, suggestionResponse{
			Puuid:    rec.Puuid,
			GameName: rec.GameName,
			TagLine:  rec.TagLine,
			Region:   rec.Region,
		})
	}

	s.writeJSON(w, http.StatusOK, searchResponse{Suggestions: suggestions})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUpstreamRejected):
		status = http.StatusBadGateway
	case errors.Is(err, service.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
	}

	s.logger.Warn().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")
	s.writeJSON(w, status, errorResponse{Error: err.Error(), Status: status})
}
