package http

import (
	"net/http"
	"strconv"
)

const (
	defaultTimeSeriesDays = 7
	defaultTopAgentLimit  = 5
)

func (s *Server) listLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.uc.ListLogs(r.Context())
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, logs)
}

func (s *Server) overallMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := s.uc.OverallMetrics(r.Context())
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, metrics)
}

// queryInt parses a positive integer query parameter, falling back on
// absent or malformed values
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func (s *Server) runsOverTime(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", defaultTimeSeriesDays)

	points, err := s.uc.RunsOverTime(r.Context(), days)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, points)
}

func (s *Server) topAgents(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultTopAgentLimit)

	ranked, err := s.uc.TopAgentMetrics(r.Context(), limit)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, ranked)
}

func (s *Server) costByModel(w http.ResponseWriter, r *http.Request) {
	costs, err := s.uc.ModelCosts(r.Context())
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, costs)
}
