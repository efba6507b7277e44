package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/usecase"
)

func (s *Server) listAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := s.uc.ListAgents(r.Context())
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, agents)
}

func (s *Server) createAgent(w http.ResponseWriter, r *http.Request) {
	var input usecase.AgentInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(r.Context(), w, err)
		return
	}

	agent, err := s.uc.CreateAgent(r.Context(), input)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, agent)
}

func (s *Server) getAgent(w http.ResponseWriter, r *http.Request) {
	id := types.AgentID(chi.URLParam(r, "agentID"))

	agent, err := s.uc.GetAgent(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, agent)
}

func (s *Server) updateAgent(w http.ResponseWriter, r *http.Request) {
	id := types.AgentID(chi.URLParam(r, "agentID"))

	var input usecase.AgentInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(r.Context(), w, err)
		return
	}

	agent, err := s.uc.UpdateAgent(r.Context(), id, input)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, agent)
}

func (s *Server) deleteAgent(w http.ResponseWriter, r *http.Request) {
	id := types.AgentID(chi.URLParam(r, "agentID"))

	if err := s.uc.DeleteAgent(r.Context(), id); err != nil {
		handleError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type executeRequest struct {
	Input string `json:"input"`
}

func (s *Server) executeAgent(w http.ResponseWriter, r *http.Request) {
	id := types.AgentID(chi.URLParam(r, "agentID"))

	// An empty body means running with the default input
	var req executeRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			handleError(r.Context(), w, err)
			return
		}
	}

	result, err := s.uc.RunAgent(r.Context(), id, req.Input)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, result)
}

func (s *Server) executeAll(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			handleError(r.Context(), w, err)
			return
		}
	}

	results, err := s.uc.RunAll(r.Context(), req.Input)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, results)
}

func (s *Server) shareAgent(w http.ResponseWriter, r *http.Request) {
	id := types.AgentID(chi.URLParam(r, "agentID"))

	agent, err := s.uc.GetAgent(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	code, err := usecase.EncodeShareCode(agent)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	shareURL, err := s.uc.ShareURL(agent)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, map[string]string{
		"code": code,
		"url":  shareURL,
	})
}

func (s *Server) importAgent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(r.Context(), w, err)
		return
	}

	agent, err := s.uc.ImportAgent(r.Context(), req.Code)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, agent)
}

func (s *Server) listMarketplace(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, s.uc.Marketplace())
}

func (s *Server) installMarketplaceEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")

	agent, err := s.uc.InstallMarketplaceEntry(r.Context(), entryID)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, agent)
}
