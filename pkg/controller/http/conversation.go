package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/utils/errutil"
	"github.com/promptdeck/promptdeck/pkg/utils/safe"
)

func (s *Server) listConversations(w http.ResponseWriter, r *http.Request) {
	convs, err := s.uc.ListConversations(r.Context())
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, convs)
}

func (s *Server) createConversation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AgentID types.AgentID `json:"agentId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(r.Context(), w, err)
		return
	}

	conv, err := s.uc.CreateConversation(r.Context(), req.AgentID)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, conv)
}

func (s *Server) getConversation(w http.ResponseWriter, r *http.Request) {
	id := types.ConversationID(chi.URLParam(r, "conversationID"))

	conv, err := s.uc.GetConversation(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, conv)
}

func (s *Server) deleteConversation(w http.ResponseWriter, r *http.Request) {
	id := types.ConversationID(chi.URLParam(r, "conversationID"))

	if err := s.uc.DeleteConversation(r.Context(), id); err != nil {
		handleError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postMessage(w http.ResponseWriter, r *http.Request) {
	id := types.ConversationID(chi.URLParam(r, "conversationID"))

	var req struct {
		Input string `json:"input"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(r.Context(), w, err)
		return
	}

	result, err := s.uc.ChatTurn(r.Context(), id, req.Input)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	conv, err := s.uc.GetConversation(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, map[string]any{
		"result":       result,
		"conversation": conv,
	})
}

func (s *Server) renameConversation(w http.ResponseWriter, r *http.Request) {
	id := types.ConversationID(chi.URLParam(r, "conversationID"))

	var req struct {
		Title string `json:"title"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(r.Context(), w, err)
		return
	}
	if req.Title == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("title is required"), http.StatusBadRequest)
		return
	}

	conv, err := s.uc.RenameConversation(r.Context(), id, req.Title)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, conv)
}

func (s *Server) exportConversation(w http.ResponseWriter, r *http.Request) {
	id := types.ConversationID(chi.URLParam(r, "conversationID"))

	switch format := r.URL.Query().Get("format"); format {
	case "", "markdown":
		md, err := s.uc.ExportConversationMarkdown(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		safe.Write(r.Context(), w, []byte(md))

	case "json":
		out, err := s.uc.ExportConversationJSON(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		safe.Write(r.Context(), w, []byte(out))

	default:
		errutil.HandleHTTP(r.Context(), w,
			goerr.New("unsupported export format", goerr.V("format", format)),
			http.StatusBadRequest)
	}
}
