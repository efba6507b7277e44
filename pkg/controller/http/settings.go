package http

import (
	"net/http"

	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/usecase"
)

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	view, err := s.uc.GetSettings(r.Context())
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, view)
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	var input usecase.SettingsInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(r.Context(), w, err)
		return
	}

	view, err := s.uc.UpdateSettings(r.Context(), input)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, view)
}

func (s *Server) exportAll(w http.ResponseWriter, r *http.Request) {
	doc, err := s.uc.Export(r.Context())
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="promptdeck-export.json"`)
	respondJSON(r.Context(), w, http.StatusOK, doc)
}

func (s *Server) importAll(w http.ResponseWriter, r *http.Request) {
	var doc model.ExportDocument
	if err := decodeJSON(r, &doc); err != nil {
		handleError(r.Context(), w, err)
		return
	}

	if err := s.uc.Import(r.Context(), &doc); err != nil {
		handleError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
