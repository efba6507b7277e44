package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/usecase"
	"github.com/promptdeck/promptdeck/pkg/utils/errutil"
	"github.com/promptdeck/promptdeck/pkg/utils/logging"
	"github.com/promptdeck/promptdeck/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

// New builds the REST API router over the use case layer
func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/agents", func(r chi.Router) {
			r.Get("/", s.listAgents)
			r.Post("/", s.createAgent)
			r.Post("/execute", s.executeAll)
			r.Post("/import", s.importAgent)
			r.Route("/{agentID}", func(r chi.Router) {
				r.Get("/", s.getAgent)
				r.Put("/", s.updateAgent)
				r.Delete("/", s.deleteAgent)
				r.Post("/execute", s.executeAgent)
				r.Get("/share", s.shareAgent)
			})
		})

		r.Get("/logs", s.listLogs)

		r.Route("/metrics", func(r chi.Router) {
			r.Get("/", s.overallMetrics)
			r.Get("/timeseries", s.runsOverTime)
			r.Get("/top-agents", s.topAgents)
			r.Get("/cost-by-model", s.costByModel)
		})

		r.Route("/conversations", func(r chi.Router) {
			r.Get("/", s.listConversations)
			r.Post("/", s.createConversation)
			r.Route("/{conversationID}", func(r chi.Router) {
				r.Get("/", s.getConversation)
				r.Delete("/", s.deleteConversation)
				r.Post("/messages", s.postMessage)
				r.Put("/title", s.renameConversation)
				r.Get("/export", s.exportConversation)
			})
		})

		r.Get("/settings", s.getSettings)
		r.Put("/settings", s.updateSettings)

		r.Get("/export", s.exportAll)
		r.Post("/import", s.importAll)

		r.Get("/marketplace", s.listMarketplace)
		r.Post("/marketplace/{entryID}/install", s.installMarketplaceEntry)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests. It also binds a
// request-scoped logger carrying the request ID so downstream log lines
// correlate with the access line.
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		r = r.WithContext(logging.With(r.Context(), logger))

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// respondJSON writes a JSON body with the given status
func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

// decodeJSON reads a JSON request body into dst
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(err, "failed to decode request body")
	}
	return nil
}

// handleError maps use case failures to HTTP statuses
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrAgentNotFound),
		errors.Is(err, usecase.ErrConversationNotFound),
		errors.Is(err, usecase.ErrMarketplaceNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidShareCode):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}
