package listing

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"StayMock/pkg/kit"
)

type Server struct {
	Service *Service
	Log     *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Service.Ping(ctx); err != nil {
			s.logger().Warn("readyz failed", zap.Error(err))
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/listings", s.search)
	r.Get("/listings/{id}", s.get)
	r.Get("/listings/{id}/reviews", s.reviews)

	return r
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	crit, err := ParseCriteria(r.URL.Query())
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid criteria", map[string]any{"cause": err.Error()})
		return
	}

	listings, err := s.Service.SearchListings(r.Context(), crit).Await(r.Context())
	if err != nil {
		s.writeErr(w, r, "search listings failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, listings)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	l, err := s.Service.GetListingByID(r.Context(), id).Await(r.Context())
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	if err != nil {
		s.writeErr(w, r, "get listing failed", err, zap.String("id", id))
		return
	}
	kit.WriteJSON(w, http.StatusOK, l)
}

func (s *Server) reviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rs, err := s.Service.GetReviews(r.Context(), id).Await(r.Context())
	if err != nil {
		s.writeErr(w, r, "get reviews failed", err, zap.String("id", id))
		return
	}
	kit.WriteJSON(w, http.StatusOK, rs)
}

// writeErr handles failures other than a missing listing. A cancelled
// request has nobody left to answer, so it only gets logged.
func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if isCancelled(err) {
		s.logger().Debug(msg, fields...)
		kit.WriteError(w, r, kit.StatusClientClosedRequest, "request cancelled", nil)
		return
	}
	s.logger().Error(msg, fields...)
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
