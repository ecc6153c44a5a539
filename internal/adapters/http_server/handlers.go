// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"hotelmatch/internal/app"
	"hotelmatch/internal/domain"
)

type Handlers struct{ S *app.RecommendationService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type recommendRequest struct {
	UserQuery string   `json:"user_query"`
	UserLat   *float64 `json:"user_lat"`
	UserLng   *float64 `json:"user_lng"`
	TopN      int      `json:"top_n"`
}

type recommendResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/recommendations", h.recommend)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func (h *Handlers) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.UserQuery) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "user_query must not be empty")
		return
	}
	if req.UserLat == nil || req.UserLng == nil {
		writeProblem(w, http.StatusBadRequest, "Invalid coordinates", "user_lat and user_lng are required")
		return
	}
	topN := req.TopN
	if topN == 0 {
		topN = app.DefaultTopN
	}

	recs, err := h.S.Recommend(r.Context(), req.UserQuery, *req.UserLat, *req.UserLng, topN)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeProblem(w, http.StatusBadRequest, "Invalid input", err.Error())
		case errors.Is(err, domain.ErrTranslation):
			writeProblem(w, http.StatusBadGateway, "Translation failed", "could not translate the query")
		case errors.Is(err, domain.ErrEmbedding):
			writeProblem(w, http.StatusBadGateway, "Embedding failed", "could not embed the query")
		default:
			writeProblem(w, http.StatusInternalServerError, "Internal error", "recommendation failed")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(recommendResponse{Recommendations: recs}); err != nil {
		log.Error().Err(err).Msg("failed to write recommend body")
	}
}
