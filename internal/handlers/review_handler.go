// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/oriiizz/Poly-U-Nap/internal/model"
	"github.com/oriiizz/Poly-U-Nap/internal/service"
	"github.com/oriiizz/Poly-U-Nap/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// PostReview persists a free-form sleep review. No session required; reviews
// are global.
func (h *ReviewHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostReview"))

	var req model.PostReviewRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	resp, err := h.service.PostReview(r.Context(), &req)
	if err != nil {
		logger.Error("Error posting review in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review posted successfully", slog.Uint64("review_id", uint64(resp.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// GetReviews lists the most recent reviews. The optional ?limit= parameter is
// capped by configuration.
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviews"))

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			appErr := model.NewAppError("INVALID_LIMIT", "limit must be a non-negative integer.", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = parsed
	}

	resp, err := h.service.ListReviews(r.Context(), limit)
	if err != nil {
		logger.Error("Error listing reviews in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetStats returns aggregate statistics over all reviews.
func (h *ReviewHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	resp, err := h.service.GetStats(r.Context())
	if err != nil {
		logger.Error("Error aggregating review stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
