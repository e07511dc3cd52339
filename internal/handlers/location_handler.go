// internal/handlers/location_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oriiizz/Poly-U-Nap/internal/middleware"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
	"github.com/oriiizz/Poly-U-Nap/internal/service"
	"github.com/oriiizz/Poly-U-Nap/internal/webutil"
)

type LocationHandler struct {
	service service.NapService
	logger  *slog.Logger
}

func NewLocationHandler(s service.NapService, logger *slog.Logger) *LocationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocationHandler{
		service: s,
		logger:  logger,
	}
}

// GetLocations lists the visible catalog with the session's averages and
// check-in state.
func (h *LocationHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLocations"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.ListLocations(r.Context(), sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetLocation returns a single location by id, secret spots included.
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLocation"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	locationID := chi.URLParam(r, "locationID")
	resp, err := h.service.GetLocation(r.Context(), sessionID, locationID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostRating submits one five-dimension rating for the location.
func (h *LocationHandler) PostRating(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostRating"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.Rating
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	locationID := chi.URLParam(r, "locationID")
	resp, err := h.service.SubmitRating(r.Context(), sessionID, locationID, req)
	if err != nil {
		logger.Warn("Error submitting rating in service", slog.Any("error", err), slog.String("location_id", locationID))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Rating submitted successfully", slog.String("location_id", locationID))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// PostCheckIn records a visit at the location.
func (h *LocationHandler) PostCheckIn(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCheckIn"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	locationID := chi.URLParam(r, "locationID")
	resp, err := h.service.CheckIn(r.Context(), sessionID, locationID)
	if err != nil {
		logger.Warn("Error checking in in service", slog.Any("error", err), slog.String("location_id", locationID))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
