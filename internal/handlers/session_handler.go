// internal/handlers/session_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/oriiizz/Poly-U-Nap/internal/middleware"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
	"github.com/oriiizz/Poly-U-Nap/internal/service"
	"github.com/oriiizz/Poly-U-Nap/internal/webutil"
)

type SessionHandler struct {
	service service.NapService
	logger  *slog.Logger
}

func NewSessionHandler(s service.NapService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// PostSession starts a new session. The gamertag is optional; an empty body
// is accepted and gets a default.
func (h *SessionHandler) PostSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSession"))

	var req model.CreateSessionRequest
	if r.ContentLength > 0 {
		if err := webutil.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
			webutil.HandleError(w, logger, err)
			return
		}
		if !validateStruct(w, logger, req) {
			return
		}
	}

	resp, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session created successfully", slog.String("session_id", resp.SessionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// GetProfile returns the dashboard for the current session.
func (h *SessionHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProfile"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Profile(r.Context(), sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetAchievements lists all achievement definitions with the session's
// unlock state.
func (h *SessionHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAchievements"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Achievements(r.Context(), sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
