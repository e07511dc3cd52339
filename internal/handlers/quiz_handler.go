// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/oriiizz/Poly-U-Nap/internal/middleware"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
	"github.com/oriiizz/Poly-U-Nap/internal/service"
	"github.com/oriiizz/Poly-U-Nap/internal/webutil"
)

type QuizHandler struct {
	service service.NapService
	logger  *slog.Logger
}

func NewQuizHandler(s service.NapService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// GetQuestions returns the static question catalog. No session required.
func (h *QuizHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuestions"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Questions(r.Context()), logger)
}

// PostAnswer records one choice for the question at the session's cursor.
func (h *QuizHandler) PostAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAnswer"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.AnswerQuestionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	resp, err := h.service.AnswerQuestion(r.Context(), sessionID, *req.QuestionIndex, req.Choice)
	if err != nil {
		logger.Warn("Error recording answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostReset throws away the quiz state so the quiz can be retaken.
func (h *QuizHandler) PostReset(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostReset"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.ResetQuiz(r.Context(), sessionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz reset", slog.String("session_id", sessionID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// GetResult classifies the finished quiz into an archetype.
func (h *QuizHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetResult"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.QuizResult(r.Context(), sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
