// internal/middleware/session.go
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/oriiizz/Poly-U-Nap/internal/model"
	"github.com/oriiizz/Poly-U-Nap/internal/webutil"
)

type sessionCtxKey struct{}

// SessionMiddleware reads the X-Session-ID header and puts the parsed id on
// the context. Whether the session actually exists is decided later by the
// session store, so an unknown but well-formed id still passes through here.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		header := r.Header.Get("X-Session-ID")
		if header == "" {
			logger.Warn("Session check failed: X-Session-ID header missing")
			appErr := model.NewAppError("SESSION_REQUIRED", "X-Session-ID header is required.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		sessionID, err := uuid.Parse(header)
		if err != nil {
			logger.Warn("Session check failed: Invalid X-Session-ID format", "value", header)
			appErr := model.NewAppError("INVALID_SESSION_ID", "X-Session-ID must be a valid UUID.", "", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(sessionCtxKey{}).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Session id missing from request context.", "", model.ErrInternalServer)
	}
	return value, nil
}
