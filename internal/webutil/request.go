// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"net/http"

	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

// DecodeJSONBody decodes the request body into dst. Unknown fields are
// rejected so that client typos surface as 400s instead of silent drops.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST", "Request body is required.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST", "Invalid request body.", "", model.ErrInvalidInput)
	}
	return nil
}
