package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/autovoice/voice-showroom/internal/apperr"
	"github.com/autovoice/voice-showroom/pkg/logger"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// writeAppError logs the full cause server-side and sends the client-safe
// message with the status the error kind maps to.
func writeAppError(w http.ResponseWriter, log *logger.Logger, endpoint string, err error) {
	kind := apperr.KindOf(err)

	logFn := log.Error
	if kind == apperr.KindBadInput || kind == apperr.KindNotFound {
		logFn = log.Warn
	}
	logFn("request failed",
		zap.String("endpoint", endpoint),
		zap.String("kind", kind.String()),
		zap.Error(err),
	)

	writeError(w, apperr.HTTPStatus(kind), apperr.Message(err))
}
