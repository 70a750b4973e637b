package handler

import (
	"encoding/json"
	"net/http"

	"request-uuid/pkg/requestid"

	"github.com/rs/zerolog/log"
)

// unknownRequestID is shown when no current request ID is set.
const unknownRequestID = "unknown"

// EchoResponse reports the request ID the middleware assigned.
type EchoResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	IDLength  int    `json:"id_length"`
}

// Echo replies with the current request ID and its length.
func Echo(w http.ResponseWriter, r *http.Request) {
	id, ok := requestid.Current(r.Context())
	if !ok {
		id = unknownRequestID
	}
	writeJSON(w, http.StatusOK, EchoResponse{
		Message:   "Hello!",
		RequestID: id,
		IDLength:  len(id),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

// writeError replies with a JSON error body carrying the request ID, so
// clients can quote it when reporting a failure.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error":      http.StatusText(status),
		"message":    msg,
		"request_id": requestid.FromRequest(r).String(),
	})
}
