package httpapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON serializes v with the given status. Serialization failures are
// logged by the caller's middleware; headers are already sent at that point
// so nothing more can be done for the client.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
