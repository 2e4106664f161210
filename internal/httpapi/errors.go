package httpapi

import (
	"encoding/json"
	"net/http"

	"aihostd/pkg/types"
)

// writeError writes the OpenAI-compatible error envelope. Type and code are
// fixed strings; clients switch on them.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: types.ErrorDetail{
		Message: msg,
		Type:    "server_error",
		Code:    "internal_error",
	}})
}

// writeJSON encodes v with a JSON content type, falling back to the error
// envelope when encoding fails.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
