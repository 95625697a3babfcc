package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON serializes v with the JSON content type. Success bodies are the
// resource itself, no wrapper.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
