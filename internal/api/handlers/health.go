package handlers

import "net/http"

// Health is the liveness probe. It touches nothing, storage included.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
