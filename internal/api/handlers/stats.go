package handlers

import (
	"database/sql"
	"net/http"

	"github.com/pvolkova/bookshelf-api/internal/api/apperr"
	"github.com/pvolkova/bookshelf-api/internal/api/httpx"
	storebooks "github.com/pvolkova/bookshelf-api/internal/store/books"
)

// Stats serves the aggregate report: per-status counts, average rating,
// total count.
func Stats(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := storebooks.GetStats(r.Context(), db)
		if err != nil {
			apperr.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, stats)
	}
}
