package books

import (
	"database/sql"
	"net/http"

	"github.com/pvolkova/bookshelf-api/internal/api/apperr"
	"github.com/pvolkova/bookshelf-api/internal/api/httpx"
	storebooks "github.com/pvolkova/bookshelf-api/internal/store/books"
)

// List returns every book, newest first.
func List(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := storebooks.ListAll(r.Context(), db)
		if err != nil {
			apperr.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}
