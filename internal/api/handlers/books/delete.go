package books

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/pvolkova/bookshelf-api/internal/api/apperr"
	storebooks "github.com/pvolkova/bookshelf-api/internal/store/books"
)

// Delete removes a book. Success is 204 with an empty body; a missing id is
// a 404, never a silent success.
func Delete(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		if id <= 0 {
			apperr.Write(w, r, apperr.E(apperr.BadRequest, "Invalid book ID", ""))
			return
		}

		err := storebooks.Delete(r.Context(), db, id)
		if errors.Is(err, storebooks.ErrNotFound) {
			apperr.Write(w, r, apperr.E(apperr.NotFound,
				fmt.Sprintf("Book not found with ID: %d", id), ""))
			return
		}
		if err != nil {
			apperr.Write(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
