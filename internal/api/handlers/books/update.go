package books

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/pvolkova/bookshelf-api/internal/api/apperr"
	"github.com/pvolkova/bookshelf-api/internal/api/httpx"
	storebooks "github.com/pvolkova/bookshelf-api/internal/store/books"
)

// Update applies a partial update and returns the full post-update book.
func Update(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		id, ok := parseID(r)
		if !ok {
			http.NotFound(w, r)
			return
		}

		var dto storebooks.UpdateBookDTO
		if err := decodeJSON(w, r, &dto); err != nil {
			apperr.Write(w, r, apperr.E(apperr.BadRequest, "Invalid JSON format", err.Error()))
			return
		}

		b, err := storebooks.Update(r.Context(), db, id, dto)
		if errors.Is(err, storebooks.ErrNotFound) {
			apperr.Write(w, r, apperr.E(apperr.NotFound, "Book not found",
				fmt.Sprintf("Book with id %d does not exist", id)))
			return
		}
		if err != nil {
			apperr.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, b)
	}
}
