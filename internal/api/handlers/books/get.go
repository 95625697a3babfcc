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

// Get returns one book by id.
func Get(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			http.NotFound(w, r)
			return
		}

		b, err := storebooks.GetByID(r.Context(), db, id)
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
