package books

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/pvolkova/bookshelf-api/internal/api/apperr"
	"github.com/pvolkova/bookshelf-api/internal/api/httpx"
	storebooks "github.com/pvolkova/bookshelf-api/internal/store/books"
)

// Create inserts a new book. Title and author must be present and non-null;
// validation happens before any data access.
func Create(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var body struct {
			Title  *string `json:"title"`
			Author *string `json:"author"`
			Year   *int    `json:"year"`
			Status *string `json:"status"`
		}
		if err := decodeJSON(w, r, &body); err != nil {
			apperr.Write(w, r, apperr.E(apperr.BadRequest, "Invalid JSON format", err.Error()))
			return
		}

		if body.Title == nil {
			apperr.Write(w, r, apperr.E(apperr.Validation, "Title is required",
				"Book title must be provided and cannot be null"))
			return
		}
		if body.Author == nil {
			apperr.Write(w, r, apperr.E(apperr.Validation, "Author is required",
				"Book author must be provided and cannot be null"))
			return
		}

		dto := storebooks.CreateBookDTO{
			Title:  *body.Title,
			Author: *body.Author,
			Year:   body.Year,
		}
		if body.Status != nil {
			dto.Status = *body.Status
		}

		b, err := storebooks.Create(r.Context(), db, dto)
		if err != nil {
			apperr.Write(w, r, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/books/%d", b.ID))
		httpx.WriteJSON(w, http.StatusCreated, b)
	}
}
