package books

import (
	"context"
	"database/sql"

	"github.com/pvolkova/bookshelf-api/internal/models"
)

// Create inserts a new book and returns the stored record with its
// server-assigned id and timestamps.
func Create(ctx context.Context, db *sql.DB, dto CreateBookDTO) (models.Book, error) {
	status := dto.Status
	if status == "" {
		status = "planned"
	}

	return scanBook(db.QueryRowContext(ctx, `
		INSERT INTO books (title, author, year, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bookColumns,
		dto.Title, dto.Author, dto.Year, status,
	))
}
