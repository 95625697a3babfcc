package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pvolkova/bookshelf-api/internal/models"
	"github.com/pvolkova/bookshelf-api/internal/store/dbx"
)

const bookColumns = `id, title, author, year, status, rating, review, created_at, updated_at`

// scanBook projects one row into a Book. NULL year/rating stay nil; a NULL
// review becomes "" (existing API contract, see the books table schema).
func scanBook(row interface{ Scan(dest ...any) error }) (models.Book, error) {
	var (
		b      models.Book
		year   sql.NullInt64
		rating sql.NullInt64
		review sql.NullString
	)
	err := row.Scan(&b.ID, &b.Title, &b.Author, &year, &b.Status, &rating, &review, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Book{}, err
	}
	if year.Valid {
		v := int(year.Int64)
		b.Year = &v
	}
	if rating.Valid {
		v := int(rating.Int64)
		b.Rating = &v
	}
	b.Review = review.String
	return b, nil
}

// ListAll returns every book, newest first. An empty table yields an empty
// (non-nil) slice so the response serializes as [].
func ListAll(ctx context.Context, db *sql.DB) ([]models.Book, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID returns the book with the given id or ErrNotFound.
func GetByID(ctx context.Context, db *sql.DB, id int64) (models.Book, error) {
	return getByID(ctx, db, id)
}

func getByID(ctx context.Context, g dbx.Getter, id int64) (models.Book, error) {
	b, err := scanBook(g.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrNotFound
	}
	return b, err
}
