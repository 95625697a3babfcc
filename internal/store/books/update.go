package books

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/pvolkova/bookshelf-api/internal/models"
	"github.com/pvolkova/bookshelf-api/internal/store/dbx"
)

// Update applies the fields present in dto and returns the post-update
// record. The row is locked and its existence verified before any write, so
// an unknown id fails with ErrNotFound without issuing an UPDATE. All
// statements share one transaction.
func Update(ctx context.Context, db *sql.DB, id int64, dto UpdateBookDTO) (models.Book, error) {
	var updated models.Book
	err := dbx.WithinTx(ctx, db, func(tx *sql.Tx) error {
		var exists int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM books WHERE id = $1 FOR UPDATE`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if !dto.Empty() {
			query, args := buildUpdate(id, dto)
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}

		updated, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.Book{}, err
	}
	return updated, nil
}

// buildUpdate assembles a single UPDATE touching only the present fields.
// updated_at refreshes on every write.
func buildUpdate(id int64, dto UpdateBookDTO) (string, []any) {
	var (
		sets []string
		args []any
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}

	if dto.Title != nil {
		set("title", *dto.Title)
	}
	if dto.Author != nil {
		set("author", *dto.Author)
	}
	if dto.Year.Set {
		set("year", dto.Year.Value)
	}
	if dto.Status != nil {
		set("status", *dto.Status)
	}
	if dto.Rating.Set {
		set("rating", dto.Rating.Value)
	}
	if dto.Review != nil {
		set("review", *dto.Review)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")

	args = append(args, id)
	query := "UPDATE books SET " + strings.Join(sets, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args))
	return query, args
}
