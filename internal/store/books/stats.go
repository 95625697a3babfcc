package books

import (
	"context"
	"database/sql"

	"github.com/pvolkova/bookshelf-api/internal/store/dbx"
)

// GetStats computes the aggregate report: per-status counts, the average of
// all non-null ratings (nil when nothing is rated), and the total count.
// The three queries run in one transaction.
func GetStats(ctx context.Context, db *sql.DB) (Stats, error) {
	stats := Stats{ByStatus: make(map[string]int)}

	err := dbx.WithinTx(ctx, db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT status, COUNT(*) FROM books GROUP BY status`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var (
				status string
				count  int
			)
			if err := rows.Scan(&status, &count); err != nil {
				return err
			}
			stats.ByStatus[status] = count
		}
		if err := rows.Err(); err != nil {
			return err
		}

		var avg sql.NullFloat64
		err = tx.QueryRowContext(ctx,
			`SELECT AVG(rating) FROM books WHERE rating IS NOT NULL`).Scan(&avg)
		if err != nil {
			return err
		}
		if avg.Valid {
			stats.AverageRating = &avg.Float64
		}

		return tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM books`).Scan(&stats.TotalBooks)
	})
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}
