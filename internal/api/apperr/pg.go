package apperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// FromPG maps a Postgres error to a tagged Error. Constraint rejections are
// the storage layer enforcing input rules (the rating 1..5 check), so they
// surface as validation failures; everything else is a database failure.
func FromPG(err error) (*Error, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return nil, false
	}

	switch pg.Code {
	case pgerrcode.CheckViolation:
		if strings.Contains(pg.ConstraintName, "rating") {
			return E(Validation, "Rating must be between 1 and 5", pg.Message), true
		}
		return E(Validation, "Value violates a storage constraint", pg.Message), true
	case pgerrcode.NotNullViolation:
		field := pg.ColumnName
		if field == "" {
			field = "field"
		}
		return E(Validation, "Required "+field+" is missing", pg.Message), true
	default:
		return E(Database, "Database query failed", pg.Message), true
	}
}
