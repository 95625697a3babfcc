package sqlconnect

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pvolkova/bookshelf-api/internal/config"
	"github.com/pvolkova/bookshelf-api/internal/logger"
)

const createBooksTableSQL = `
CREATE TABLE IF NOT EXISTS books (
	id SERIAL PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	author VARCHAR(255) NOT NULL,
	year INTEGER,
	status VARCHAR(50) DEFAULT 'planned',
	rating INTEGER CHECK (rating >= 1 AND rating <= 5),
	review TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// InitDatabase provisions the target database, the books table and its
// indexes. Safe to run repeatedly: every step is a no-op when the object
// already exists.
func InitDatabase(ctx context.Context, cfg config.Config) error {
	log := logger.Get()

	// CREATE DATABASE has to run against the maintenance database, outside
	// a transaction.
	admin, err := sql.Open("pgx", cfg.DSN("postgres"))
	if err != nil {
		return fmt.Errorf("open postgres database: %w", err)
	}
	defer admin.Close()

	var exists bool
	err = admin.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, cfg.DBName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %q: %w", cfg.DBName, err)
	}

	if !exists {
		stmt := "CREATE DATABASE " + pgx.Identifier{cfg.DBName}.Sanitize()
		if _, err := admin.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create database %q: %w", cfg.DBName, err)
		}
		log.Info().Str("database", cfg.DBName).Msg("database created")
	} else {
		log.Info().Str("database", cfg.DBName).Msg("database already exists")
	}

	db, err := sql.Open("pgx", cfg.DSN(""))
	if err != nil {
		return fmt.Errorf("open database %q: %w", cfg.DBName, err)
	}
	defer db.Close()

	for _, stmt := range []string{
		createBooksTableSQL,
		`CREATE INDEX IF NOT EXISTS idx_books_author ON books(author)`,
		`CREATE INDEX IF NOT EXISTS idx_books_title ON books(title)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("provision schema: %w", err)
		}
	}

	log.Info().Str("database", cfg.DBName).Msg("books table and indexes verified")
	return nil
}
