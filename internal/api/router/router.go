package router

import (
	"database/sql"
	"net/http"

	"github.com/pvolkova/bookshelf-api/internal/api/handlers"
	"github.com/pvolkova/bookshelf-api/internal/api/handlers/books"
)

// Router is the static route table. Method+pattern registration means an
// unsupported verb on a known path gets the mux's own 405.
func Router(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handlers.Health)
	mux.Handle("GET /api/stats", handlers.Stats(db))

	mux.Handle("GET /api/books", books.List(db))
	mux.Handle("POST /api/books", books.Create(db))
	mux.Handle("GET /api/books/{id}", books.Get(db))
	mux.Handle("PUT /api/books/{id}", books.Update(db))
	mux.Handle("DELETE /api/books/{id}", books.Delete(db))

	return mux
}
