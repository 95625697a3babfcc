package books_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pvolkova/bookshelf-api/internal/api/router"
	"github.com/pvolkova/bookshelf-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookCols = `id, title, author, year, status, rating, review, created_at, updated_at`

var bookColNames = []string{"id", "title", "author", "year", "status", "rating", "review", "created_at", "updated_at"}

type errEnvelope struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	StatusCode int    `json:"status_code"`
	Timestamp  string `json:"timestamp"`
}

func newTestServer(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return router.Router(db), mock
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) errEnvelope {
	t.Helper()
	var env errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	h, mock := newTestServer(t)

	rec := do(h, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	// liveness must not touch storage
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBook(t *testing.T) {
	h, mock := newTestServer(t)

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO books (title, author, year, status)`,
	)).
		WithArgs("Solaris", "Lem", 1961, "planned").
		WillReturnRows(sqlmock.NewRows(bookColNames).
			AddRow(1, "Solaris", "Lem", 1961, "planned", nil, nil, now, now))

	rec := do(h, "POST", "/api/books", `{"title":"Solaris","author":"Lem","year":1961}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/books/1", rec.Header().Get("Location"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var b models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, int64(1), b.ID)
	require.NotNil(t, b.Year)
	assert.Equal(t, 1961, *b.Year)
	assert.Nil(t, b.Rating)
	assert.Equal(t, "", b.Review)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBook_MissingTitle(t *testing.T) {
	h, mock := newTestServer(t)

	rec := do(h, "POST", "/api/books", `{"author":"Lem"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErr(t, rec)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "validation_error", env.Error)
	assert.Equal(t, "Title is required", env.Message)
	// no SQL may run on a validation failure
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBook_NullAuthor(t *testing.T) {
	h, mock := newTestServer(t)

	rec := do(h, "POST", "/api/books", `{"title":"Solaris","author":null}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErr(t, rec)
	assert.Equal(t, "validation_error", env.Error)
	assert.Equal(t, "Author is required", env.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBook_MalformedJSON(t *testing.T) {
	h, mock := newTestServer(t)

	rec := do(h, "POST", "/api/books", `{"title": "Sol`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErr(t, rec)
	assert.Equal(t, "bad_request_error", env.Error)
	assert.Equal(t, "Invalid JSON format", env.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBook(t *testing.T) {
	h, mock := newTestServer(t)

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT `+bookCols+` FROM books WHERE id = $1`,
	)).WithArgs(int64(5)).WillReturnRows(sqlmock.NewRows(bookColNames).
		AddRow(5, "Solaris", "Lem", nil, "read", 4, "great", now, now))

	rec := do(h, "GET", "/api/books/5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var b models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, int64(5), b.ID)
	assert.Nil(t, b.Year)
	require.NotNil(t, b.Rating)
	assert.Equal(t, 4, *b.Rating)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBook_NotFound(t *testing.T) {
	h, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT `+bookCols+` FROM books WHERE id = $1`,
	)).WithArgs(int64(999999)).WillReturnRows(sqlmock.NewRows(bookColNames))

	rec := do(h, "GET", "/api/books/999999", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeErr(t, rec)
	assert.Equal(t, "not_found_error", env.Error)
	assert.Equal(t, "Book not found", env.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBook_NonNumericID(t *testing.T) {
	h, mock := newTestServer(t)

	rec := do(h, "GET", "/api/books/abc", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBook_RatingOutOfRange(t *testing.T) {
	h, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id FROM books WHERE id = $1 FOR UPDATE`,
	)).WithArgs(int64(3)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE books SET rating = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
	)).WithArgs(6, int64(3)).WillReturnError(&pgconn.PgError{
		Code:           pgerrcode.CheckViolation,
		ConstraintName: "books_rating_check",
		Message:        `new row for relation "books" violates check constraint "books_rating_check"`,
	})
	mock.ExpectRollback()

	rec := do(h, "PUT", "/api/books/3", `{"rating":6}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErr(t, rec)
	assert.Equal(t, "validation_error", env.Error)
	assert.Equal(t, "Rating must be between 1 and 5", env.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBook_NotFound(t *testing.T) {
	h, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id FROM books WHERE id = $1 FOR UPDATE`,
	)).WithArgs(int64(77)).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	rec := do(h, "PUT", "/api/books/77", `{"title":"x"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeErr(t, rec)
	assert.Equal(t, "not_found_error", env.Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBook_MalformedJSON(t *testing.T) {
	h, mock := newTestServer(t)

	rec := do(h, "PUT", "/api/books/3", `not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErr(t, rec)
	assert.Equal(t, "bad_request_error", env.Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBook(t *testing.T) {
	h, mock := newTestServer(t)

	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM books WHERE id = $1`,
	)).WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))

	rec := do(h, "DELETE", "/api/books/9", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBook_NotFound(t *testing.T) {
	h, mock := newTestServer(t)

	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM books WHERE id = $1`,
	)).WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	rec := do(h, "DELETE", "/api/books/9", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeErr(t, rec)
	assert.Equal(t, "not_found_error", env.Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBook_InvalidID(t *testing.T) {
	h, mock := newTestServer(t)

	rec := do(h, "DELETE", "/api/books/0", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErr(t, rec)
	assert.Equal(t, "bad_request_error", env.Error)
	assert.Equal(t, "Invalid book ID", env.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBooks(t *testing.T) {
	h, mock := newTestServer(t)

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT ` + bookCols + ` FROM books ORDER BY created_at DESC`,
	)).WillReturnRows(sqlmock.NewRows(bookColNames).
		AddRow(2, "Solaris", "Lem", 1961, "read", 5, nil, now, now).
		AddRow(1, "Piknik", "Strugatsky", nil, "planned", nil, nil, now, now))

	rec := do(h, "GET", "/api/books", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out []models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStats(t *testing.T) {
	h, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT status, COUNT(*) FROM books GROUP BY status`,
	)).WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
		AddRow("read", 2).AddRow("planned", 1))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT AVG(rating) FROM books WHERE rating IS NOT NULL`,
	)).WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(4.5))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM books`,
	)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectCommit()

	rec := do(h, "GET", "/api/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		ByStatus      map[string]int `json:"by_status"`
		AverageRating *float64       `json:"average_rating"`
		TotalBooks    int            `json:"total_books"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, map[string]int{"read": 2, "planned": 1}, stats.ByStatus)
	require.NotNil(t, stats.AverageRating)
	assert.InDelta(t, 4.5, *stats.AverageRating, 0.001)
	assert.Equal(t, 3, stats.TotalBooks)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMethodNotAllowed(t *testing.T) {
	h, mock := newTestServer(t)

	rec := do(h, "PATCH", "/api/books/1", `{"title":"x"}`)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
