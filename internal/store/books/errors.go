package books

import "errors"

// ErrNotFound is returned when no row matches the requested id. Handlers
// translate it to a 404; it never escapes as a raw driver error.
var ErrNotFound = errors.New("book not found")
