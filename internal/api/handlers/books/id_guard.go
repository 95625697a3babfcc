package books

import (
	"net/http"
	"strconv"
)

// parseID reads the {id} path segment. A non-numeric segment means the
// request never matched a real resource path, so callers answer with the
// router's plain 404 rather than an application error.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
