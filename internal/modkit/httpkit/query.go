package httpkit

import (
	"net/http"
	"strconv"

	perr "driftlog/internal/platform/errors"
)

// QueryPage reads page/page_size query params with the usual defaults
func QueryPage(r *http.Request) (page, pageSize int, err error) {
	page, pageSize = 1, 20
	q := r.URL.Query()
	if raw := q.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, perr.InvalidArgf("page must be an integer, got %q", raw)
		}
	}
	if raw := q.Get("page_size"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, perr.InvalidArgf("page_size must be an integer, got %q", raw)
		}
	}
	return page, pageSize, nil
}
