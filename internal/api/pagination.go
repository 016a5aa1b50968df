package api

import (
	"net/http"
	"strconv"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// paginationParams holds parsed pagination values from query params.
// Pages are 1-indexed at the API boundary.
type paginationParams struct {
	Page  int
	Limit int
}

// parsePagination extracts page and limit from query params. Absent or
// malformed values fall back to defaults; limit is capped to keep a
// single page bounded.
func parsePagination(r *http.Request) paginationParams {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return paginationParams{Page: page, Limit: limit}
}
