// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
)

// PageParam reads the 1-based ?page= parameter.
// Missing or non-numeric values mean page 1, matching what browsers send on first load.
func PageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns page number page (1-based) of items, size items per page.
// Pages before the first or past the last are empty. The result is never nil.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 || len(items) == 0 {
		return []T{}
	}

	// Compare page numbers before multiplying so huge pages cannot overflow
	lastPage := (len(items)-1)/size + 1
	if page > lastPage {
		return []T{}
	}

	start := (page - 1) * size
	end := min(start+size, len(items))

	return items[start:end]
}
