// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/trivia-api/middleware"
	"github.com/danielhkuo/trivia-api/models"
)

// parseBody decodes the JSON body into v and writes the error envelope on
// failure. Malformed JSON is 400; a non-integer id or difficulty is 422.
func parseBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := middleware.ParseJSONBody(r, v)
	if err == nil {
		return true
	}

	if errors.Is(err, models.ErrNotInteger) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}

	middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
	return false
}
