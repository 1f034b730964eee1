// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /questions", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms) through the global zap logger. The request id comes
from X-Request-ID or a fresh UUID and is echoed on the response.

# CORS Middleware

Enable cross-origin requests for frontend access:

	handler := middleware.CORS(cfg.CORSOrigin, mux)

Allows methods GET, PATCH, POST, DELETE, OPTIONS. Preflight requests
are answered directly.

# Error Envelopes

Every error body has the same shape:

	{"success": false, "error": 404, "message": "resource not found"}

The message is fixed per status code (see ErrorMessage). JSONErrors
rewrites the mux's own plain-text 404/405 replies into this envelope and
Recover turns panics into a 500 envelope.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "answer is required")

	var req models.SearchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
