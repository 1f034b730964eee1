// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the trivia API.

# Route Registration

NewRouter creates the complete handler, with middleware applied:

	handler := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Categories:

	GET /categories                - All categories keyed by id
	GET /categories/{id}/questions - Page of a category's questions

Questions:

	GET    /questions?page=N - Page of all questions plus categories
	POST   /questions        - Create a question, or search when searchTerm is set
	POST   /questions/search - Search question text
	GET    /questions/{id}   - One question
	DELETE /questions/{id}   - Delete a question

Quiz:

	POST /quizzes - Next random question not yet played

# Middleware Order

From the outside in:

	Recover → CORS → JSONErrors → ServeMux → WithLogging → handler

CORS sits outside the mux so preflight OPTIONS requests never reach
routing. JSONErrors turns the mux's unknown-route and wrong-method replies
into JSON envelopes.
*/
package router
