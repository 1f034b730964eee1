// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Trivia API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - CategoryHandler: Category listing and per-category questions
  - QuestionHandler: Question listing, lookup, creation, search and deletion
  - QuizHandler: Random quiz question selection

Handlers are created via constructor functions that accept *sql.DB and Config:

	questionHandler := handlers.NewQuestionHandler(db, cfg)

# Pagination

List endpoints read the page query parameter and return a slice of
cfg.QuestionsPerPage items:

	page := Paginate(questions, PageParam(r), h.cfg.QuestionsPerPage)

A page that comes back empty is reported as 404 by the listing endpoints.

# Questions

	GET    /questions?page=N  → ListQuestions
	GET    /questions/{id}    → GetQuestion
	POST   /questions         → CreateQuestion (or search when searchTerm is set)
	POST   /questions/search  → SearchQuestions
	DELETE /questions/{id}    → DeleteQuestion

Search is a case-insensitive substring match on the question text.

# Quizzes

	POST /quizzes → NextQuestion

NextQuestion picks uniformly among the questions of the requested category
that are not in previous_questions. Category id 0 means every category.
When nothing is left the response carries "question": null.
*/
package handlers
