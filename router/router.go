// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/trivia-api/cliparse"
	"github.com/danielhkuo/trivia-api/handlers"
	"github.com/danielhkuo/trivia-api/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(db, cfg)
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	quizHandler := handlers.NewQuizHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Categories
	mux.HandleFunc("GET /categories", middleware.WithLogging(categoryHandler.ListCategories))
	mux.HandleFunc("GET /categories/{id}/questions", middleware.WithLogging(categoryHandler.ListCategoryQuestions))

	// Questions
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.ListQuestions))
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.CreateQuestion))
	mux.HandleFunc("POST /questions/search", middleware.WithLogging(questionHandler.SearchQuestions))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.GetQuestion))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.DeleteQuestion))

	// Quiz play
	mux.HandleFunc("POST /quizzes", middleware.WithLogging(quizHandler.NextQuestion))

	// Root endpoint (exact match; anything else unmatched is a JSON 404)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("trivia API v1"))
	})

	return middleware.Recover(middleware.CORS(cfg.CORSOrigin, middleware.JSONErrors(mux)))
}
