// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"math/rand/v2"
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/trivia-api/cliparse"
	"github.com/danielhkuo/trivia-api/middleware"
	"github.com/danielhkuo/trivia-api/models"
)

type QuizHandler struct {
	db  *sql.DB
	cfg cliparse.Config

	// pick returns an index in [0, n)
	pick func(n int) int
}

func NewQuizHandler(db *sql.DB, cfg cliparse.Config) *QuizHandler {
	return &QuizHandler{db: db, cfg: cfg, pick: rand.IntN}
}

// NextQuestion handles POST /quizzes
// Picks a random question from the requested category that is not among
// previous_questions. Returns a null question once the category is exhausted.
func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if !parseBody(w, r, &req) {
		return
	}

	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "quiz_category.id is required")
		return
	}

	categoryID := int64(*req.QuizCategory.ID)
	if categoryID < 0 {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "quiz_category.id must not be negative")
		return
	}

	candidates, err := quizCandidates(r.Context(), h.db, categoryID, req.PreviousQuestions)
	if err != nil {
		zap.S().Errorw("failed to load quiz candidates", "category_id", categoryID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	if len(candidates) == 0 {
		middleware.JSONResponse(w, http.StatusOK, models.QuizResponse{Success: true})
		return
	}

	question := candidates[h.pick(len(candidates))]

	middleware.JSONResponse(w, http.StatusOK, models.QuizResponse{
		Success:  true,
		Question: &question,
	})
}
