// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/danielhkuo/trivia-api/cliparse"
	"github.com/danielhkuo/trivia-api/middleware"
	"github.com/danielhkuo/trivia-api/models"
)

type QuestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg}
}

// ListQuestions handles GET /questions
// Returns one page of all questions plus every category
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := allQuestions(r.Context(), h.db)
	if err != nil {
		zap.S().Errorw("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	page := Paginate(questions, PageParam(r), h.cfg.QuestionsPerPage)
	if len(page) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "page out of range")
		return
	}

	categories, err := allCategories(r.Context(), h.db)
	if err != nil {
		zap.S().Errorw("failed to list categories", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
		Categories:      categories,
	})
}

// GetQuestion handles GET /questions/:id
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "question id must be a positive integer")
		return
	}

	var q models.Question
	err := h.db.QueryRowContext(r.Context(), `
		SELECT `+questionColumns+`
		FROM question
		WHERE id = $1
	`, questionID).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "")
		return
	}
	if err != nil {
		zap.S().Errorw("failed to query question", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionResponse{
		Success:  true,
		Question: q,
	})
}

// CreateQuestion handles POST /questions
// A body carrying a non-empty searchTerm is a search instead of an insert
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if !parseBody(w, r, &req) {
		return
	}

	if req.SearchTerm != "" {
		h.search(w, r, req.SearchTerm)
		return
	}

	// Validate input
	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "question is required")
		return
	}
	if answer == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "answer is required")
		return
	}
	if req.Difficulty == nil || *req.Difficulty < models.MinDifficulty || *req.Difficulty > models.MaxDifficulty {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("difficulty must be between %d and %d", models.MinDifficulty, models.MaxDifficulty))
		return
	}
	if req.Category == nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "category is required")
		return
	}

	categoryID := int64(*req.Category)
	exists, err := categoryExists(r.Context(), h.db, categoryID)
	if err != nil {
		zap.S().Errorw("failed to check category", "category_id", categoryID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, fmt.Sprintf("category %d does not exist", categoryID))
		return
	}

	var questionID int64
	err = h.db.QueryRowContext(r.Context(), `
		INSERT INTO question (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, question, answer, categoryID, int(*req.Difficulty)).Scan(&questionID)

	if err != nil {
		zap.S().Errorw("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	zap.S().Infow("question created", "question_id", questionID, "category_id", categoryID)

	questions, err := allQuestions(r.Context(), h.db)
	if err != nil {
		zap.S().Errorw("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CreateQuestionResponse{
		Success:         true,
		Created:         questionID,
		CurrentCategory: categoryID,
		Questions:       Paginate(questions, PageParam(r), h.cfg.QuestionsPerPage),
		TotalQuestions:  len(questions),
	})
}

// SearchQuestions handles POST /questions/search
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if !parseBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.SearchTerm) == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "searchTerm is required")
		return
	}

	h.search(w, r, req.SearchTerm)
}

// search writes one page of questions containing term.
// total_questions counts the whole bank, not just the matches.
func (h *QuestionHandler) search(w http.ResponseWriter, r *http.Request, term string) {
	matches, err := searchQuestions(r.Context(), h.db, term)
	if err != nil {
		zap.S().Errorw("failed to search questions", "term", term, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	total, err := countQuestions(r.Context(), h.db)
	if err != nil {
		zap.S().Errorw("failed to count questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Success:         true,
		Questions:       Paginate(matches, PageParam(r), h.cfg.QuestionsPerPage),
		TotalQuestions:  total,
		CurrentCategory: nil,
	})
}

// DeleteQuestion handles DELETE /questions/:id
// Deleting an unknown question is unprocessable rather than not found
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "question id must be a positive integer")
		return
	}

	result, err := h.db.ExecContext(r.Context(), "DELETE FROM question WHERE id = $1", questionID)
	if err != nil {
		zap.S().Errorw("failed to delete question", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		zap.S().Errorw("failed to read rows affected", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, fmt.Sprintf("question %d does not exist", questionID))
		return
	}

	zap.S().Infow("question deleted", "question_id", questionID)

	questions, err := allQuestions(r.Context(), h.db)
	if err != nil {
		zap.S().Errorw("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteQuestionResponse{
		Success:           true,
		DeleteQuestionID:  questionID,
		CurrentQuestions:  Paginate(questions, PageParam(r), h.cfg.QuestionsPerPage),
		TotalNumQuestions: len(questions),
	})
}
