// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/trivia-api/cliparse"
	"github.com/danielhkuo/trivia-api/middleware"
	"github.com/danielhkuo/trivia-api/models"
)

type CategoryHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCategoryHandler(db *sql.DB, cfg cliparse.Config) *CategoryHandler {
	return &CategoryHandler{db: db, cfg: cfg}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := allCategories(r.Context(), h.db)
	if err != nil {
		zap.S().Errorw("failed to list categories", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	if len(categories) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "no categories")
		return
	}

	byID := make(map[int64]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Type
	}

	middleware.JSONResponse(w, http.StatusOK, models.CategoriesResponse{
		Success:         true,
		Categories:      byID,
		TotalCategories: len(categories),
	})
}

// ListCategoryQuestions handles GET /categories/:id/questions
// Returns one page of the category's questions
func (h *CategoryHandler) ListCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "category id must be a positive integer")
		return
	}

	questions, err := queryQuestions(r.Context(), h.db, `
		SELECT `+questionColumns+`
		FROM question
		WHERE category = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		zap.S().Errorw("failed to list category questions", "category_id", categoryID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	if len(questions) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "no questions in category")
		return
	}

	page := Paginate(questions, PageParam(r), h.cfg.QuestionsPerPage)
	if len(page) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "page out of range")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  len(questions),
		CurrentCategory: &categoryID,
	})
}
