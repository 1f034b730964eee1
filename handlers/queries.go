// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/danielhkuo/trivia-api/models"
)

const questionColumns = "id, question, answer, category, difficulty"

// queryQuestions runs a SELECT over questionColumns and scans every row
func queryQuestions(ctx context.Context, db *sql.DB, query string, args ...any) ([]models.Question, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

// allQuestions returns every question ordered by id
func allQuestions(ctx context.Context, db *sql.DB) ([]models.Question, error) {
	return queryQuestions(ctx, db, "SELECT "+questionColumns+" FROM question ORDER BY id")
}

func countQuestions(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM question").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}

// allCategories returns every category ordered by id
func allCategories(ctx context.Context, db *sql.DB) ([]models.Category, error) {
	rows, err := db.QueryContext(ctx, "SELECT id, type FROM category ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

func categoryExists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM category WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	return exists, nil
}

// likePattern builds a LIKE pattern matching term anywhere, with the LIKE
// metacharacters in term escaped by backslash
func likePattern(term string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(strings.ToLower(term)) + "%"
}

// searchQuestions finds questions whose text contains term, ignoring case
func searchQuestions(ctx context.Context, db *sql.DB, term string) ([]models.Question, error) {
	return queryQuestions(ctx, db, `
		SELECT `+questionColumns+`
		FROM question
		WHERE LOWER(question) LIKE $1 ESCAPE '\'
		ORDER BY id
	`, likePattern(term))
}

// quizCandidates lists the questions a quiz may still ask: in categoryID
// (any category for models.AllCategories) and not already in previous.
// previous is filtered here rather than in SQL, since a long game would
// exceed the driver's bound-parameter limit.
func quizCandidates(ctx context.Context, db *sql.DB, categoryID int64, previous []int64) ([]models.Question, error) {
	var (
		questions []models.Question
		err       error
	)
	if categoryID == models.AllCategories {
		questions, err = allQuestions(ctx, db)
	} else {
		questions, err = queryQuestions(ctx, db,
			"SELECT "+questionColumns+" FROM question WHERE category = $1 ORDER BY id", categoryID)
	}
	if err != nil {
		return nil, err
	}

	if len(previous) == 0 {
		return questions, nil
	}

	asked := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}

	return slices.DeleteFunc(questions, func(q models.Question) bool {
		_, ok := asked[q.ID]
		return ok
	}), nil
}

// pathID reads a positive integer path parameter
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
