package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrNotInteger is returned when a FlexInt field holds anything but an integer
var ErrNotInteger = errors.New("not an integer")

// Difficulty bounds
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// AllCategories selects every category in a quiz request
const AllCategories = 0

// Domain types

type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// FlexInt decodes from a JSON number or a numeric string.
// Form selects in browsers submit "3" as often as 3.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotInteger, data)
	}
	*f = FlexInt(n)
	return nil
}

// Request types

// CreateQuestionRequest doubles as the search request: a non-empty
// SearchTerm turns POST /questions into a search.
type CreateQuestionRequest struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Category   *FlexInt `json:"category"`
	Difficulty *FlexInt `json:"difficulty"`
	SearchTerm string   `json:"searchTerm"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type QuizCategory struct {
	ID   *FlexInt `json:"id"`
	Type string   `json:"type"`
}

type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Response types

type CategoriesResponse struct {
	Success         bool             `json:"success"`
	Categories      map[int64]string `json:"categories"`
	TotalCategories int              `json:"total_categories"`
}

type QuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory *int64     `json:"current_category"`
	Categories      []Category `json:"categories,omitempty"`
}

type QuestionResponse struct {
	Success  bool     `json:"success"`
	Question Question `json:"question"`
}

type CreateQuestionResponse struct {
	Success         bool       `json:"success"`
	Created         int64      `json:"created"`
	CurrentCategory int64      `json:"current_category"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
}

type DeleteQuestionResponse struct {
	Success           bool       `json:"success"`
	DeleteQuestionID  int64      `json:"delete_question_id"`
	CurrentQuestions  []Question `json:"current_questions"`
	TotalNumQuestions int        `json:"total_num_questions"`
}

// Question is nil once every question in the category has been played
type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
