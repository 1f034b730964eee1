// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/trivia-api/models"
	"github.com/danielhkuo/trivia-api/testutil"
)

func TestListQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(db, cfg)
	total := testutil.SeedTestDB(t, db)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedLen    int
		expectedFirst  int64
	}{
		{"default page", "", http.StatusOK, 10, 1},
		{"page one", "?page=1", http.StatusOK, 10, 1},
		{"last page", "?page=2", http.StatusOK, total - 10, 11},
		{"non-numeric page", "?page=abc", http.StatusOK, 10, 1},
		{"page past the end", "?page=100", http.StatusNotFound, 0, 0},
		{"page zero", "?page=0", http.StatusNotFound, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ListQuestions(w, testutil.MakeRequest("GET", "/questions"+tt.query, nil, nil))

			if tt.expectedStatus == http.StatusNotFound {
				testutil.AssertError(t, w, http.StatusNotFound, "resource not found")
				return
			}

			testutil.AssertStatus(t, w, tt.expectedStatus)

			var resp models.QuestionsResponse
			testutil.AssertJSON(t, w, &resp)

			assert.True(t, resp.Success)
			require.Len(t, resp.Questions, tt.expectedLen)
			assert.Equal(t, tt.expectedFirst, resp.Questions[0].ID)
			assert.Equal(t, total, resp.TotalQuestions)
			assert.Nil(t, resp.CurrentCategory)
			assert.Len(t, resp.Categories, 6)
		})
	}
}

func TestListQuestions_CurrentCategoryIsNull(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db, testutil.GetTestConfig())
	testutil.SeedTestDB(t, db)

	w := httptest.NewRecorder()
	handler.ListQuestions(w, testutil.MakeRequest("GET", "/questions", nil, nil))

	assert.Contains(t, w.Body.String(), `"current_category":null`)
}

func TestGetQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db, testutil.GetTestConfig())

	catID := testutil.CreateTestCategory(t, db, "Science")
	qID := testutil.CreateTestQuestion(t, db, "Who discovered penicillin?", "Alexander Fleming", catID, 3)

	t.Run("existing", func(t *testing.T) {
		id := strconv.FormatInt(qID, 10)
		req := testutil.MakeRequest("GET", "/questions/"+id, nil, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.GetQuestion(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.QuestionResponse
		testutil.AssertJSON(t, w, &resp)

		assert.Equal(t, models.Question{
			ID:         qID,
			Question:   "Who discovered penicillin?",
			Answer:     "Alexander Fleming",
			Category:   catID,
			Difficulty: 3,
		}, resp.Question)
	})

	t.Run("missing", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/questions/999", nil, nil)
		req.SetPathValue("id", "999")
		w := httptest.NewRecorder()
		handler.GetQuestion(w, req)

		testutil.AssertError(t, w, http.StatusNotFound, "resource not found")
	})
}

func TestCreateQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(db, cfg)
	testutil.SeedTestDB(t, db)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.CreateQuestionResponse)
	}{
		{
			name: "valid question",
			requestBody: map[string]interface{}{
				"question": "test question", "answer": "test answer", "category": 1, "difficulty": 3,
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.CreateQuestionResponse) {
				assert.True(t, resp.Success)
				assert.NotZero(t, resp.Created)
				assert.EqualValues(t, 1, resp.CurrentCategory)
				assert.Len(t, resp.Questions, 10)

				var stored models.Question
				err := db.QueryRow("SELECT id, question, answer, category, difficulty FROM question WHERE id = $1", resp.Created).
					Scan(&stored.ID, &stored.Question, &stored.Answer, &stored.Category, &stored.Difficulty)
				require.NoError(t, err)
				assert.Equal(t, "test question", stored.Question)
				assert.Equal(t, 3, stored.Difficulty)
			},
		},
		{
			name: "numeric strings from form selects",
			requestBody: map[string]interface{}{
				"question": "string fields", "answer": "ok", "category": "2", "difficulty": "5",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.CreateQuestionResponse) {
				assert.EqualValues(t, 2, resp.CurrentCategory)
			},
		},
		{
			name:           "missing question",
			requestBody:    map[string]interface{}{"answer": "a", "category": 1, "difficulty": 1},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "blank answer",
			requestBody:    map[string]interface{}{"question": "q", "answer": "   ", "category": 1, "difficulty": 1},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "difficulty out of range",
			requestBody:    map[string]interface{}{"question": "q", "answer": "a", "category": 1, "difficulty": 6},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing category",
			requestBody:    map[string]interface{}{"question": "q", "answer": "a", "difficulty": 2},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "non-numeric difficulty",
			requestBody:    map[string]interface{}{"question": "q", "answer": "a", "category": 1, "difficulty": "x"},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "fractional category",
			requestBody:    map[string]interface{}{"question": "q", "answer": "a", "category": 1.5, "difficulty": 2},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown category",
			requestBody:    map[string]interface{}{"question": "q", "answer": "a", "category": 99, "difficulty": 2},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.CountQuestions(t, db)

			w := httptest.NewRecorder()
			handler.CreateQuestion(w, testutil.MakeRequest("POST", "/questions", tt.requestBody, nil))

			if tt.expectedStatus != http.StatusOK {
				testutil.AssertStatus(t, w, tt.expectedStatus)
				assert.Equal(t, before, testutil.CountQuestions(t, db), "failed create must not insert")
				return
			}

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp models.CreateQuestionResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, before+1, resp.TotalQuestions)
			tt.checkResponse(t, &resp)
		})
	}
}

func TestCreateQuestion_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db, testutil.GetTestConfig())
	total := testutil.SeedTestDB(t, db)

	tests := []struct {
		name        string
		term        string
		expectedLen int
	}{
		{"single match", "dutch", 1},
		{"case insensitive", "DUTCH", 1},
		{"substring inside a word", "title", 2},
		{"no match", "abcde", 0},
		{"wildcard is literal", "%", 0},
		{"whitespace term still searches", " ", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.CreateQuestion(w, testutil.MakeRequest("POST", "/questions", map[string]string{"searchTerm": tt.term}, nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp models.QuestionsResponse
			testutil.AssertJSON(t, w, &resp)

			assert.True(t, resp.Success)
			assert.Len(t, resp.Questions, tt.expectedLen)
			assert.Equal(t, total, resp.TotalQuestions)
			assert.Nil(t, resp.CurrentCategory)
		})
	}

	assert.Equal(t, total, testutil.CountQuestions(t, db), "searching must not insert")
}

func TestSearchQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db, testutil.GetTestConfig())
	testutil.SeedTestDB(t, db)

	t.Run("matches", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.SearchQuestions(w, testutil.MakeRequest("POST", "/questions/search", map[string]string{"searchTerm": "soccer"}, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.QuestionsResponse
		testutil.AssertJSON(t, w, &resp)

		require.Len(t, resp.Questions, 2)
		for _, q := range resp.Questions {
			assert.Contains(t, q.Question, "soccer")
		}
	})

	t.Run("empty term", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.SearchQuestions(w, testutil.MakeRequest("POST", "/questions/search", map[string]string{"searchTerm": " "}, nil))

		testutil.AssertError(t, w, http.StatusUnprocessableEntity, "unprocessable")
	})
}

func TestDeleteQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db, testutil.GetTestConfig())
	total := testutil.SeedTestDB(t, db)

	t.Run("existing question", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/questions/9", nil, nil)
		req.SetPathValue("id", "9")
		w := httptest.NewRecorder()
		handler.DeleteQuestion(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.DeleteQuestionResponse
		testutil.AssertJSON(t, w, &resp)

		assert.True(t, resp.Success)
		assert.EqualValues(t, 9, resp.DeleteQuestionID)
		assert.Len(t, resp.CurrentQuestions, 10)
		assert.Equal(t, total-1, resp.TotalNumQuestions)
		for _, q := range resp.CurrentQuestions {
			assert.NotEqualValues(t, 9, q.ID)
		}
	})

	t.Run("already deleted", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/questions/9", nil, nil)
		req.SetPathValue("id", "9")
		w := httptest.NewRecorder()
		handler.DeleteQuestion(w, req)

		testutil.AssertError(t, w, http.StatusUnprocessableEntity, "unprocessable")
	})

	t.Run("nonexistent question", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/questions/100", nil, nil)
		req.SetPathValue("id", "100")
		w := httptest.NewRecorder()
		handler.DeleteQuestion(w, req)

		testutil.AssertError(t, w, http.StatusUnprocessableEntity, "unprocessable")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/questions/abc", nil, nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		handler.DeleteQuestion(w, req)

		testutil.AssertError(t, w, http.StatusNotFound, "resource not found")
	})

	assert.Equal(t, total-1, testutil.CountQuestions(t, db))
}
