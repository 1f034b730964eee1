// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/trivia-api/cliparse"
	"github.com/danielhkuo/trivia-api/db"
	"github.com/danielhkuo/trivia-api/models"
)

// TestDBURL is an in-memory SQLite database, private to each SetupTestDB call
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema.
// The connection is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SeedTestDB loads the sample data: categories Science(1), Art(2),
// Geography(3), History(4), Entertainment(5), Sports(6) and their questions.
// Returns the number of questions inserted.
func SeedTestDB(t *testing.T, conn *sql.DB) int {
	t.Helper()

	_, n, err := db.Seed(context.Background(), conn)
	if err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return n
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		DatabaseURL:      TestDBURL,
		DatabaseType:     cliparse.DatabaseSQLite,
		Env:              "test",
		QuestionsPerPage: 10,
		CORSOrigin:       "*",
	}
}

// CreateTestCategory inserts a category and returns its ID
func CreateTestCategory(t *testing.T, conn *sql.DB, label string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow("INSERT INTO category (type) VALUES ($1) RETURNING id", label).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return id
}

// CreateTestQuestion inserts a question and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, question, answer string, categoryID int64, difficulty int) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO question (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, question, answer, categoryID, difficulty).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// CountQuestions returns the number of rows in the question table
func CountQuestions(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM question").Scan(&n); err != nil {
		t.Fatalf("Failed to count questions: %v", err)
	}

	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		if s, ok := body.(string); ok {
			raw = []byte(s)
		} else {
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the status code and the error envelope
func AssertError(t *testing.T, w *httptest.ResponseRecorder, expected int, message string) {
	t.Helper()
	AssertStatus(t, w, expected)

	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)

	if resp.Success {
		t.Error("Expected success false in error envelope")
	}
	if resp.Error != expected {
		t.Errorf("Expected error %d, got %d", expected, resp.Error)
	}
	if resp.Message != message {
		t.Errorf("Expected message '%s', got '%s'", message, resp.Message)
	}
}
