package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_Unmarshal(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"number", `3`, 3, false},
		{"string", `"4"`, 4, false},
		{"padded string", `" 5"`, 0, true},
		{"zero", `0`, 0, false},
		{"float", `2.5`, 0, true},
		{"word", `"History"`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tc.input), &f)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrNotInteger)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, int64(f))
		})
	}
}

func TestCreateQuestionRequest_BadDifficulty(t *testing.T) {
	var req CreateQuestionRequest
	err := json.Unmarshal([]byte(`{"question":"q","answer":"a","category":1,"difficulty":"x"}`), &req)
	assert.ErrorIs(t, err, ErrNotInteger)

	err = json.Unmarshal([]byte(`{"question":"q","answer":"a","category":1,"difficulty":`), &req)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotInteger)
}

func TestQuizRequest_MissingCategoryID(t *testing.T) {
	var req QuizRequest
	err := json.Unmarshal([]byte(`{"previous_questions":[9],"quiz_category":{"type":"History"}}`), &req)
	require.NoError(t, err)

	require.NotNil(t, req.QuizCategory)
	assert.Nil(t, req.QuizCategory.ID)
	assert.Equal(t, []int64{9}, req.PreviousQuestions)
}

func TestCategoriesResponse_KeysAreStrings(t *testing.T) {
	out, err := json.Marshal(CategoriesResponse{
		Success:         true,
		Categories:      map[int64]string{1: "Science", 2: "Art"},
		TotalCategories: 2,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"categories":{"1":"Science","2":"Art"},"total_categories":2}`, string(out))
}
