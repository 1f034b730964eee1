// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Question: id, question, answer, category, difficulty
  - Category: id, type (display label)

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: question, answer, category, difficulty, searchTerm
  - SearchRequest: searchTerm
  - QuizRequest: previous_questions, quiz_category {id, type}

Numeric fields that browsers tend to send as strings (category, difficulty,
quiz_category.id) use FlexInt, which accepts 3 and "3" alike.

# Response Types

Every response carries a success flag:

  - CategoriesResponse: categories keyed by id
  - QuestionsResponse: a page of questions with totals
  - QuestionResponse: a single question
  - CreateQuestionResponse: created id plus the first page
  - DeleteQuestionResponse: deleted id plus the remaining page
  - QuizResponse: the next quiz question, or null when exhausted
  - ErrorResponse: success=false, error code, fixed message, optional detail

# Constants

	MinDifficulty = 1
	MaxDifficulty = 5
	AllCategories = 0 // quiz_category.id meaning "every category"
*/
package models
