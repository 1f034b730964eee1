// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

type seedQuestion struct {
	question   string
	answer     string
	category   string
	difficulty int
}

// Inserted in this order, so a fresh database gives Science id 1 through Sports id 6
var seedCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

var seedQuestions = []seedQuestion{
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", "History", 2},
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", "History", 1},
	{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", "Entertainment", 4},
	{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", "Entertainment", 4},
	{"What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", "Entertainment", 3},
	{"Which is the only team to play in every soccer World Cup tournament?", "Brazil", "Sports", 3},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", "Sports", 4},
	{"Who invented Peanut Butter?", "George Washington Carver", "History", 2},
	{"What is the largest lake in Africa?", "Lake Victoria", "Geography", 2},
	{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", "Geography", 3},
	{"The Taj Mahal is located in which Indian city?", "Agra", "Geography", 2},
	{"Which Dutch graphic artist-initials M C was a creator of optical illusions?", "Escher", "Art", 1},
	{"La Giaconda is better known as what?", "Mona Lisa", "Art", 3},
	{"How many paintings did Van Gogh sell in his lifetime?", "One", "Art", 4},
	{"Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", "Jackson Pollock", "Art", 2},
	{"What is the heaviest organ in the human body?", "The Liver", "Science", 4},
	{"Who discovered penicillin?", "Alexander Fleming", "Science", 3},
	{"Hematology is a branch of medicine involving the study of what?", "Blood", "Science", 4},
	{"Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", "History", 4},
}

// Seed loads the sample categories and questions.
// It does nothing when any category already exists, so it is safe to rerun.
func Seed(ctx context.Context, db *sql.DB) (categories, questions int, err error) {
	var existing int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM category").Scan(&existing); err != nil {
		return 0, 0, fmt.Errorf("count categories: %w", err)
	}
	if existing > 0 {
		return 0, 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	ids := make(map[string]int64, len(seedCategories))
	for _, label := range seedCategories {
		var id int64
		err := tx.QueryRowContext(ctx, "INSERT INTO category (type) VALUES ($1) RETURNING id", label).Scan(&id)
		if err != nil {
			return 0, 0, fmt.Errorf("insert category %q: %w", label, err)
		}
		ids[label] = id
	}

	for _, q := range seedQuestions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO question (question, answer, category, difficulty)
			VALUES ($1, $2, $3, $4)
		`, q.question, q.answer, ids[q.category], q.difficulty)
		if err != nil {
			return 0, 0, fmt.Errorf("insert question %q: %w", q.question, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit seed transaction: %w", err)
	}

	return len(seedCategories), len(seedQuestions), nil
}
