package models

import (
	"time"

	"github.com/google/uuid"
)

// Answer is a captured assistant response tied to exactly one
// question. Answers never outlive their question (ON DELETE CASCADE).
type Answer struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"questionId"`
	Content    string    `json:"content"`
	IsCorrect  bool      `json:"isCorrect"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
