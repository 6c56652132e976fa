package models

import (
	"time"

	"github.com/google/uuid"
)

// Question is a captured user prompt with its classification tags.
// Tag fields are nullable free text; language and githubRepo are
// normalized before storage.
type Question struct {
	ID            uuid.UUID `json:"id"`
	Prompt        string    `json:"prompt"`
	Language      *string   `json:"language"`
	TopicLanguage *string   `json:"topicLanguage"`
	Framework     *string   `json:"framework"`
	Runtime       *string   `json:"runtime"`
	SourceIde     *string   `json:"sourceIde"`
	GithubRepo    *string   `json:"githubRepo"`
	AskedAt       time.Time `json:"askedAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// QuestionWithAnswers is a question plus all answers referencing it,
// as returned by the date listing endpoints.
type QuestionWithAnswers struct {
	Question
	Answers []Answer `json:"answers"`
}
