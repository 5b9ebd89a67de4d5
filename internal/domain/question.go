package domain

import (
	"context"
	"time"
)

// AnonymousAuthor is the sentinel username written in place of a real
// author when content is disconnected from its user. The content itself
// is preserved.
const AnonymousAuthor = "unknown"

// Question is a top-level content record. Author is mutable only
// through disconnect; the id is assigned by the store and stable.
type Question struct {
	ID        int64
	Author    string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuestionContent is the caller-editable portion of a question.
type QuestionContent struct {
	Title string
	Body  string
}

// QuestionRepository defines persistence operations for questions.
// Disconnect matches on id and author together, so a mismatched request
// affects zero rows. Delete removes the question and its dependent
// answers in one transaction.
type QuestionRepository interface {
	Create(ctx context.Context, question *Question) error
	GetByID(ctx context.Context, id int64) (*Question, error)
	ListAll(ctx context.Context) ([]Question, error)
	AuthorOf(ctx context.Context, id int64) (string, error)
	UpdateContent(ctx context.Context, id int64, content QuestionContent) (int64, error)
	Disconnect(ctx context.Context, id int64, author string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
