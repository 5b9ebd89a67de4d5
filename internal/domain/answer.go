package domain

import (
	"context"
	"time"
)

// Answer is a content record attached to exactly one question. The
// parent question id is immutable after creation.
type Answer struct {
	ID         int64
	QuestionID int64
	Author     string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AnswerContent is the caller-editable portion of an answer.
type AnswerContent struct {
	Text string
}

// AnswerRepository defines persistence operations for answers. There is
// no SQL foreign key on the parent question id; the answer service
// checks the parent exists at creation, and the question repository
// removes dependent answers when a question is deleted.
type AnswerRepository interface {
	Create(ctx context.Context, answer *Answer) error
	GetByID(ctx context.Context, id int64) (*Answer, error)
	ListAll(ctx context.Context) ([]Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]Answer, error)
	AuthorOf(ctx context.Context, id int64) (string, error)
	UpdateContent(ctx context.Context, id int64, content AnswerContent) (int64, error)
	Disconnect(ctx context.Context, id int64, author string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
