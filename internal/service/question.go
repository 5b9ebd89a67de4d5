package service

import (
	"context"
	"fmt"

	"github.com/msomdec/qa-board/internal/domain"
)

// QuestionService specializes the shared content lifecycle for
// questions and owns, transitively, the fate of their answers.
type QuestionService struct {
	content[domain.QuestionContent]
	questions domain.QuestionRepository
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questions domain.QuestionRepository, users domain.UserRepository) *QuestionService {
	return &QuestionService{
		content:   content[domain.QuestionContent]{store: questions, users: users},
		questions: questions,
	}
}

// Create persists a new question authored by the given user and returns
// its store-assigned id. Creation is open to any registered author; no
// authorization check applies.
func (s *QuestionService) Create(ctx context.Context, author, title, body string) (int64, error) {
	if author == "" {
		return 0, fmt.Errorf("%w: author is required", domain.ErrInvalidInput)
	}
	if title == "" || body == "" {
		return 0, fmt.Errorf("%w: title and body are required", domain.ErrInvalidInput)
	}

	q := &domain.Question{Author: author, Title: title, Body: body}
	if err := s.questions.Create(ctx, q); err != nil {
		return 0, fmt.Errorf("create question: %w", err)
	}
	return q.ID, nil
}

// Update overwrites title and body under the owner-or-admin rule.
func (s *QuestionService) Update(ctx context.Context, id int64, title, body, actingUsername string) error {
	if title == "" || body == "" {
		return fmt.Errorf("%w: title and body are required", domain.ErrInvalidInput)
	}
	return s.content.Update(ctx, id, domain.QuestionContent{Title: title, Body: body}, actingUsername)
}

// DeletePermanently removes the question and every answer referencing
// it. The repository performs both deletes in a single transaction,
// answers first, so a crash cannot strand orphaned answers. No
// authorization check happens here; the calling layer gates this on the
// admin role.
func (s *QuestionService) DeletePermanently(ctx context.Context, id int64) error {
	return s.content.DeletePermanently(ctx, id)
}

// GetByID returns a question by id.
func (s *QuestionService) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	return s.questions.GetByID(ctx, id)
}

// ListAll returns every question in insertion order.
func (s *QuestionService) ListAll(ctx context.Context) ([]domain.Question, error) {
	return s.questions.ListAll(ctx)
}
