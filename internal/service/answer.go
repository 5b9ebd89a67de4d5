package service

import (
	"context"
	"fmt"

	"github.com/msomdec/qa-board/internal/domain"
)

// AnswerService specializes the shared content lifecycle for answers.
// Answers have no children, so there is nothing to cascade.
type AnswerService struct {
	content[domain.AnswerContent]
	answers   domain.AnswerRepository
	questions domain.QuestionRepository
}

// NewAnswerService creates a new AnswerService.
func NewAnswerService(answers domain.AnswerRepository, questions domain.QuestionRepository, users domain.UserRepository) *AnswerService {
	return &AnswerService{
		content:   content[domain.AnswerContent]{store: answers, users: users},
		answers:   answers,
		questions: questions,
	}
}

// Create persists a new answer under an existing question and returns
// its store-assigned id. The schema carries no foreign key, so the
// parent-existence check lives here.
func (s *AnswerService) Create(ctx context.Context, questionID int64, author, text string) (int64, error) {
	if author == "" {
		return 0, fmt.Errorf("%w: author is required", domain.ErrInvalidInput)
	}
	if text == "" {
		return 0, fmt.Errorf("%w: answer content is required", domain.ErrInvalidInput)
	}

	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return 0, err
	}

	a := &domain.Answer{QuestionID: questionID, Author: author, Content: text}
	if err := s.answers.Create(ctx, a); err != nil {
		return 0, fmt.Errorf("create answer: %w", err)
	}
	return a.ID, nil
}

// Update overwrites the answer text under the owner-or-admin rule.
func (s *AnswerService) Update(ctx context.Context, id int64, text, actingUsername string) error {
	if text == "" {
		return fmt.Errorf("%w: answer content is required", domain.ErrInvalidInput)
	}
	return s.content.Update(ctx, id, domain.AnswerContent{Text: text}, actingUsername)
}

// GetAnswersForQuestion returns the answers whose parent id matches, in
// insertion order.
func (s *AnswerService) GetAnswersForQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	return s.answers.ListByQuestion(ctx, questionID)
}

// GetByID returns an answer by id.
func (s *AnswerService) GetByID(ctx context.Context, id int64) (*domain.Answer, error) {
	return s.answers.GetByID(ctx, id)
}

// ListAll returns every answer in insertion order.
func (s *AnswerService) ListAll(ctx context.Context) ([]domain.Answer, error) {
	return s.answers.ListAll(ctx)
}
