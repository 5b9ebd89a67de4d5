package handler

import (
	"time"

	"github.com/msomdec/qa-board/internal/domain"
)

// UserDTO is the JSON representation of a user. The credential hash is
// never serialized.
type UserDTO struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		Role:        string(u.Role),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

// QuestionDTO is the JSON representation of a question.
type QuestionDTO struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toQuestionDTO(q *domain.Question) QuestionDTO {
	return QuestionDTO{
		ID:        q.ID,
		Author:    q.Author,
		Title:     q.Title,
		Body:      q.Body,
		CreatedAt: q.CreatedAt.Format(time.RFC3339),
		UpdatedAt: q.UpdatedAt.Format(time.RFC3339),
	}
}

func toQuestionDTOs(questions []domain.Question) []QuestionDTO {
	dtos := make([]QuestionDTO, len(questions))
	for i := range questions {
		dtos[i] = toQuestionDTO(&questions[i])
	}
	return dtos
}

// AnswerDTO is the JSON representation of an answer.
type AnswerDTO struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"questionId"`
	Author     string `json:"author"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

func toAnswerDTO(a *domain.Answer) AnswerDTO {
	return AnswerDTO{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Author:     a.Author,
		Content:    a.Content,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
}

func toAnswerDTOs(answers []domain.Answer) []AnswerDTO {
	dtos := make([]AnswerDTO, len(answers))
	for i := range answers {
		dtos[i] = toAnswerDTO(&answers[i])
	}
	return dtos
}
