package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/qa-board/internal/domain"
)

// answerRepo implements domain.AnswerRepository using SQLite.
type answerRepo struct {
	db *sql.DB
}

func (r *answerRepo) Create(ctx context.Context, answer *domain.Answer) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (question_id, author, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		answer.QuestionID, answer.Author, answer.Content, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	answer.ID = id
	answer.CreatedAt = now
	answer.UpdatedAt = now
	return nil
}

func (r *answerRepo) GetByID(ctx context.Context, id int64) (*domain.Answer, error) {
	a := &domain.Answer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, question_id, author, content, created_at, updated_at
		 FROM answers WHERE id = ?`, id,
	).Scan(&a.ID, &a.QuestionID, &a.Author, &a.Content, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query answer by id: %w", err)
	}
	return a, nil
}

func (r *answerRepo) ListAll(ctx context.Context) ([]domain.Answer, error) {
	return r.list(ctx,
		`SELECT id, question_id, author, content, created_at, updated_at
		 FROM answers ORDER BY id`)
}

func (r *answerRepo) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	return r.list(ctx,
		`SELECT id, question_id, author, content, created_at, updated_at
		 FROM answers WHERE question_id = ? ORDER BY id`, questionID)
}

func (r *answerRepo) list(ctx context.Context, query string, args ...any) ([]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Author, &a.Content, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (r *answerRepo) AuthorOf(ctx context.Context, id int64) (string, error) {
	var author string
	err := r.db.QueryRowContext(ctx,
		"SELECT author FROM answers WHERE id = ?", id,
	).Scan(&author)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("query answer author: %w", err)
	}
	return author, nil
}

func (r *answerRepo) UpdateContent(ctx context.Context, id int64, content domain.AnswerContent) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE answers SET content = ?, updated_at = ? WHERE id = ?`,
		content.Text, time.Now().UTC(), id,
	)
	if err != nil {
		return 0, fmt.Errorf("update answer: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}

// Disconnect matches on id and author together; see the question
// repository for the zero-row semantics.
func (r *answerRepo) Disconnect(ctx context.Context, id int64, author string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE answers SET author = ? WHERE id = ? AND author = ?`,
		domain.AnonymousAuthor, id, author,
	)
	if err != nil {
		return 0, fmt.Errorf("disconnect answer: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}

func (r *answerRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM answers WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("delete answer: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}
