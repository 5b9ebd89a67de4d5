package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/qa-board/internal/domain"
)

// questionRepo implements domain.QuestionRepository using SQLite.
type questionRepo struct {
	db *sql.DB
}

func (r *questionRepo) Create(ctx context.Context, question *domain.Question) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (author, title, body, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		question.Author, question.Title, question.Body, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	question.ID = id
	question.CreatedAt = now
	question.UpdatedAt = now
	return nil
}

func (r *questionRepo) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	q := &domain.Question{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, author, title, body, created_at, updated_at
		 FROM questions WHERE id = ?`, id,
	).Scan(&q.ID, &q.Author, &q.Title, &q.Body, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query question by id: %w", err)
	}
	return q, nil
}

func (r *questionRepo) ListAll(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, author, title, body, created_at, updated_at
		 FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Author, &q.Title, &q.Body, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *questionRepo) AuthorOf(ctx context.Context, id int64) (string, error) {
	var author string
	err := r.db.QueryRowContext(ctx,
		"SELECT author FROM questions WHERE id = ?", id,
	).Scan(&author)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("query question author: %w", err)
	}
	return author, nil
}

func (r *questionRepo) UpdateContent(ctx context.Context, id int64, content domain.QuestionContent) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE questions SET title = ?, body = ?, updated_at = ? WHERE id = ?`,
		content.Title, content.Body, time.Now().UTC(), id,
	)
	if err != nil {
		return 0, fmt.Errorf("update question: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}

// Disconnect matches on id and author together: a request from anyone
// but the stored author, including a re-disconnect of an already
// anonymized row, affects zero rows.
func (r *questionRepo) Disconnect(ctx context.Context, id int64, author string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE questions SET author = ? WHERE id = ? AND author = ?`,
		domain.AnonymousAuthor, id, author,
	)
	if err != nil {
		return 0, fmt.Errorf("disconnect question: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}

// Delete removes the question and every answer referencing it in one
// transaction, answers first. Returns the number of question rows
// removed; deleting a missing id is not an error.
func (r *questionRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM answers WHERE question_id = ?", id); err != nil {
		return 0, fmt.Errorf("delete answers for question: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("delete question: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return rows, nil
}
