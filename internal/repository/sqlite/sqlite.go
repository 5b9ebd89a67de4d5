package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/qa-board/internal/domain"
	"github.com/msomdec/qa-board/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection and hands out repository
// implementations bound to it. It implements domain.Database.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for
// use. It enables WAL mode and foreign key enforcement and limits the
// pool to a single connection, which the process owns exclusively for
// its lifetime.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all unapplied schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

// Users returns the user repository bound to this database.
func (d *DB) Users() domain.UserRepository {
	return &userRepo{db: d.SqlDB}
}

// Questions returns the question repository bound to this database.
func (d *DB) Questions() domain.QuestionRepository {
	return &questionRepo{db: d.SqlDB}
}

// Answers returns the answer repository bound to this database.
func (d *DB) Answers() domain.AnswerRepository {
	return &answerRepo{db: d.SqlDB}
}
