package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
)

type sqliteStateRepository struct {
	db *sql.DB
}

// NewSQLiteStateRepository SQLite backed state store
func NewSQLiteStateRepository(dbPath string) (repository.StateRepository, error) {
	if dbPath == "" {
		return nil, errors.New("db path must not be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	if err := createStateSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStateRepository{db: db}, nil
}

func createStateSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS user_states (
	key TEXT PRIMARY KEY,
	document TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Get loads the document of key
func (s *sqliteStateRepository) Get(ctx context.Context, key string) (*entity.UserState, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM user_states WHERE key = ?`, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}
	return decodeState([]byte(doc))
}

// Set replaces the document of key
func (s *sqliteStateRepository) Set(ctx context.Context, key string, state entity.UserState) error {
	doc, err := encodeState(state)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `INSERT OR REPLACE INTO user_states (key, document, updated_at) VALUES (?, ?, ?)`,
		key, string(doc), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Delete removes the document of key
func (s *sqliteStateRepository) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM user_states WHERE key = ?`, key)
	return err
}

// Flush closes the database
func (s *sqliteStateRepository) Flush(ctx context.Context) error {
	return s.db.Close()
}
