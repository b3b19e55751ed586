package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS user_states (
	key TEXT PRIMARY KEY,
	document JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

type postgresStateRepository struct {
	db *sql.DB
}

// NewPostgresStateRepository opens dsn and creates the state table
func NewPostgresStateRepository(ctx context.Context, dsn string) (repository.StateRepository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn must not be empty")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	repo, err := NewPostgresStateRepositoryWithDB(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// NewPostgresStateRepositoryWithDB uses an open connection pool
func NewPostgresStateRepositoryWithDB(ctx context.Context, db *sql.DB) (repository.StateRepository, error) {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &postgresStateRepository{db: db}, nil
}

// Get loads the document of key
func (p *postgresStateRepository) Get(ctx context.Context, key string) (*entity.UserState, error) {
	var doc []byte
	err := p.db.QueryRowContext(ctx, `SELECT document FROM user_states WHERE key = $1`, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}
	return decodeState(doc)
}

// Set upserts the document of key
func (p *postgresStateRepository) Set(ctx context.Context, key string, state entity.UserState) error {
	doc, err := encodeState(state)
	if err != nil {
		return err
	}

	_, err = p.db.ExecContext(ctx, `
INSERT INTO user_states (key, document, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		key, doc, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Delete removes the document of key
func (p *postgresStateRepository) Delete(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM user_states WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	return nil
}

// Flush closes the connection pool
func (p *postgresStateRepository) Flush(ctx context.Context) error {
	return p.db.Close()
}
