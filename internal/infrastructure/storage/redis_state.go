package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
)

// redisKeyPrefix namespace of state documents
const redisKeyPrefix = "dramrate:state:"

// RedisOptions connection settings of the redis store
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

type redisStateRepository struct {
	client *redis.Client
}

// NewRedisStateRepository connects to redis and checks the connection
func NewRedisStateRepository(ctx context.Context, opts RedisOptions) (repository.StateRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewRedisStateRepositoryWithClient(client), nil
}

// NewRedisStateRepositoryWithClient uses an existing client
func NewRedisStateRepositoryWithClient(client *redis.Client) repository.StateRepository {
	return &redisStateRepository{client: client}
}

// Get loads the document of key
func (r *redisStateRepository) Get(ctx context.Context, key string) (*entity.UserState, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return decodeState(data)
}

// Set replaces the document of key, without expiration
func (r *redisStateRepository) Set(ctx context.Context, key string, state entity.UserState) error {
	doc, err := encodeState(state)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, doc, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes the document of key
func (r *redisStateRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Flush closes the client
func (r *redisStateRepository) Flush(ctx context.Context) error {
	return r.client.Close()
}
