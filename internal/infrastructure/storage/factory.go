package storage

import (
	"context"
	"fmt"

	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
)

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Options selects and configures a state store
type Options struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
	Redis       RedisOptions
}

// Open creates the state store of opts.Driver, memory when empty
func Open(ctx context.Context, opts Options) (repository.StateRepository, error) {
	switch opts.Driver {
	case "", DriverMemory:
		return NewMemoryStateRepository(), nil
	case DriverSQLite:
		return NewSQLiteStateRepository(opts.SQLitePath)
	case DriverPostgres:
		return NewPostgresStateRepository(ctx, opts.PostgresDSN)
	case DriverRedis:
		return NewRedisStateRepository(ctx, opts.Redis)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
