// Package history keeps an append-only log of completed explanations.
//
// Nothing on the request path reads it back. Writes are best-effort: a lost
// record is logged and counted, never reported to the user.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/kdduha/code-explainer/internal/config"
)

// Record is one completed request/response pair.
type Record struct {
	ID               string    `json:"id"`
	Code             string    `json:"code"`
	Language         string    `json:"language"`
	Explanation      string    `json:"explanation"`
	DetectedLanguage string    `json:"detectedLanguage"`
	ResponseTimeMS   int64     `json:"responseTime"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Store is an insert-only sink. Implementations must be safe for concurrent use.
type Store interface {
	Create(ctx context.Context, rec Record) (Record, error)
	Close() error
}

// Open builds the store selected by cfg.Driver. It returns a nil Store for
// the "none" driver.
func Open(ctx context.Context, cfg config.HistoryConfig) (Store, error) {
	switch cfg.Driver {
	case config.HistoryNone:
		return nil, nil
	case config.HistoryMemory:
		return NewMemoryStore(), nil
	case config.HistorySQLite:
		return NewSQLiteStore(ctx, cfg.SQLitePath)
	case config.HistoryPostgres:
		return NewPostgresStore(ctx, cfg.PostgresDSN)
	case config.HistoryRedis:
		return NewRedisStore(cfg.Redis), nil
	default:
		return nil, fmt.Errorf("unsupported history driver %q", cfg.Driver)
	}
}
