package history

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/kdduha/code-explainer/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisStore appends records to a capped Redis stream.
type RedisStore struct {
	client *redis.Client
	stream string
	maxLen int64
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{
		client: rdb,
		stream: cfg.Stream,
		maxLen: cfg.MaxLen,
	}
}

func (r *RedisStore) Create(ctx context.Context, rec Record) (Record, error) {
	err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		MaxLen: r.maxLen,
		Approx: true,
		Values: map[string]any{
			"id":                rec.ID,
			"code":              rec.Code,
			"language":          rec.Language,
			"explanation":       rec.Explanation,
			"detected_language": rec.DetectedLanguage,
			"response_time":     strconv.FormatInt(rec.ResponseTimeMS, 10),
			"created_at":        rec.CreatedAt.Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		return Record{}, fmt.Errorf("xadd %s: %w", r.stream, err)
	}
	return rec, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
