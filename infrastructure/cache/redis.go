package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/ads-metrics-api/internal/domain"
)

// RedisSummaryStore implementa aggregating.SummaryCache sobre Redis. As
// entradas são serializadas em JSON e expiram pelo TTL informado no Set;
// não há invalidação manual.
type RedisSummaryStore struct {
	client *redis.Client
}

func NewRedisSummaryStore(client *redis.Client) *RedisSummaryStore {
	return &RedisSummaryStore{client: client}
}

func (s *RedisSummaryStore) Get(ctx context.Context, key string) (*domain.AccountMetricsSummary, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summary domain.AccountMetricsSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (s *RedisSummaryStore) Set(ctx context.Context, key string, summary *domain.AccountMetricsSummary, ttl time.Duration) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key, payload, ttl).Err()
}
