package aggregating

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/vfg2006/ads-metrics-api/internal/domain"
	"github.com/vfg2006/ads-metrics-api/pkg/log"
)

// SummaryCache armazena respostas agregadas por credencial com TTL explícito.
// Get devolve (nil, nil) em caso de miss; entradas nunca são mutadas.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*domain.AccountMetricsSummary, error)
	Set(ctx context.Context, key string, summary *domain.AccountMetricsSummary, ttl time.Duration) error
}

// WithCache habilita o cache de respostas agregadas por credencial. O cache é
// uma camada opcional na frente do pipeline e fica fora do contrato de
// correção dele: qualquer erro do armazenamento é tratado como miss.
func (s *Service) WithCache(store SummaryCache, ttl time.Duration) Aggregator {
	return &cachedAggregator{
		inner: s,
		store: store,
		ttl:   ttl,
	}
}

type cachedAggregator struct {
	inner *Service
	store SummaryCache
	ttl   time.Duration
}

// CacheKey deriva a chave de cache de uma credencial. O token nunca aparece
// em claro na chave; somente um prefixo do seu hash.
func CacheKey(credentials domain.Credentials) string {
	tokenHash := sha256.Sum256([]byte(credentials.AccessToken))
	return fmt.Sprintf("metrics:summary:%s:%s", credentials.AccountID, hex.EncodeToString(tokenHash[:8]))
}

func (c *cachedAggregator) AccountMetrics(ctx context.Context, credentials domain.Credentials) (*domain.AccountMetricsSummary, error) {
	logger := log.ForContext(ctx)
	key := CacheKey(credentials)

	cached, err := c.store.Get(ctx, key)
	if err != nil {
		logger.WithField("error", err.Error()).Warn("cache: leitura falhou, seguindo sem cache")
	} else if cached != nil {
		logger.WithField("account_id", credentials.AccountID).Debug("cache: resposta agregada servida do cache")
		return cached, nil
	}

	summary, err := c.inner.AccountMetrics(ctx, credentials)
	if err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, key, summary, c.ttl); err != nil {
		logger.WithField("error", err.Error()).Warn("cache: escrita falhou")
	}

	return summary, nil
}

// AccountSnapshot não passa pelo cache; é uma única chamada ao upstream.
func (c *cachedAggregator) AccountSnapshot(ctx context.Context, credentials domain.Credentials) (*domain.AccountInsightSnapshot, error) {
	return c.inner.AccountSnapshot(ctx, credentials)
}
