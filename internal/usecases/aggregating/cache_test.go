package aggregating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-metrics-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fakeStore struct {
	entries map[string]*domain.AccountMetricsSummary
	lastTTL time.Duration
	getErr  error
	setErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string]*domain.AccountMetricsSummary)}
}

func (f *fakeStore) Get(_ context.Context, key string) (*domain.AccountMetricsSummary, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entries[key], nil
}

func (f *fakeStore) Set(_ context.Context, key string, summary *domain.AccountMetricsSummary, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = summary
	f.lastTTL = ttl
	return nil
}

// Hit: a resposta vem do cache e o pipeline (e o upstream) não é acionado.
func TestCachedAggregator_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa: um hit não pode tocar o client.
	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(testConfig(), mockClient)

	store := newFakeStore()
	credentials := testCredentials()
	cached := &domain.AccountMetricsSummary{ActiveCampaigns: 7, CTR: "1.00%", CPC: "0.10"}
	store.entries[CacheKey(credentials)] = cached

	aggregator := service.WithCache(store, time.Minute)

	summary, err := aggregator.AccountMetrics(context.Background(), credentials)
	require.NoError(t, err)
	assert.Same(t, cached, summary)
}

// Miss: o pipeline roda e o resultado é gravado com o TTL configurado.
func TestCachedAggregator_MissPopulatesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(testConfig(), mockClient)

	mockClient.EXPECT().
		GetAdCampaignsByAccountID(gomock.Any(), "123", "tok").
		Return([]metadomain.Campaign{}, nil)

	store := newFakeStore()
	aggregator := service.WithCache(store, 30*time.Second)

	credentials := testCredentials()
	summary, err := aggregator.AccountMetrics(context.Background(), credentials)
	require.NoError(t, err)

	assert.Equal(t, summary, store.entries[CacheKey(credentials)])
	assert.Equal(t, 30*time.Second, store.lastTTL)
}

// Erro no cache é tratado como miss: a requisição segue sem cache.
func TestCachedAggregator_FailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(testConfig(), mockClient)

	mockClient.EXPECT().
		GetAdCampaignsByAccountID(gomock.Any(), "123", "tok").
		Return([]metadomain.Campaign{}, nil)

	store := newFakeStore()
	store.getErr = errors.New("redis indisponível")
	store.setErr = errors.New("redis indisponível")

	aggregator := service.WithCache(store, time.Minute)

	summary, err := aggregator.AccountMetrics(context.Background(), testCredentials())
	require.NoError(t, err)
	assert.Zero(t, summary.ActiveCampaigns)
}

// Erros do pipeline não são cacheados.
func TestCachedAggregator_DoesNotCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(testConfig(), mockClient)

	mockClient.EXPECT().
		GetAdCampaignsByAccountID(gomock.Any(), "123", "tok").
		Return(nil, &metadomain.UpstreamError{StatusCode: 401, Body: "nope"})

	store := newFakeStore()
	aggregator := service.WithCache(store, time.Minute)

	_, err := aggregator.AccountMetrics(context.Background(), testCredentials())
	require.Error(t, err)
	assert.Empty(t, store.entries)
}

func TestCacheKey(t *testing.T) {
	key := CacheKey(domain.Credentials{AccountID: "123", AccessToken: "super-secret-token"})

	assert.Contains(t, key, "metrics:summary:123:")
	// O token nunca aparece em claro na chave.
	assert.NotContains(t, key, "super-secret-token")

	other := CacheKey(domain.Credentials{AccountID: "123", AccessToken: "another-token"})
	assert.NotEqual(t, key, other)
}
