package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-metrics-api/internal/domain"
	"github.com/vfg2006/ads-metrics-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-metrics-api/internal/usecases/aggregating/mocks"
	"go.uber.org/mock/gomock"
)

func TestAccountMetricsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAggregator(ctrl)

	expected := &domain.AccountMetricsSummary{
		ActiveCampaigns:      2,
		TotalImpressions:     400,
		TotalClicks:          25,
		CTR:                  "6.25%",
		CPC:                  "0.60",
		Spent:                15.0,
		Conversions:          2.0,
		RecentCampaignsTotal: 2,
		RecentCampaigns: []domain.CampaignSummary{
			{ID: "1", Name: "A", Impressions: 100, Clicks: 10, CTR: "10.00%", CPC: "0.50"},
			{ID: "2", Name: "B", Impressions: 300, Clicks: 15, CTR: "5.00%", CPC: "0.67"},
		},
	}

	mockService.EXPECT().
		AccountMetrics(gomock.Any(), domain.Credentials{AccountID: "123", AccessToken: "tok"}).
		Return(expected, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/metrics", strings.NewReader(`{"account_id":"123","access_token":"tok"}`))
	rec := httptest.NewRecorder()

	AccountMetrics(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response domain.AccountMetricsSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, *expected, response)

	// Nomes de campos do contrato público.
	body := rec.Body.String()
	for _, field := range []string{
		"active_campaigns", "total_impressions", "total_clicks", "ctr", "cpc",
		"conversions", "spent", "engajamento", "recent_campaigns_total", "recent_campaigns",
	} {
		assert.Contains(t, body, `"`+field+`"`)
	}
}

// Credenciais ausentes são rejeitadas antes de qualquer chamada à rede: o
// serviço nem chega a ser acionado.
func TestAccountMetricsHandler_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa no mock.
	mockService := mocks.NewMockAggregator(ctrl)

	tests := []struct {
		name string
		body string
	}{
		{name: "token ausente", body: `{"account_id":""}`},
		{name: "conta ausente", body: `{"access_token":"tok"}`},
		{name: "corpo vazio", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/metrics", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			AccountMetrics(mockService).ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "missing account_id or access_token")
		})
	}
}

func TestAccountMetricsHandler_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAggregator(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/metrics", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	AccountMetrics(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Falha na listagem vira resposta de gateway preservando status e corpo do
// upstream.
func TestAccountMetricsHandler_ListingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAggregator(ctrl)

	mockService.EXPECT().
		AccountMetrics(gomock.Any(), gomock.Any()).
		Return(nil, &aggregating.ListingError{
			Upstream: &metadomain.UpstreamError{
				StatusCode: http.StatusUnauthorized,
				Body:       `{"error":{"message":"Invalid OAuth access token."}}`,
			},
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/metrics", strings.NewReader(`{"account_id":"123","access_token":"bad"}`))
	rec := httptest.NewRecorder()

	AccountMetrics(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var apiErr struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))

	assert.Equal(t, "SRV_003", apiErr.Code)
	assert.Equal(t, "Invalid OAuth access token.", apiErr.Message)
	assert.Equal(t, float64(http.StatusUnauthorized), apiErr.Details["upstream_status"])
}

func TestAccountMetricsHandler_InternalFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAggregator(ctrl)

	mockService.EXPECT().
		AccountMetrics(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodPost, "/v1/metrics", strings.NewReader(`{"account_id":"123","access_token":"tok"}`))
	rec := httptest.NewRecorder()

	AccountMetrics(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestAccountInsightSnapshotHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAggregator(ctrl)

	mockService.EXPECT().
		AccountSnapshot(gomock.Any(), domain.Credentials{AccountID: "123", AccessToken: "tok"}).
		Return(&domain.AccountInsightSnapshot{
			AccountID:   "123",
			Impressions: 400,
			Clicks:      25,
			CTR:         "6.25%",
			CPC:         "0.60",
			Spend:       15.0,
			DateStart:   "2020-01-01",
			DateStop:    "2026-01-01",
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/metrics/account", strings.NewReader(`{"account_id":"123","access_token":"tok"}`))
	rec := httptest.NewRecorder()

	AccountInsightSnapshot(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response domain.AccountInsightSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 400, response.Impressions)
	assert.Equal(t, "2020-01-01", response.DateStart)
}
