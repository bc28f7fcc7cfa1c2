package aggregating

import (
	"context"
	"errors"
	"sync"

	metadomain "github.com/vfg2006/ads-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-metrics-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-metrics-api/internal/config"
	"github.com/vfg2006/ads-metrics-api/internal/domain"
	"github.com/vfg2006/ads-metrics-api/pkg/log"
	"github.com/vfg2006/ads-metrics-api/pkg/utils"
)

// Aggregator expõe as operações de métricas atendidas pela API.
type Aggregator interface {
	// AccountMetrics executa o pipeline de agregação: lista as campanhas
	// ativas, busca os insights de cada uma concorrentemente e soma as
	// contribuições em totais da conta.
	AccountMetrics(ctx context.Context, credentials domain.Credentials) (*domain.AccountMetricsSummary, error)

	// AccountSnapshot busca o insight agregado da própria conta em uma
	// única chamada, sem passar pelas campanhas.
	AccountSnapshot(ctx context.Context, credentials domain.Credentials) (*domain.AccountInsightSnapshot, error)
}

type Service struct {
	cfg    *config.Config
	client metaclient.Client

	// Formatadores escolhidos na construção conforme METRIC_FORMAT.
	percent func(float64) string
	amount  func(float64) string
}

func NewService(cfg *config.Config, client metaclient.Client) *Service {
	percent := utils.FormatPercent
	amount := utils.FormatAmount
	if cfg.App.MetricFormat == config.MetricFormatTruncated {
		percent = utils.TruncatePercent
		amount = utils.TruncateAmount
	}

	return &Service{
		cfg:     cfg,
		client:  client,
		percent: percent,
		amount:  amount,
	}
}

func (s *Service) AccountMetrics(ctx context.Context, credentials domain.Credentials) (*domain.AccountMetricsSummary, error) {
	logger := log.ForContext(ctx)

	if credentials.AccountID == "" || credentials.AccessToken == "" {
		return nil, ErrMissingCredentials
	}

	// A listagem precisa completar antes do fan-out: é ela que define quais
	// campanhas buscar. A falha aqui é fatal, não há o que agregar.
	campaigns, err := s.client.GetAdCampaignsByAccountID(ctx, credentials.AccountID, credentials.AccessToken)
	if err != nil {
		var upstreamErr *metadomain.UpstreamError
		if errors.As(err, &upstreamErr) {
			logger.WithField("account_id", credentials.AccountID).
				WithField("status_code", upstreamErr.StatusCode).
				Error("aggregating: falha na listagem de campanhas")
			return nil, &ListingError{Upstream: upstreamErr}
		}

		return nil, err
	}

	// Fan-out concorrente com coleta posicional: a ordem da listagem é
	// preservada na resposta independentemente da ordem de término.
	summaries := make([]domain.CampaignSummary, len(campaigns))
	contributions := make([]domain.CampaignTotals, len(campaigns))

	var wg sync.WaitGroup
	for i := range campaigns {
		wg.Add(1)
		go func(i int, campaign metadomain.Campaign) {
			defer wg.Done()
			summaries[i], contributions[i] = s.fetchCampaign(ctx, campaign, credentials.AccessToken)
		}(i, campaigns[i])
	}
	wg.Wait()

	var totals domain.CampaignTotals
	for i := range contributions {
		totals.Add(contributions[i])
	}

	logger.WithFields(log.Fields{
		"account_id":       credentials.AccountID,
		"active_campaigns": len(campaigns),
	}).Info("aggregating: métricas da conta agregadas")

	return &domain.AccountMetricsSummary{
		ActiveCampaigns:      len(campaigns),
		TotalImpressions:     int(totals.Impressions),
		TotalClicks:          int(totals.Clicks),
		CTR:                  s.percent(utils.CTR(totals.Clicks, totals.Impressions)),
		CPC:                  s.amount(utils.CPC(totals.Spend, totals.Clicks)),
		Conversions:          totals.Conversions,
		Spent:                totals.Spend,
		Engagement:           totals.Engagement,
		RecentCampaignsTotal: len(campaigns),
		RecentCampaigns:      summaries,
	}, nil
}

// fetchCampaign busca e reduz os insights de uma campanha. Nunca propaga erro:
// qualquer falha individual é registrada e vira a campanha zerada com
// contribuição nula, para que uma campanha inacessível não derrube as irmãs.
func (s *Service) fetchCampaign(ctx context.Context, campaign metadomain.Campaign, accessToken string) (domain.CampaignSummary, domain.CampaignTotals) {
	summary := domain.CampaignSummary{
		ID:   campaign.ID,
		Name: campaign.Name,
		CTR:  s.percent(0),
		CPC:  s.amount(0),
	}

	insight, err := s.client.GetAdCampaignInsightsByID(ctx, campaign.ID, accessToken)
	if err != nil {
		logger := log.ForContext(ctx).WithFields(log.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		})

		if errors.Is(err, metadomain.ErrNoInsightData) {
			logger.Debug("aggregating: campanha sem dados de insights")
		} else {
			logger.Error("aggregating: falha recuperada ao buscar insights da campanha")
		}

		return summary, domain.CampaignTotals{}
	}

	impressions := utils.CoerceFloat(insight.Impressions)
	clicks := utils.CoerceFloat(insight.Clicks)
	spend := utils.CoerceFloat(insight.Spend)
	actions := metadomain.ReduceActions(insight.Actions)

	summary.Impressions = int(impressions)
	summary.Clicks = int(clicks)
	summary.CTR = s.percent(utils.CTR(clicks, impressions))
	summary.CPC = s.amount(utils.CPC(spend, clicks))

	return summary, domain.CampaignTotals{
		Impressions: impressions,
		Clicks:      clicks,
		Spend:       spend,
		Conversions: actions[metadomain.AccumulatorConversions],
		Engagement:  actions[metadomain.AccumulatorEngagement],
	}
}

func (s *Service) AccountSnapshot(ctx context.Context, credentials domain.Credentials) (*domain.AccountInsightSnapshot, error) {
	logger := log.ForContext(ctx)

	if credentials.AccountID == "" || credentials.AccessToken == "" {
		return nil, ErrMissingCredentials
	}

	snapshot := &domain.AccountInsightSnapshot{
		AccountID: credentials.AccountID,
		CTR:       s.percent(0),
		CPC:       s.amount(0),
	}

	insight, err := s.client.GetAdAccountInsightsByID(ctx, credentials.AccountID, credentials.AccessToken)
	if err != nil {
		// Conta sem dados ainda é uma resposta válida, zerada.
		if errors.Is(err, metadomain.ErrNoInsightData) {
			logger.WithField("account_id", credentials.AccountID).
				Debug("aggregating: conta sem dados de insights")
			return snapshot, nil
		}

		var upstreamErr *metadomain.UpstreamError
		if errors.As(err, &upstreamErr) {
			logger.WithField("account_id", credentials.AccountID).
				WithField("status_code", upstreamErr.StatusCode).
				Error("aggregating: falha na consulta de insights da conta")
			return nil, &ListingError{Upstream: upstreamErr}
		}

		return nil, err
	}

	impressions := utils.CoerceFloat(insight.Impressions)
	clicks := utils.CoerceFloat(insight.Clicks)
	spend := utils.CoerceFloat(insight.Spend)
	actions := metadomain.ReduceActions(insight.Actions)

	snapshot.Impressions = int(impressions)
	snapshot.Clicks = int(clicks)
	snapshot.CTR = s.percent(utils.CTR(clicks, impressions))
	snapshot.CPC = s.amount(utils.CPC(spend, clicks))
	snapshot.Spend = utils.RoundWithTwoDecimalPlace(spend)
	snapshot.Conversions = actions[metadomain.AccumulatorConversions]
	snapshot.Engagement = actions[metadomain.AccumulatorEngagement]
	snapshot.DateStart = insight.DateStart
	snapshot.DateStop = insight.DateStop

	return snapshot, nil
}
