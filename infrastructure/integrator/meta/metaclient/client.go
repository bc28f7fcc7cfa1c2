package metaclient

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-metrics-api/internal/config"
)

type Client interface {
	GetAdCampaignsByAccountID(ctx context.Context, accountID, accessToken string) ([]metadomain.Campaign, error)
	GetAdCampaignInsightsByID(ctx context.Context, campaignID, accessToken string) (*metadomain.Insight, error)
	GetAdAccountInsightsByID(ctx context.Context, accountID, accessToken string) (*metadomain.Insight, error)
}

// MetaClient fala com a API Graph do Meta. O *http.Client é construído na
// inicialização do processo e injetado aqui; nenhuma chamada cria clients.
type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config, httpClient *http.Client) Client {
	return &MetaClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// get executa um único GET com timeout por chamada e devolve o corpo em 2xx.
// Status fora de 2xx e falhas de transporte viram *metadomain.UpstreamError;
// não há retry: uma tentativa com falha é uma falha final para essa chamada.
func (c *MetaClient) get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Meta.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "meta: creating request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &metadomain.UpstreamError{Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &metadomain.UpstreamError{Body: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &metadomain.UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
