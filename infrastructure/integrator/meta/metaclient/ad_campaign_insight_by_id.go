package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-metrics-api/infrastructure/integrator/meta/domain"
)

type ResponseAdCampaignInsight struct {
	Data   []metadomain.Insight `json:"data"`
	Paging metadomain.Paging    `json:"paging"`
}

// GetAdCampaignInsightsByID busca o insight de uma campanha sobre o período
// máximo de vida. Listagem vazia devolve metadomain.ErrNoInsightData.
func (c *MetaClient) GetAdCampaignInsightsByID(ctx context.Context, campaignID, accessToken string) (*metadomain.Insight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "impressions,clicks,ctr,cpc,spend,actions")
	params.Add("date_preset", "maximum")
	params.Add("access_token", accessToken)

	body, err := c.get(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdCampaignInsight
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("meta: erro ao decodificar insights da campanha")
		return nil, errors.Wrap(err, "meta: decoding campaign insights response")
	}

	if len(response.Data) == 0 {
		return nil, metadomain.ErrNoInsightData
	}

	return &response.Data[0], nil
}
