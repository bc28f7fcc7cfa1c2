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

type ResponseAdAccountInsight struct {
	Data   []metadomain.Insight `json:"data"`
	Paging metadomain.Paging    `json:"paging"`
}

// GetAdAccountInsightsByID busca o insight agregado da própria conta sobre o
// período máximo de vida. Listagem vazia devolve metadomain.ErrNoInsightData.
func (c *MetaClient) GetAdAccountInsightsByID(ctx context.Context, accountID, accessToken string) (*metadomain.Insight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "impressions,clicks,ctr,spend,cpc,actions,date_start,date_stop")
	params.Add("date_preset", "maximum")
	params.Add("access_token", accessToken)

	body, err := c.get(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdAccountInsight
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: erro ao decodificar insights da conta")
		return nil, errors.Wrap(err, "meta: decoding account insights response")
	}

	if len(response.Data) == 0 {
		return nil, metadomain.ErrNoInsightData
	}

	return &response.Data[0], nil
}
