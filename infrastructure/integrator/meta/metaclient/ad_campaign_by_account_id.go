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

type ResponseAdCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetAdCampaignsByAccountID lista as campanhas ativas da conta. Somente a
// primeira página da listagem é consumida.
func (c *MetaClient) GetAdCampaignsByAccountID(ctx context.Context, accountID, accessToken string) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("filtering", `[{"field":"effective_status","operator":"IN","value":["ACTIVE"]}]`)
	params.Add("access_token", accessToken)

	body, err := c.get(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdCampaign
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("meta: erro ao decodificar listagem de campanhas")
		return nil, errors.Wrap(err, "meta: decoding campaigns response")
	}

	// "data" ausente ou vazio é uma conta sem campanhas ativas, não um erro.
	return response.Data, nil
}
