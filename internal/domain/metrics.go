package domain

// Credentials identifica a conta de anúncios e o token de acesso recebidos na
// requisição. São strings opacas, vivem apenas durante uma requisição e nunca
// são persistidas.
type Credentials struct {
	AccountID   string `json:"account_id" validate:"required"`
	AccessToken string `json:"access_token" validate:"required"`
}

// CampaignSummary é a projeção pública de uma campanha na resposta agregada.
type CampaignSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Impressions int    `json:"impressions"`
	Clicks      int    `json:"clicks"`
	CTR         string `json:"ctr"`
	CPC         string `json:"cpc"`
}

// CampaignTotals carrega as contribuições numéricas de uma campanha para a
// agregação da conta. Uso interno do pipeline; nunca aparece na resposta.
type CampaignTotals struct {
	Impressions float64
	Clicks      float64
	Spend       float64
	Conversions float64
	Engagement  float64
}

// Add acumula as contribuições de outra campanha neste total.
func (t *CampaignTotals) Add(other CampaignTotals) {
	t.Impressions += other.Impressions
	t.Clicks += other.Clicks
	t.Spend += other.Spend
	t.Conversions += other.Conversions
	t.Engagement += other.Engagement
}

// AccountMetricsSummary é a resposta final do pipeline de agregação. CTR e CPC
// da conta são derivados da soma das campanhas, nunca de uma chamada separada,
// para que totais e razões sejam consistentes entre si.
type AccountMetricsSummary struct {
	ActiveCampaigns      int               `json:"active_campaigns"`
	TotalImpressions     int               `json:"total_impressions"`
	TotalClicks          int               `json:"total_clicks"`
	CTR                  string            `json:"ctr"`
	CPC                  string            `json:"cpc"`
	Conversions          float64           `json:"conversions"`
	Spent                float64           `json:"spent"`
	Engagement           float64           `json:"engajamento"`
	RecentCampaignsTotal int               `json:"recent_campaigns_total"`
	RecentCampaigns      []CampaignSummary `json:"recent_campaigns"`
}

// AccountInsightSnapshot é o retrato dos insights agregados da própria conta
// sobre o período máximo, normalizado a partir de uma única chamada.
type AccountInsightSnapshot struct {
	AccountID   string  `json:"account_id"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         string  `json:"ctr"`
	CPC         string  `json:"cpc"`
	Spend       float64 `json:"spend"`
	Conversions float64 `json:"conversions"`
	Engagement  float64 `json:"engajamento"`
	DateStart   string  `json:"date_start"`
	DateStop    string  `json:"date_stop"`
}
