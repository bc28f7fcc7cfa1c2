package metadomain

// Action é uma interação rotulada devolvida pela API do Meta dentro do campo
// "actions" de um insight, ex: {"action_type":"offsite_conversion","value":"2"}.
// O valor chega ora como string, ora como número, por isso o tipo aberto.
type Action struct {
	ActionType string `json:"action_type"`
	Value      any    `json:"value"`
}

// Insight é a primeira linha da listagem "insights" de uma entidade (conta ou
// campanha). Todos os campos numéricos são controlados pelo upstream e chegam
// frequentemente como strings numéricas; a coerção acontece no usecase.
type Insight struct {
	Impressions any      `json:"impressions"`
	Clicks      any      `json:"clicks"`
	CTR         any      `json:"ctr"`
	CPC         any      `json:"cpc"`
	Spend       any      `json:"spend"`
	Actions     []Action `json:"actions"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}
