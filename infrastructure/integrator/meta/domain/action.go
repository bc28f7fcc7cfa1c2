package metadomain

import (
	"github.com/vfg2006/ads-metrics-api/pkg/utils"
)

const (
	AccumulatorConversions = "conversions"
	AccumulatorEngagement  = "engagement"
)

// Mapeamento de acumulador -> "action_type" que o alimenta. O conjunto é
// fechado e compartilhado por todos os pontos de redução (conta e campanha).
var ActionAccumulators = map[string][]string{
	AccumulatorConversions: {"offsite_conversion"},
	AccumulatorEngagement:  {"page_engagement", "post_engagement", "post_reaction"},
}

// ReduceActions soma os valores das ações em acumuladores nomeados. Uma ação
// pode contribuir para mais de um acumulador caso o action_type apareça em
// mais de um conjunto; action_types desconhecidos são ignorados.
func ReduceActions(actions []Action) map[string]float64 {
	totals := make(map[string]float64, len(ActionAccumulators))
	for name := range ActionAccumulators {
		totals[name] = 0
	}

	for i := range actions {
		action := actions[i]
		value := utils.CoerceFloat(action.Value)

		for name, actionTypes := range ActionAccumulators {
			for _, actionType := range actionTypes {
				if action.ActionType == actionType {
					totals[name] += value
				}
			}
		}
	}

	return totals
}
