package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceActions(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected map[string]float64
	}{
		{
			name:     "lista vazia produz acumuladores zerados",
			actions:  nil,
			expected: map[string]float64{AccumulatorConversions: 0, AccumulatorEngagement: 0},
		},
		{
			name: "soma conversões e engajamento separadamente",
			actions: []Action{
				{ActionType: "offsite_conversion", Value: "2"},
				{ActionType: "page_engagement", Value: "10"},
				{ActionType: "post_engagement", Value: 5.0},
				{ActionType: "post_reaction", Value: "1"},
				{ActionType: "offsite_conversion", Value: "3"},
			},
			expected: map[string]float64{AccumulatorConversions: 5, AccumulatorEngagement: 16},
		},
		{
			name: "action_type desconhecido é ignorado",
			actions: []Action{
				{ActionType: "video_view", Value: "999"},
				{ActionType: "offsite_conversion", Value: "1"},
			},
			expected: map[string]float64{AccumulatorConversions: 1, AccumulatorEngagement: 0},
		},
		{
			name: "valor não numérico contribui com zero",
			actions: []Action{
				{ActionType: "offsite_conversion", Value: "abc"},
				{ActionType: "page_engagement", Value: nil},
			},
			expected: map[string]float64{AccumulatorConversions: 0, AccumulatorEngagement: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReduceActions(tt.actions))
		})
	}
}

// A redução deve ser aditiva: reduzir A++B equivale a somar as reduções de A e B.
func TestReduceActionsAdditivity(t *testing.T) {
	listA := []Action{
		{ActionType: "offsite_conversion", Value: "2"},
		{ActionType: "post_reaction", Value: "4"},
	}
	listB := []Action{
		{ActionType: "page_engagement", Value: "7"},
		{ActionType: "offsite_conversion", Value: "1.5"},
		{ActionType: "lead", Value: "9"},
	}

	combined := ReduceActions(append(append([]Action{}, listA...), listB...))
	totalsA := ReduceActions(listA)
	totalsB := ReduceActions(listB)

	for name := range ActionAccumulators {
		assert.Equal(t, totalsA[name]+totalsB[name], combined[name], name)
	}
}
