package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CoerceFloat converte qualquer escalar JSON em float64.
// A API do Meta devolve a maioria dos campos numéricos como string;
// qualquer valor ausente, nulo ou não numérico vale 0.0.
func CoerceFloat(v any) float64 {
	switch value := v.(type) {
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0
		}
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// CTR calcula a taxa de cliques (clicks/impressions * 100).
// Impressões zeradas ou negativas resultam em 0.0.
func CTR(clicks, impressions float64) float64 {
	if impressions <= 0 {
		return 0
	}

	return clicks / impressions * 100
}

// CPC calcula o custo por clique (spend/clicks).
// Cliques zerados ou negativos resultam em 0.0.
func CPC(spend, clicks float64) float64 {
	if clicks <= 0 {
		return 0
	}

	return spend / clicks
}

// FormatPercent renderiza um percentual com duas casas decimais, ex: "6.25%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatAmount renderiza um valor monetário com duas casas decimais, ex: "0.60".
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// truncateOneDecimal trunca (nunca arredonda) para uma casa decimal.
func truncateOneDecimal(v float64) string {
	truncated := math.Trunc(v*10) / 10
	return strconv.FormatFloat(truncated, 'f', 1, 64)
}

// TruncateAmount renderiza um valor no modo de largura fixa usado pelo painel:
// trunca para uma casa decimal ("17.89" vira "17.8") e, quando o resultado não
// cabe na largura, recua para a parte inteira limitada a 3 caracteres
// ("147.2" vira "147").
func TruncateAmount(v float64) string {
	s := truncateOneDecimal(v)
	if len(s) <= 4 {
		return s
	}

	s = strconv.FormatInt(int64(v), 10)
	if len(s) > 3 {
		s = s[:3]
	}

	return s
}

// TruncatePercent aplica a mesma truncagem de largura fixa ao CTR, preservando
// o sufixo "%". Quando nem a parte inteira cabe junto do sufixo, o texto final
// é cortado para 3 caracteres: "147.2" vira "14%".
func TruncatePercent(v float64) string {
	s := truncateOneDecimal(v)
	if len(s) <= 4 {
		return s + "%"
	}

	s = strconv.FormatInt(int64(v), 10)
	if len(s)+1 > 3 {
		s = s[:2]
	}

	return s + "%"
}
