package aggregating

import (
	"errors"

	metadomain "github.com/vfg2006/ads-metrics-api/infrastructure/integrator/meta/domain"
)

// Erros específicos do pipeline de agregação
var (
	// ErrMissingCredentials indica account_id ou access_token ausentes.
	// Nunca chega à rede; vira resposta de erro do cliente.
	ErrMissingCredentials = errors.New("missing account_id or access_token")
)

// ListingError marca a falha da chamada principal ao upstream (a listagem de
// campanhas ou a consulta de insights da conta). Diferente das falhas por
// campanha, não há o que agregar: o erro é fatal para a operação e vira
// resposta de gateway para o cliente, preservando status e corpo do upstream.
type ListingError struct {
	Upstream *metadomain.UpstreamError
}

// Error implementa a interface error
func (e *ListingError) Error() string {
	return e.Upstream.Error()
}

// Unwrap retorna o erro subjacente
func (e *ListingError) Unwrap() error {
	return e.Upstream
}
