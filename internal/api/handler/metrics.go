package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-metrics-api/internal/domain"
	"github.com/vfg2006/ads-metrics-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/ads-metrics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

// AccountMetrics atende POST /v1/metrics: valida as credenciais do corpo,
// aciona o pipeline de agregação e devolve o resumo da conta.
func AccountMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		credentials, ok := decodeCredentials(w, r, logger)
		if !ok {
			return
		}

		logger.WithField("account_id", credentials.AccountID).Info("metrics: agregando métricas da conta")

		summary, err := service.AccountMetrics(r.Context(), credentials)
		if err != nil {
			writeMetricsError(w, logger, credentials.AccountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithFields(log.Fields{
				"account_id": credentials.AccountID,
				"error":      err.Error(),
			}).Error("metrics: falha ao serializar a resposta")
		}
	})
}

// AccountInsightSnapshot atende POST /v1/metrics/account: o retrato dos
// insights agregados da própria conta, sem passar pelas campanhas.
func AccountInsightSnapshot(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		credentials, ok := decodeCredentials(w, r, logger)
		if !ok {
			return
		}

		logger.WithField("account_id", credentials.AccountID).Info("metrics: buscando insights da conta")

		snapshot, err := service.AccountSnapshot(r.Context(), credentials)
		if err != nil {
			writeMetricsError(w, logger, credentials.AccountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithFields(log.Fields{
				"account_id": credentials.AccountID,
				"error":      err.Error(),
			}).Error("metrics: falha ao serializar a resposta")
		}
	})
}

// decodeCredentials decodifica e valida o corpo da requisição. A validação
// acontece antes de qualquer chamada à rede.
func decodeCredentials(w http.ResponseWriter, r *http.Request, logger log.Logger) (domain.Credentials, bool) {
	var credentials domain.Credentials

	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		logger.WithField("error", err.Error()).Warn("metrics: corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
		return credentials, false
	}

	if err := validate.Struct(credentials); err != nil {
		logger.Warn("metrics: credenciais ausentes na requisição")
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "missing account_id or access_token", nil)
		return credentials, false
	}

	return credentials, true
}

// writeMetricsError mapeia a taxonomia de erros do pipeline para as classes de
// resposta HTTP: validação 400, falha do upstream 502, o resto 500.
func writeMetricsError(w http.ResponseWriter, logger log.Logger, accountID string, err error) {
	var listingErr *aggregating.ListingError

	switch {
	case errors.Is(err, aggregating.ErrMissingCredentials):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "missing account_id or access_token", nil)

	case errors.As(err, &listingErr):
		logger.WithFields(log.Fields{
			"account_id":  accountID,
			"status_code": listingErr.Upstream.StatusCode,
		}).Error("metrics: falha na comunicação com o upstream")

		apiErrors.WriteError(w, apiErrors.ErrExternalService, listingErr.Upstream.GraphMessage(), map[string]any{
			"upstream_status": listingErr.Upstream.StatusCode,
			"upstream_body":   listingErr.Upstream.Body,
		})

	default:
		logger.WithFields(log.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("metrics: falha interna inesperada")

		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
