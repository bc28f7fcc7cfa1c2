package handler

import (
	"net/http"

	"github.com/vfg2006/ads-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/ads-metrics-api/internal/usecases/aggregating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics",
			Method:  http.MethodPost,
			Handler: AccountMetrics(service),
		},
		{
			Path:    "/v1/metrics/account",
			Method:  http.MethodPost,
			Handler: AccountInsightSnapshot(service),
		},
	}
}
