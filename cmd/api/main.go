package main

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-metrics-api/infrastructure/cache"
	"github.com/vfg2006/ads-metrics-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-metrics-api/internal/api"
	"github.com/vfg2006/ads-metrics-api/internal/config"
	"github.com/vfg2006/ads-metrics-api/internal/usecases/aggregating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpClient := &http.Client{Timeout: cfg.Meta.RequestTimeout}
	metaClient := metaclient.NewClient(cfg, httpClient)

	metricsService := aggregating.NewService(cfg, metaClient)

	// Com cache habilitado, respostas agregadas são servidas do Redis dentro
	// do TTL configurado.
	var aggregator aggregating.Aggregator = metricsService
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache")
		} else {
			aggregator = metricsService.WithCache(cache.NewRedisSummaryStore(redisClient), cfg.Cache.TTL)
			logrus.Infof("Cache de métricas habilitado com TTL de %s", cfg.Cache.TTL)
		}
	}

	server, err := api.New(cfg, aggregator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
