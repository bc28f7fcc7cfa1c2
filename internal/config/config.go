package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	Meta   Meta   `mapstructure:",squash"`
	Cache  Cache  `mapstructure:",squash"`
}

// Modos de formatação de CTR/CPC na resposta. O modo truncado existe para a
// restrição de largura fixa do painel que consome a API.
const (
	MetricFormatFixed     = "fixed"
	MetricFormatTruncated = "truncated"
)

type App struct {
	LogLevel     string `mapstructure:"log_level"`
	MetricFormat string `mapstructure:"metric_format"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"-"`
	Version        string        `mapstructure:"meta_version"`
	RequestTimeout time.Duration `mapstructure:"meta_request_timeout"`
}

type Cache struct {
	Enabled       bool          `mapstructure:"cache_enabled"`
	TTL           time.Duration `mapstructure:"cache_ttl"`
	RedisAddr     string        `mapstructure:"cache_redis_addr"`
	RedisPassword string        `mapstructure:"cache_redis_password"`
	RedisDB       int           `mapstructure:"cache_redis_db"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v16.0")
	viper.SetDefault("META_REQUEST_TIMEOUT", "3s")

	// Cache de respostas por credencial; desligado por padrão para não
	// alterar o contrato do pipeline.
	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("CACHE_TTL", "60s")
	viper.SetDefault("CACHE_REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CACHE_REDIS_PASSWORD", "")
	viper.SetDefault("CACHE_REDIS_DB", 0)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("METRIC_FORMAT", MetricFormatFixed)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// O .env é opcional; em produção tudo chega por variáveis de ambiente.
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Arquivo .env não lido pelo Viper, usando variáveis de ambiente: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}
}
