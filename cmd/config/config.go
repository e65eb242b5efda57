package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads config/server.yaml once. Values can be overridden by
// environment variables prefixed with STATUS_REPORT_SERVER_, also read
// from a .env file when present.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("loading .env file", slog.String("error", err.Error()))
		}

		viper.SetEnvPrefix("status_report_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = fromViper(viper.GetViper())
	})

	return configInstance
}

func fromViper(v *viper.Viper) AppConfig {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("http.address", ":3000")
	v.SetDefault("database.driver", DatabaseDriverPostgres)
	v.SetDefault("pubsub.environment", "local")
	v.SetDefault("auth.issuer", "status-report-server")
	v.SetDefault("cache.max_cost", 10_000)
	v.SetDefault("cache.num_counters", 100_000)
	v.SetDefault("cache.buffer_items", 64)
	v.SetDefault("otel.collector_endpoint", "localhost:4317")

	return AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Address:        v.GetString("http.address"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Database: DatabaseConfig{
			Driver: v.GetString("database.driver"),
			DSN:    v.GetString("database.dsn"),
		},
		PubSub: PubSubConfig{
			Environment: v.GetString("pubsub.environment"),
		},
		Kafka: KafkaConfig{
			Brokers: v.GetStringSlice("kafka.brokers"),
			Group:   v.GetString("kafka.group"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
			Issuer:    v.GetString("auth.issuer"),
		},
		Cache: CacheConfig{
			MaxCost:     v.GetInt64("cache.max_cost"),
			NumCounters: v.GetInt64("cache.num_counters"),
			BufferItems: v.GetInt64("cache.buffer_items"),
		},
		StatusReport: StatusReportConfig{
			DefaultCatalog: v.GetString("status_report.default_catalog"),
		},
		OTel: OTelConfig{
			CollectorEndpoint: v.GetString("otel.collector_endpoint"),
		},
	}
}

const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverMemory   = "memory"
)

type AppConfig struct {
	General      GeneralConfig
	HTTP         HTTPConfig
	Database     DatabaseConfig
	PubSub       PubSubConfig
	Kafka        KafkaConfig
	Auth         AuthConfig
	Cache        CacheConfig
	StatusReport StatusReportConfig
	OTel         OTelConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Address        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver string
	DSN    string
}

type PubSubConfig struct {
	Environment string
}

type KafkaConfig struct {
	Brokers []string
	Group   string
}

type AuthConfig struct {
	// An empty secret disables bearer authentication.
	JWTSecret string
	Issuer    string
}

type CacheConfig struct {
	MaxCost     int64
	NumCounters int64
	BufferItems int64
}

type StatusReportConfig struct {
	// Empty selects the catalog built into the binary.
	DefaultCatalog string
}

type OTelConfig struct {
	CollectorEndpoint string
}
