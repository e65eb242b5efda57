package wire

import (
	"sync"

	"status-report-server/cmd/config"
	"status-report-server/internal/infra/auth"
	"status-report-server/internal/infra/cache"
	"status-report-server/internal/infra/pubsub"
	"status-report-server/internal/infra/sql"
	"status-report-server/internal/status_report/catalog"
)

// The ORM, cache and broker are process wide: every injector must see the
// same rows and the same compiled formulas.
var (
	databaseOnce sync.Once
	database     sql.ORM
	databaseErr  error

	cacheOnce   sync.Once
	sharedCache cache.Cache
	cacheErr    error

	pubSubOnce    sync.Once
	pubSubFactory *pubsub.Factory
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	databaseOnce.Do(func() {
		if cfg.Database.Driver == config.DatabaseDriverMemory {
			database, databaseErr = sql.NewMemoryORM()
			return
		}
		database, databaseErr = sql.NewPosgreORM(cfg.Database.DSN)
	})
	return database, databaseErr
}

func provideCache(cfg config.AppConfig) (cache.Cache, error) {
	cacheOnce.Do(func() {
		sharedCache, cacheErr = cache.New(&cache.CacheConfig{
			Name:        "formula",
			MaxCost:     cfg.Cache.MaxCost,
			NumCounters: cfg.Cache.NumCounters,
			BufferItems: cfg.Cache.BufferItems,
		})
	})
	return sharedCache, cacheErr
}

func providePubSubFactory(cfg config.AppConfig) *pubsub.Factory {
	pubSubOnce.Do(func() {
		pubSubFactory = pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:   cfg.PubSub.Environment,
			KafkaBrokers:  cfg.Kafka.Brokers,
			ConsumerGroup: cfg.Kafka.Group,
		})
	})
	return pubSubFactory
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideConsumerFactory(factory *pubsub.Factory) pubsub.ConsumerFactory {
	return factory.GetConsumerFactory()
}

func provideCatalog(cfg config.AppConfig) (*catalog.Catalog, error) {
	return catalog.Load(cfg.StatusReport.DefaultCatalog)
}

// ProvideAuthenticator returns nil when no secret is configured, which
// leaves every request anonymous.
func ProvideAuthenticator(cfg config.AppConfig) (auth.Authenticator, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, nil
	}
	return auth.NewJWTAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
}
