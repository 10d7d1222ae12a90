package infra

import (
	"github.com/ola007-cpu/webApp/config"
	"github.com/ola007-cpu/webApp/infra/produce"
)

type Infra struct {
	Postgres  *PostgresClient
	Objects   ObjectStore
	Redis     *RedisClient
	RabbitMQ  *RabbitMQClient
	Produce   *produce.Produce
	Logger    *LoggerClient
	Telemetry *Telemetry
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	telemetry := InitTelemetry(cfg.EnvConfig)

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	var objects ObjectStore
	switch cfg.EnvConfig.Storage.Provider {
	case "s3":
		objects = InitS3Client(cfg.EnvConfig)
	default:
		objects = InitMinioClient(cfg.EnvConfig)
	}

	// Redis and RabbitMQ are optional; the service degrades to
	// uncached reads and no upload events without them.
	redis := InitRedisClient(cfg.EnvConfig)
	rabbitMQ := InitRabbitMQClient(cfg.EnvConfig)

	var produceService *produce.Produce
	if rabbitMQ != nil {
		produceService = produce.InitProduce(rabbitMQ.Channel)
	}

	infraInstance = &Infra{
		Postgres:  postgres,
		Objects:   objects,
		Redis:     redis,
		RabbitMQ:  rabbitMQ,
		Produce:   produceService,
		Logger:    logger,
		Telemetry: telemetry,
	}

	return infraInstance
}

func GetClient() *Infra {
	if infraInstance == nil {
		panic("Infra not initialized. Call InitInfra() first.")
	}
	return infraInstance
}
