package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageDynamoDB = "dynamodb"

	SequenceStore = "store"
	SequenceRedis = "redis"
	SequenceCount = "count"
)

// Config is the process configuration, read from the environment (a .env file is
// loaded first by cmd/api).
type Config struct {
	App      AppConfig
	Storage  StorageConfig
	AWS      AWSConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Claims   ClaimsConfig
}

type AppConfig struct {
	Port     string `env:"APP_PORT" envDefault:"8080" validate:"required,numeric"`
	Env      string `env:"APP_ENV" envDefault:"development" validate:"oneof=development staging production test"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

type StorageConfig struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"memory" validate:"oneof=memory postgres dynamodb"`
	DatabaseURL string `env:"DATABASE_URL" validate:"required_if=Driver postgres"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
	SeedDemo    bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
}

type AWSConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoEndpoint  string `env:"DYNAMODB_ENDPOINT"`
	ClaimsTable     string `env:"CLAIMS_TABLE" envDefault:"claims"`
	ReferenceTable  string `env:"REFERENCE_TABLE" envDefault:"claims_reference"`
	SequencesTable  string `env:"SEQUENCES_TABLE" envDefault:"claim_sequences"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
}

// RabbitMQConfig: an empty URL selects the log-only event emitter.
type RabbitMQConfig struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"claims.events" validate:"required"`
}

type ClaimsConfig struct {
	NumberPrefix      string `env:"CLAIM_NUMBER_PREFIX" envDefault:"CLM" validate:"required,alphanum,max=8"`
	SequenceBackend   string `env:"CLAIM_SEQUENCE_BACKEND" envDefault:"store" validate:"oneof=store redis count"`
	TransitionPolicy  string `env:"CLAIM_TRANSITION_POLICY" envDefault:"permissive" validate:"oneof=permissive strict"`
	NumberMaxAttempts int    `env:"CLAIM_NUMBER_MAX_ATTEMPTS" envDefault:"3" validate:"gte=1,lte=10"`
}

func (c Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
