package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, table, bucket,
//   AppConfig identifiers)
// - default: Values common across all environments (CORS, log format, chaos
//   threshold), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	AWS       AWSConfig
	Orders    OrdersConfig
	AppConfig AppConfigConfig
	Chaos     ChaosConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type AWSConfig struct {
	Region string `envconfig:"AWS_REGION" default:"eu-west-1"`
	// Endpoint overrides the service endpoints, for local stacks.
	Endpoint string `envconfig:"AWS_ENDPOINT" default:""`
}

type OrdersConfig struct {
	TableName  string `envconfig:"TABLE_NAME" required:"true"`
	BucketName string `envconfig:"BUCKET_NAME" required:"true"`
	// LegacyScan selects the deprecated scan-then-filter list path instead
	// of the type index query.
	LegacyScan  bool `envconfig:"STORE_LEGACY_SCAN" default:"false"`
	SeedOnStart bool `envconfig:"SEED_STORES_ON_START" default:"false"`
}

type AppConfigConfig struct {
	ApplicationID   string `envconfig:"APPCONFIG_APPLICATION_ID" required:"true"`
	EnvironmentID   string `envconfig:"APPCONFIG_ENVIRONMENT_ID" required:"true"`
	ConfigurationID string `envconfig:"APPCONFIG_CONFIGURATION_ID" required:"true"`
}

type ChaosConfig struct {
	RandomErrorsEnabled bool    `envconfig:"RANDOM_ERRORS_ENABLED" default:"false"`
	ErrorThreshold      float64 `envconfig:"RANDOM_ERRORS_THRESHOLD" default:"0.75"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"OPTIONS,POST,GET"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		AWS: AWSConfig{
			Region:   "eu-west-1",
			Endpoint: "http://localhost:4566",
		},
		Orders: OrdersConfig{
			TableName:  "orders-test",
			BucketName: "invoices-test",
		},
		AppConfig: AppConfigConfig{
			ApplicationID:   "app-test",
			EnvironmentID:   "env-test",
			ConfigurationID: "config-test",
		},
		Chaos: ChaosConfig{
			RandomErrorsEnabled: false,
			ErrorThreshold:      0.75,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
