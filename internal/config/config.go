package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AWS      AWSConfig
	DynamoDB DynamoDBConfig
	Server   ServerConfig
	Admin    AdminConfig
}

type AWSConfig struct {
	Region   string
	Endpoint string
}

type DynamoDBConfig struct {
	TableName        string
	MaxRetries       int
	UseLocalEndpoint bool
}

type ServerConfig struct {
	HTTPPort    int
	Environment string
	LogLevel    string
}

type AdminConfig struct {
	// SetupKey is the shared secret gating group creation. When empty,
	// every administrative request is rejected.
	SetupKey string
}

func Load(configPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	if configPath != "" {
		viper.AddConfigPath(configPath)
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SANTA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; env-only deployments are supported.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.httpport", 8080)
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("server.loglevel", "info")
	viper.SetDefault("dynamodb.maxretries", 3)
	viper.SetDefault("aws.region", "eu-west-1")
}

// StoreConfigured reports whether enough configuration is present to reach
// the group store. When it is false the service runs in degraded mode.
func (c *Config) StoreConfigured() bool {
	return c.DynamoDB.TableName != ""
}
