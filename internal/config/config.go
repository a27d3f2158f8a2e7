// Package config contains the functionality to load environment variables into a golang-based struct for accessibility
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/oauth2/clientcredentials"
)

// Config defines the structure of env vars that will be loaded to the project
type Config struct {
	BaseAPIUrl    string `envconfig:"BASE_API_URL" default:"https://api.openweathermap.org"`
	Port          string `envconfig:"PORT" default:"8086"`
	Env           string `envconfig:"APP_ENV" default:"production"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile       string `envconfig:"LOG_FILE" default:"logs/app.log"`
	DatabasePath  string `envconfig:"DATABASE_PATH" default:"./app.db"`
	SecretAuthKey string `envconfig:"SECRET_AUTH_KEY" required:"true"`
	ZipkinURL     string `envconfig:"ZIPKIN_URL"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"openweather.onecall.data"`

	WebhookURL          string `envconfig:"WEBHOOK_URL"`
	WebhookClientID     string `envconfig:"WEBHOOK_CLIENT_ID"`
	WebhookClientSecret string `envconfig:"WEBHOOK_CLIENT_SECRET"`
	WebhookTokenURL     string `envconfig:"WEBHOOK_TOKEN_URL"`
}

// Load loads the env vars to the project in a defined go struct for accessibility
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error loading configuration data, %w", err)
	}
	return &cfg, nil
}

// WebhookCredentials returns the OAuth2 client credentials for the webhook sink,
// or nil when no client id is configured
func (c *Config) WebhookCredentials() *clientcredentials.Config {
	if c.WebhookClientID == "" {
		return nil
	}
	return &clientcredentials.Config{
		ClientID:     c.WebhookClientID,
		ClientSecret: c.WebhookClientSecret,
		TokenURL:     c.WebhookTokenURL,
	}
}

// FetchConfig holds the defaults used by the one-shot fetch command
type FetchConfig struct {
	BaseAPIUrl string `envconfig:"BASE_API_URL" default:"https://api.openweathermap.org"`
	APIKey     string `envconfig:"OWM_API_KEY"`
	APIVersion string `envconfig:"OWM_API_VERSION" default:"3.0"`
	Units      string `envconfig:"OWM_UNITS"`
	Language   string `envconfig:"OWM_LANGUAGE" default:"en"`
	Exclude    string `envconfig:"OWM_EXCLUDE"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadFetch loads FetchConfig from the environment
func LoadFetch() (*FetchConfig, error) {
	var cfg FetchConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error loading fetch configuration, %w", err)
	}
	return &cfg, nil
}
