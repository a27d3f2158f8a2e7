package config

import (
	"os"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_AUTH_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseAPIUrl != "https://api.openweathermap.org" {
		t.Errorf("BaseAPIUrl = %s", cfg.BaseAPIUrl)
	}
	if cfg.Port != "8086" || cfg.Env != "production" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.KafkaTopic != "openweather.onecall.data" || len(cfg.KafkaBrokers) != 0 {
		t.Errorf("unexpected kafka defaults %+v", cfg)
	}
	if cfg.WebhookCredentials() != nil {
		t.Errorf("expected no webhook credentials")
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SECRET_AUTH_KEY", "")
	os.Unsetenv("SECRET_AUTH_KEY")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SECRET_AUTH_KEY is missing")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SECRET_AUTH_KEY", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("WEBHOOK_URL", "https://example.test/hook")
	t.Setenv("WEBHOOK_CLIENT_ID", "client")
	t.Setenv("WEBHOOK_CLIENT_SECRET", "shh")
	t.Setenv("WEBHOOK_TOKEN_URL", "https://example.test/token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %s", cfg.Port)
	}
	if want := []string{"k1:9092", "k2:9092"}; !reflect.DeepEqual(cfg.KafkaBrokers, want) {
		t.Errorf("KafkaBrokers = %v, want %v", cfg.KafkaBrokers, want)
	}

	creds := cfg.WebhookCredentials()
	if creds == nil {
		t.Fatalf("expected webhook credentials")
	}
	if creds.ClientID != "client" || creds.ClientSecret != "shh" || creds.TokenURL != "https://example.test/token" {
		t.Errorf("unexpected credentials %+v", creds)
	}
}

func TestLoadFetch(t *testing.T) {
	t.Setenv("OWM_API_KEY", "k1")
	t.Setenv("OWM_UNITS", "metric")

	cfg, err := LoadFetch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "k1" || cfg.Units != "metric" || cfg.APIVersion != "3.0" || cfg.Language != "en" {
		t.Fatalf("unexpected fetch config %+v", cfg)
	}
}
