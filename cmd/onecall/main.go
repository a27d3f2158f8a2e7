// Command onecall fetches One Call data once and prints it as JSON
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/harshitrajsinha/onecall-weather-go/internal/config"
	"github.com/harshitrajsinha/onecall-weather-go/internal/logger"
	"github.com/harshitrajsinha/onecall-weather-go/internal/onecall"
)

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFetch()
	if err != nil {
		return err
	}

	lat := flag.String("lat", "", "latitude")
	lon := flag.String("lon", "", "longitude")
	apiKey := flag.String("apikey", cfg.APIKey, "OpenWeather API key (default from OWM_API_KEY)")
	version := flag.String("version", cfg.APIVersion, "One Call API version")
	units := flag.String("units", cfg.Units, "metric, imperial or empty for provider default")
	lang := flag.String("lang", cfg.Language, "response language")
	exclude := flag.String("exclude", cfg.Exclude, "comma separated sections to exclude")
	flag.Parse()

	appLogger, err := logger.NewConsole(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	adapter := onecall.NewAdapter(
		logger.NewDiagnostic(*appLogger, "onecall"),
		nil,
		onecall.WithBaseURL(cfg.BaseAPIUrl),
	)

	payload, err := adapter.Fetch(context.Background(), onecall.RequestConfig{
		APIKey:     *apiKey,
		Latitude:   onecall.Coordinate(*lat),
		Longitude:  onecall.Coordinate(*lon),
		APIVersion: *version,
		Units:      *units,
		Language:   *lang,
		Exclude:    *exclude,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
