// Package onecall fetches One Call weather data from OpenWeather and relays
// the decoded payload to a notifier
package onecall

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Supported values for RequestConfig.Units. An empty value means the provider default.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// Coordinate holds a latitude or longitude exactly as the caller wrote it.
// It decodes from either a JSON string or a JSON number; null decodes to empty.
type Coordinate string

// UnmarshalJSON keeps the literal text of numeric coordinates, so 10.0 stays "10.0"
func (c *Coordinate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("error decoding coordinate, %w", err)
		}
		*c = Coordinate(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("coordinate must be a number or a string, %w", err)
	}
	*c = Coordinate(n.String())
	return nil
}

// RequestConfig describes a single One Call request
type RequestConfig struct {
	APIKey     string     `json:"apikey"`
	Latitude   Coordinate `json:"latitude"`
	Longitude  Coordinate `json:"longitude"`
	APIVersion string     `json:"apiVersion"`
	Units      string     `json:"units"`
	Language   string     `json:"language"`
	Exclude    string     `json:"exclude"`
}

// Validate checks the fields required before any request can be built.
// The API key is checked before the coordinates.
func (c RequestConfig) Validate() error {
	if c.APIKey == "" {
		return errMissingAPIKey
	}
	if c.Latitude == "" || c.Longitude == "" {
		return errMissingCoordinates
	}
	return nil
}
