package onecall

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultBaseURL is the OpenWeather API host
const DefaultBaseURL = "https://api.openweathermap.org"

var appIDPattern = regexp.MustCompile(`appid=[^&"\s]*`)

// BuildURL returns the One Call request URL for cfg. Parameters are always
// emitted in the order lat, lon, units, exclude, appid, lang; units is left
// out entirely when empty. The result is deterministic for a given input.
func BuildURL(baseURL string, cfg RequestConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	var q orderedQuery
	q.add("lat", string(cfg.Latitude))
	q.add("lon", string(cfg.Longitude))
	if cfg.Units != "" {
		q.add("units", cfg.Units)
	}
	q.add("exclude", cfg.Exclude)
	q.add("appid", cfg.APIKey)
	q.add("lang", cfg.Language)

	return strings.TrimRight(baseURL, "/") + "/data/" + url.PathEscape(cfg.APIVersion) + "/onecall?" + q.String(), nil
}

// orderedQuery keeps parameters in insertion order, which url.Values does not
type orderedQuery struct {
	b strings.Builder
}

func (q *orderedQuery) add(key, value string) {
	if q.b.Len() > 0 {
		q.b.WriteByte('&')
	}
	q.b.WriteString(key)
	q.b.WriteByte('=')
	q.b.WriteString(url.QueryEscape(value))
}

func (q *orderedQuery) String() string {
	return q.b.String()
}

// redact hides the API key in anything that may end up in a log line
func redact(s string) string {
	return appIDPattern.ReplaceAllString(s, "appid=***")
}
