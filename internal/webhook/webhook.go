// Package webhook forwards delivered onecall events to an HTTP endpoint
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/harshitrajsinha/onecall-weather-go/internal/events"
)

const defaultTimeout = 10 * time.Second

// Client posts events as JSON to a fixed URL
type Client struct {
	url        string
	httpClient *http.Client
}

// New is constructor for Client. When creds is non-nil every request carries
// an OAuth2 bearer token obtained through the client credentials flow.
func New(url string, creds *clientcredentials.Config) *Client {
	httpClient := &http.Client{Timeout: defaultTimeout}
	if creds != nil {
		httpClient = creds.Client(context.Background())
		httpClient.Timeout = defaultTimeout
	}
	return &Client{url: url, httpClient: httpClient}
}

// Deliver posts event and expects a 2xx answer
func (c *Client) Deliver(ctx context.Context, event events.Event) error {

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error encoding webhook event, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating webhook request, %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Name", event.Name)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending webhook request, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned non-OK status: %s", resp.Status)
	}

	return nil
}
