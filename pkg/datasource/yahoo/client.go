// Package yahoo fetches historical prices, company profiles and quote
// snapshots from the Yahoo Finance public API.
package yahoo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com"

const defaultTimeout = 30 * time.Second

const maxRetries = 3

var clientLog = log.WithField("datasource", "yahoo")

type Client struct {
	BaseURL string

	client *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// getJSON fetches url and decodes the body into out, retrying transient
// failures with exponential backoff. Non-2xx responses are returned as
// errors carrying the status code.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return errors.Wrap(err, "yahoo request failed")
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "yahoo read body failed")
		}

		if resp.StatusCode == http.StatusNotFound {
			return backoff.Permanent(errors.Errorf("yahoo: not found: %s", url))
		}
		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("yahoo: status %d: %s", resp.StatusCode, string(body))
		}

		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(errors.Wrap(err, "yahoo decode failed"))
		}
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	return backoff.RetryNotify(op, bo, func(err error, d time.Duration) {
		clientLog.WithError(err).Debugf("retrying in %s", d)
	})
}

// rawValue decodes yahoo's {"raw": 1.23, "fmt": "1.23"} value objects.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

func (v rawValue) ptr() *float64 {
	return v.Raw
}
