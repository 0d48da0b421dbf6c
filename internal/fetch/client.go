// Package fetch implements the remote collaborator behind the fetch-on-mount
// wrapper: an HTTP client that retrieves a JSON payload and extracts the
// field value from it. The wire format lives entirely in this package; the
// composition core only sees a FetchFunc returning a parsed value.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fieldkit/fieldkit/internal/errors"
	"github.com/fieldkit/fieldkit/internal/logging"
)

// payload is the expected remote document: {"value": "..."}.
type payload struct {
	Value string `json:"value"`
}

// maxBody caps how much of a response body is read. The payload is a single
// small JSON object; anything larger is a misbehaving endpoint.
const maxBody = 1 << 20

// Client fetches field values from a remote endpoint.
type Client struct {
	url    string
	client *http.Client
	logger *logging.Logger
}

// New creates a Client for the given endpoint. A zero timeout disables the
// request deadline. Pass nil for logger to discard logs.
func New(url string, timeout time.Duration, logger *logging.Logger) (*Client, error) {
	if url == "" {
		return nil, errors.NewValidationError("url", "must not be empty")
	}

	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logging.Or(logger).WithComponent("fetch"),
	}, nil
}

// Value requests the remote payload and returns its parsed value.
// It satisfies field.FetchFunc.
func (c *Client) Value(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", errors.NewFetchError("building request", err).WithURL(c.url)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.NewFetchError("request failed", err).WithURL(c.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d: %w", resp.StatusCode, errors.ErrFetchFailed)
		return "", errors.NewFetchError("request failed", err).WithURL(c.url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", errors.NewFetchError("reading body", err).WithURL(c.url)
	}

	var doc payload
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", errors.NewFetchError("parsing payload",
			fmt.Errorf("%w: %v", errors.ErrBadPayload, err)).WithURL(c.url)
	}

	c.logger.Debug("fetched remote value",
		"url", c.url,
		"elapsed", time.Since(start).String(),
		"length", len(doc.Value))
	return doc.Value, nil
}
