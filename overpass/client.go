package overpass

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const DefaultEndpoint = "https://overpass-api.de/api/interpreter"

// requestInterval spaces out queries so a multi-city run stays inside the
// public instance's rate limits.
const requestInterval = 3 * time.Second

type Client struct {
	endpoint string
	http     *http.Client
	limiter  *rate.Limiter

	// SkipWaits disables the inter-request pause. Tests only.
	SkipWaits bool
}

func New(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 120 * time.Second},
		limiter:  rate.NewLimiter(rate.Every(requestInterval), 1),
	}
}

type QueryError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query error: %d %s: %s", e.StatusCode, e.Status, e.Body)
}

func (c *Client) Query(ctx context.Context, query string) ([]Element, error) {
	if !c.SkipWaits {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, strings.NewReader(query))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "pakjunctions-ingest")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			body = nil
		}
		return nil, &QueryError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}
	return ParseJSON(resp.Body)
}
