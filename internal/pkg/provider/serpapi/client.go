package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/providerutils"
)

const (
	DefaultBaseURL = "https://serpapi.com"
	searchPath     = "/search.json"
	noResultsText  = "hasn't returned any results"
	maxErrorBody   = 512
)

// ErrNoResults is reported when the engine answered but found nothing.
var ErrNoResults = errors.New("search returned no results")

// Client performs GET /search.json calls against SerpAPI.
type Client struct {
	Name         string
	BaseURL      string
	APIKey       string
	HTTPClient   *http.Client
	Timeout      time.Duration
	MaxRetries   int
	Limiter      providerutils.RateLimiter
	RateLimitRPS int
}

func NewClient(name string, config provider.Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		Name:         name,
		BaseURL:      strings.TrimRight(baseURL, "/"),
		APIKey:       config.APIKey,
		HTTPClient:   &http.Client{},
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// Search runs the query described by params and decodes the JSON body into
// out. The api_key parameter is added by the client.
func (c *Client) Search(ctx context.Context, params url.Values, out interface{}) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	if err := providerutils.CheckRateLimit(ctx, c.Limiter, c.Name, c.RateLimitRPS); err != nil {
		return err
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api_key", c.APIKey)

	endpoint := c.BaseURL + searchPath + "?" + query.Encode()

	var body []byte
	err := providerutils.Retry(ctx, c.Name, c.MaxRetries, func(ctx context.Context) error {
		var err error
		body, err = c.do(ctx, endpoint)
		return err
	})
	if err != nil {
		return err
	}

	var providerErr errorBody
	if err := json.Unmarshal(body, &providerErr); err != nil {
		return providerutils.FetchFailure(fmt.Errorf("decode %s response: %w", c.Name, err))
	}

	if providerErr.Error != "" {
		if strings.Contains(providerErr.Error, noResultsText) {
			slog.InfoContext(ctx, "provider returned no results", slog.String("provider", c.Name))
			return ErrNoResults
		}

		return providerutils.FetchFailure(fmt.Errorf("%s: %s", c.Name, providerErr.Error))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return providerutils.FetchFailure(fmt.Errorf("decode %s response: %w", c.Name, err))
	}

	return nil
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, providerutils.FetchFailure(fmt.Errorf("build request: %w", err))
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, providerutils.FetchFailure(fmt.Errorf("context cancelled or timeout: %w", err))
		}

		return nil, providerutils.Retryable(providerutils.FetchFailure(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, providerutils.Retryable(providerutils.FetchFailure(fmt.Errorf("read body: %w", err)))
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, providerutils.Retryable(providerutils.FetchFailure(statusError(resp.StatusCode, body)))
	case resp.StatusCode >= http.StatusBadRequest:
		// SerpAPI reports "no results" with a 200, but some engines use 4xx
		// with the same error body.
		var providerErr errorBody
		if json.Unmarshal(body, &providerErr) == nil && strings.Contains(providerErr.Error, noResultsText) {
			return body, nil
		}

		return nil, providerutils.FetchFailure(statusError(resp.StatusCode, body))
	}

	return body, nil
}

func statusError(code int, body []byte) error {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return fmt.Errorf("unexpected status %d: %s", code, strings.TrimSpace(string(body)))
}
