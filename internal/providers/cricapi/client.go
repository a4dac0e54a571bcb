package cricapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
	"cricket-bingo-service/internal/providers"
)

// Config controls how the cricapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	MaxPages   int
}

// Client fetches the player pool from the CricAPI service and maps it to
// domain models. Upstream entries carry no career statistics, so players
// arrive with zero stats; deployments needing stat categories pair this
// client with a curated data overlay.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	maxPages   int
}

// NewClient constructs a cricapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// FetchPlayers retrieves all player pages from the upstream API.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	offset := 0
	page := 1
	pool := make([]players.Player, 0)

	for {
		req, err := c.buildRequest(ctx, offset)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
			resp.Body.Close()
			return nil, &providers.RateLimitError{
				Provider:   providerName,
				StatusCode: resp.StatusCode,
				RetryAfter: retryAfter,
			}
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return nil, fmt.Errorf("cricapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}

		var payload playersResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
			resp.Body.Close()
			return nil, decodeErr
		}
		resp.Body.Close()

		if payload.Status != "" && payload.Status != "success" {
			return nil, fmt.Errorf("cricapi: upstream status %q", payload.Status)
		}

		for _, p := range payload.Data {
			pool = append(pool, mapPlayer(p))
		}

		if len(payload.Data) < defaultPerPage {
			break
		}
		if payload.Info.TotalRows > 0 && offset+len(payload.Data) >= payload.Info.TotalRows {
			break
		}
		if page >= c.maxPages {
			break
		}
		offset += len(payload.Data)
		page++
	}

	return pool, nil
}

// FetchCategories returns the built-in catalog. The upstream API has no
// category concept.
func (c *Client) FetchCategories(ctx context.Context) ([]categories.Category, error) {
	_ = ctx
	return categories.Catalog, nil
}

func (c *Client) buildRequest(ctx context.Context, offset int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/players", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("apikey", c.apiKey)
	q.Set("offset", strconv.Itoa(offset))
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
