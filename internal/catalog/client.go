package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public API root. The access key is a path segment.
const DefaultBaseURL = "https://www.theaudiodb.com/api/v1/json"

// Client implements Source over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a catalog client. baseURL may be empty to use the
// public endpoint. Requests are capped at two per second so cache-fill
// bursts stay polite toward the upstream API.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(2), 1),
	}
}

// SearchArtists looks up artists by name.
func (c *Client) SearchArtists(ctx context.Context, name string) ([]Artist, error) {
	var payload struct {
		Artists []Artist `json:"artists"`
	}
	if err := c.get(ctx, "search.php", url.Values{"s": {name}}, &payload); err != nil {
		return nil, err
	}
	if len(payload.Artists) == 0 {
		return nil, ErrNoResults
	}
	return payload.Artists, nil
}

// SearchAlbums looks up an artist's albums.
func (c *Client) SearchAlbums(ctx context.Context, artistName string) ([]Album, error) {
	var payload struct {
		Albums []Album `json:"album"`
	}
	if err := c.get(ctx, "searchalbum.php", url.Values{"s": {artistName}}, &payload); err != nil {
		return nil, err
	}
	if len(payload.Albums) == 0 {
		return nil, ErrNoResults
	}
	return payload.Albums, nil
}

// SearchTracks looks up a track by artist and track name.
func (c *Client) SearchTracks(ctx context.Context, artistName, trackName string) ([]Track, error) {
	var payload struct {
		Tracks []Track `json:"track"`
	}
	if err := c.get(ctx, "searchtrack.php", url.Values{"s": {artistName}, "t": {trackName}}, &payload); err != nil {
		return nil, err
	}
	if len(payload.Tracks) == 0 {
		return nil, ErrNoResults
	}
	return payload.Tracks, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("catalog rate limit: %w", err)
	}

	u := fmt.Sprintf("%s/%s/%s?%s", c.baseURL, c.apiKey, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("catalog search %s: %s: %s", endpoint, resp.Status, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}
