package jamendo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	baseURL   = "https://api.jamendo.com/v3.0"
	userAgent = "moodboard-api/1.0"
)

// Search defaults expected by the playlist service.
const (
	defaultOrder       = "popularity_total"
	defaultAudioFormat = "mp32"
	defaultInclude     = "musicinfo+licenses"
)

// Client is a Jamendo API client.
type Client struct {
	clientID   string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Jamendo API client from the provided configuration.
func NewClient(cfg *Config) *Client {
	return &Client{
		clientID: cfg.ClientID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// SearchByTags fetches the most popular tracks matching all of the given
// tags. An empty result list is not an error.
func (c *Client) SearchByTags(ctx context.Context, tags []string, limit int) ([]Track, error) {
	params := url.Values{
		"tags":        {strings.Join(tags, ",")},
		"limit":       {strconv.Itoa(limit)},
		"order":       {defaultOrder},
		"audioformat": {defaultAudioFormat},
		"include":     {defaultInclude},
	}

	body, err := c.doRequest(ctx, "tracks/", params)
	if err != nil {
		return nil, fmt.Errorf("searching tracks by tags: %w", err)
	}

	return parseTracks(body)
}

// SearchByKeyword fetches tracks matching a free-text keyword.
func (c *Client) SearchByKeyword(ctx context.Context, keyword string, limit int) ([]Track, error) {
	params := url.Values{
		"search":      {keyword},
		"limit":       {strconv.Itoa(limit)},
		"audioformat": {defaultAudioFormat},
		"include":     {"musicinfo"},
	}

	body, err := c.doRequest(ctx, "tracks/", params)
	if err != nil {
		return nil, fmt.Errorf("searching tracks by keyword: %w", err)
	}

	return parseTracks(body)
}

// TrackURL returns the public Jamendo page for a track.
func TrackURL(id string) string {
	return "https://www.jamendo.com/track/" + id
}

// doRequest performs a GET against the Jamendo API with the client ID and
// JSON format applied.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	params.Set("client_id", c.clientID)
	params.Set("format", "json")

	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return body, nil
}

// parseTracks decodes a tracks response and surfaces API-level errors
// reported in the headers envelope.
func parseTracks(body []byte) ([]Track, error) {
	var resp tracksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing tracks response: %w", err)
	}

	if resp.Headers.Code != 0 {
		return nil, fmt.Errorf("API error %d: %s", resp.Headers.Code, resp.Headers.ErrorMessage)
	}

	return resp.Results, nil
}
