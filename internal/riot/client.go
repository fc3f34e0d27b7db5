package riot

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

	"riftgate-rest-api/internal/domain"
)

// TokenHeader carries the upstream API key on every outbound request.
const TokenHeader = "X-Riot-Token"

// genericFailure is used when an upstream error body cannot be parsed.
const genericFailure = "Game API request failed"

// matchPaths maps a game to its match API path prefix. Each game family
// versions its match API independently.
var matchPaths = map[domain.Game]string{
	domain.GameLoL: "lol/match/v5",
	domain.GameTFT: "tft/match/v1",
	domain.GameLoR: "lor/match/v1",
	domain.GameVal: "val/match/v1",
}

// Client is an HTTP client for the upstream game-data API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates an upstream client. The timeout bounds every outbound
// request so a stalled upstream cannot pin connections indefinitely.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// SummonerByName fetches a summoner record by region and display name.
func (c *Client) SummonerByName(ctx context.Context, region, name string) (json.RawMessage, error) {
	path := fmt.Sprintf("/%s/lol/summoner/v4/summoners/by-name/%s",
		url.PathEscape(region), url.PathEscape(name))
	return c.get(ctx, path, nil)
}

// MatchByID fetches a single match document for the given game.
func (c *Client) MatchByID(ctx context.Context, game domain.Game, matchID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/%s/matches/%s", matchPaths[game], url.PathEscape(matchID))
	return c.get(ctx, path, nil)
}

// MatchIDsByPUUID fetches a page of match ids for a player.
func (c *Client) MatchIDsByPUUID(ctx context.Context, game domain.Game, puuid string, page MatchPage) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("start", strconv.Itoa(page.Start))
	q.Set("count", strconv.Itoa(page.Count))
	if page.Type != "" {
		q.Set("type", page.Type)
	}
	path := fmt.Sprintf("/%s/matches/by-puuid/%s/ids", matchPaths[game], url.PathEscape(puuid))
	return c.get(ctx, path, q)
}

// upstreamError mirrors the upstream API's error body shape.
type upstreamError struct {
	Status struct {
		Message    string `json:"message"`
		StatusCode int    `json:"status_code"`
	} `json:"status"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set(TokenHeader, c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: genericFailure}
		var parsed upstreamError
		if err := json.Unmarshal(body, &parsed); err == nil && parsed.Status.Message != "" {
			apiErr.Message = parsed.Status.Message
		}
		return nil, apiErr
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("upstream returned invalid JSON (status %d)", resp.StatusCode)
	}
	return json.RawMessage(body), nil
}
