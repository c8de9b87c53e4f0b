// Package faceit provides a client for the FACEIT Data API v4 and turns its
// payloads into the model snapshots the analytics run on.
package faceit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/pable/go-faceit-insights/internal/logging"
)

// DefaultBaseURL is the root endpoint for the FACEIT Data API v4.
const DefaultBaseURL = "https://open.faceit.com/data/v4"

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("not found")

// PayloadCache stores raw response bodies by request path.
type PayloadCache interface {
	GetPayload(ctx context.Context, key string) ([]byte, bool, error)
	PutPayload(ctx context.Context, key string, body []byte) error
}

// Client is a FACEIT Data API v4 client.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cache   PayloadCache
	log     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCache enables the match payload cache.
func WithCache(pc PayloadCache) Option {
	return func(c *Client) { c.cache = pc }
}

// WithLogger sets the request logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient returns a FACEIT API client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     logging.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// get performs an authenticated GET request against the FACEIT API and
// decodes the response body into out. Match payloads are served from and
// stored to the cache when one is configured.
func (c *Client) get(ctx context.Context, path string, out any) error {
	body, err := c.fetch(ctx, path)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	cacheable := c.cache != nil && strings.HasPrefix(path, "/matches/")
	if cacheable {
		body, ok, err := c.cache.GetPayload(ctx, path)
		switch {
		case err != nil:
			c.log.WarnContext(ctx, "cache read failed", "path", path, "err", err)
		case ok:
			c.log.DebugContext(ctx, "upstream request", "path", path, "cache_hit", true)
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", path)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "upstream request",
		"path", path, "status", resp.StatusCode, "cache_hit", false, "elapsed", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Wrapf(ErrNotFound, "GET %s", path)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Newf("GET %s: HTTP %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	if cacheable {
		if err := c.cache.PutPayload(ctx, path, body); err != nil {
			c.log.WarnContext(ctx, "cache write failed", "path", path, "err", err)
		}
	}
	return body, nil
}

// GetMatch returns details for a single match: factions with rosters, the
// map and location veto, and results.
func (c *Client) GetMatch(ctx context.Context, matchID string) (*MatchDetail, error) {
	var m MatchDetail
	if err := c.get(ctx, "/matches/"+url.PathEscape(matchID), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMatchStats returns per-map team and player statistics for a match.
func (c *Client) GetMatchStats(ctx context.Context, matchID string) (*MatchStats, error) {
	var s MatchStats
	if err := c.get(ctx, "/matches/"+url.PathEscape(matchID)+"/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetPlayer looks up a player by FACEIT player ID.
func (c *Client) GetPlayer(ctx context.Context, playerID string) (*Player, error) {
	var p Player
	if err := c.get(ctx, "/players/"+url.PathEscape(playerID), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPlayerByNickname looks up a player by their FACEIT nickname.
func (c *Client) GetPlayerByNickname(ctx context.Context, nickname string) (*Player, error) {
	var p Player
	if err := c.get(ctx, "/players?nickname="+url.QueryEscape(nickname), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPlayerBySteamID looks up a player by their Steam ID64.
func (c *Client) GetPlayerBySteamID(ctx context.Context, steamID string) (*Player, error) {
	var p Player
	if err := c.get(ctx, "/players?game=cs2&game_player_id="+url.QueryEscape(steamID), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetMatchHistory returns up to limit recent matches for a player in game.
func (c *Client) GetMatchHistory(ctx context.Context, playerID, game string, offset, limit int) ([]MatchHistoryItem, error) {
	var resp struct {
		Items []MatchHistoryItem `json:"items"`
	}
	path := fmt.Sprintf("/players/%s/history?game=%s&offset=%d&limit=%d",
		url.PathEscape(playerID), url.QueryEscape(game), offset, limit)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// GetPlayerStats returns a player's lifetime statistics for game.
func (c *Client) GetPlayerStats(ctx context.Context, playerID, game string) (*PlayerStats, error) {
	var s PlayerStats
	path := "/players/" + url.PathEscape(playerID) + "/stats/" + url.PathEscape(game)
	if err := c.get(ctx, path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
