package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTokenURL = "https://id.twitch.tv/oauth2/token"
	defaultGamesURL = "https://api.igdb.com/v4/games"

	tokenCacheKey = "igdb_token"
	tokenTTL      = time.Hour

	// Provider-side page size for a search query.
	searchLimit = 5
)

// ExternalGame is the transient record returned by the catalog search. It is
// mapped into a local Game upsert and then discarded.
type ExternalGame struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Summary   string `json:"summary"`
	Storyline string `json:"storyline"`
	Cover     struct {
		URL string `json:"url"`
	} `json:"cover"`
}

// GameFetcher is the capability the search flow depends on.
type GameFetcher interface {
	FetchGames(ctx context.Context, search string) ([]ExternalGame, error)
}

// Client queries the IGDB catalog using OAuth2 client credentials. Access
// tokens are cached in the injected TokenCache for an hour.
type Client struct {
	creds      Credentials
	httpClient *http.Client
	tokens     TokenCache

	TokenURL string
	GamesURL string
}

func NewClient(creds Credentials, cache TokenCache) *Client {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Client{
		creds:      creds,
		httpClient: http.DefaultClient,
		tokens:     cache,
		TokenURL:   defaultTokenURL,
		GamesURL:   defaultGamesURL,
	}
}

func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	if token, ok := c.tokens.Get(tokenCacheKey); ok {
		return token, nil
	}

	form := url.Values{
		"client_id":     {c.creds.ClientID},
		"client_secret": {c.creds.ClientSecret},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("catalog token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("catalog token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("catalog token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("catalog token response missing access_token")
	}

	c.tokens.Set(tokenCacheKey, payload.AccessToken, tokenTTL)
	return payload.AccessToken, nil
}

// FetchGames runs a full-text search against the catalog and returns up to
// searchLimit records in provider order. A non-success response is fatal and
// carries the response body.
func (c *Client) FetchGames(ctx context.Context, search string) ([]ExternalGame, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"search %q;\nfields name,slug,cover.url,summary,storyline;\nlimit %d;",
		search, searchLimit,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GamesURL, strings.NewReader(query))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Client-ID", c.creds.ClientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog search failed (%d): %s", resp.StatusCode, string(body))
	}

	var results []ExternalGame
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("catalog search response: %w", err)
	}
	return results, nil
}
