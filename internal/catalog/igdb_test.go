package catalog

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadCredentials(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".twitch")
	content := "# catalog credentials\nCLI=my-client-id\nSECRET=my-secret\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	creds, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if creds.ClientID != "my-client-id" || creds.ClientSecret != "my-secret" {
		t.Errorf("creds = %+v", creds)
	}
}

func TestLoadCredentialsMissingKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".twitch")
	if err := os.WriteFile(path, []byte("CLI=only-id\n"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := LoadCredentials(path); err == nil {
		t.Error("expected error when SECRET is missing")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	current := time.Now()
	cache := NewMemoryCache()
	cache.now = func() time.Time { return current }

	cache.Set("k", "v", time.Hour)
	if v, ok := cache.Get("k"); !ok || v != "v" {
		t.Fatalf("Get = %q, %v", v, ok)
	}

	current = current.Add(2 * time.Hour)
	if _, ok := cache.Get("k"); ok {
		t.Error("entry should expire after its ttl")
	}
}

func newTestClient(t *testing.T) (*Client, *int, *int) {
	t.Helper()
	tokenCalls := new(int)
	searchCalls := new(int)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		*tokenCalls++
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostFormValue("grant_type") != "client_credentials" {
			t.Errorf("grant_type = %q", r.PostFormValue("grant_type"))
		}
		if r.PostFormValue("client_id") != "cid" || r.PostFormValue("client_secret") != "sec" {
			t.Errorf("credentials not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-123","expires_in":3600}`))
	})
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		*searchCalls++
		if got := r.Header.Get("Client-ID"); got != "cid" {
			t.Errorf("Client-ID = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		query := string(raw)
		if !strings.Contains(query, `search "chrono trigger";`) {
			t.Errorf("query = %q", query)
		}
		if !strings.Contains(query, "limit 5;") {
			t.Errorf("query missing limit: %q", query)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1045,"name":"Chrono Trigger","slug":"chrono-trigger","summary":"A summary.","storyline":"A storyline.","cover":{"url":"//images.igdb.com/cover.jpg"}},
			{"id":1046,"name":"Chrono Cross","slug":"chrono-cross"}
		]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient(Credentials{ClientID: "cid", ClientSecret: "sec"}, NewMemoryCache())
	client.TokenURL = server.URL + "/oauth2/token"
	client.GamesURL = server.URL + "/games"
	return client, tokenCalls, searchCalls
}

func TestFetchGames(t *testing.T) {
	client, _, _ := newTestClient(t)

	results, err := client.FetchGames(context.Background(), "chrono trigger")
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	first := results[0]
	if first.ID != 1045 || first.Name != "Chrono Trigger" || first.Slug != "chrono-trigger" {
		t.Errorf("first = %+v", first)
	}
	if first.Storyline != "A storyline." || first.Cover.URL != "//images.igdb.com/cover.jpg" {
		t.Errorf("nested fields not decoded: %+v", first)
	}
}

func TestFetchGamesReusesCachedToken(t *testing.T) {
	client, tokenCalls, searchCalls := newTestClient(t)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := client.FetchGames(ctx, "chrono trigger"); err != nil {
			t.Fatalf("FetchGames #%d: %v", i+1, err)
		}
	}

	if *tokenCalls != 1 {
		t.Errorf("token endpoint hit %d times, want 1", *tokenCalls)
	}
	if *searchCalls != 3 {
		t.Errorf("search endpoint hit %d times, want 3", *searchCalls)
	}
}

func TestFetchGamesSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Authorization Failure"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(Credentials{ClientID: "cid", ClientSecret: "sec"}, NewMemoryCache())
	client.TokenURL = server.URL
	client.GamesURL = server.URL

	if _, err := client.FetchGames(context.Background(), "zelda"); err == nil {
		t.Error("expected error from failing endpoint")
	}
}
