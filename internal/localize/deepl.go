package localize

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultDeepLURL = "https://api-free.deepl.com/v2/translate"

// DeepLTranslator calls the DeepL REST API, one request per invocation. A
// non-success response is fatal to the caller; there is no retry.
type DeepLTranslator struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewDeepLTranslator(apiKey, baseURL string) *DeepLTranslator {
	if baseURL == "" {
		baseURL = defaultDeepLURL
	}
	return &DeepLTranslator{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

func (d *DeepLTranslator) Name() string { return "deepl" }

func (d *DeepLTranslator) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	form := url.Values{
		"text":                {text},
		"target_lang":         {strings.ToUpper(targetLang)},
		"preserve_formatting": {"1"},
	}
	if sourceLang != "" {
		form.Set("source_lang", strings.ToUpper(sourceLang))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepl request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("deepl request failed (%d): %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("deepl response: %w", err)
	}
	if len(payload.Translations) == 0 {
		return text, nil
	}
	return payload.Translations[0].Text, nil
}
