package localize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDeepLTranslate(t *testing.T) {
	var gotAuth, gotTarget, gotSource, gotPreserve, gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotAuth = r.Header.Get("Authorization")
		gotTarget = r.PostFormValue("target_lang")
		gotSource = r.PostFormValue("source_lang")
		gotPreserve = r.PostFormValue("preserve_formatting")
		gotText = r.PostFormValue("text")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"translations":[{"detected_source_language":"EN","text":"Bonjour le monde"}]}`))
	}))
	defer server.Close()

	tr := NewDeepLTranslator("secret-key", server.URL)
	out, err := tr.Translate(context.Background(), "Hello world", "fr", "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	if out != "Bonjour le monde" {
		t.Errorf("out = %q", out)
	}
	if gotAuth != "DeepL-Auth-Key secret-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotTarget != "FR" || gotSource != "EN" {
		t.Errorf("langs = %q/%q, want FR/EN", gotTarget, gotSource)
	}
	if gotPreserve != "1" {
		t.Errorf("preserve_formatting = %q", gotPreserve)
	}
	if gotText != "Hello world" {
		t.Errorf("text = %q", gotText)
	}
}

func TestDeepLTranslateBlankInputSkipsRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	tr := NewDeepLTranslator("key", server.URL)
	out, err := tr.Translate(context.Background(), "   ", "fr", "")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if out != "   " {
		t.Errorf("blank input should be returned unchanged, got %q", out)
	}
	if requests != 0 {
		t.Errorf("expected no HTTP request, got %d", requests)
	}
}

func TestDeepLTranslateErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	tr := NewDeepLTranslator("key", server.URL)
	if _, err := tr.Translate(context.Background(), "Hello", "fr", ""); err == nil {
		t.Error("expected error on non-2xx response")
	}
}
