package analysis

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnalyze(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(AnalysisResult{
			Content:    "SPECIAL REGULATIONS\nTest Lake Alpha (Mock):",
			Fields:     map[string]Field{"state": {Value: "MN", Confidence: 0.99}},
			StartPage:  3,
			EndPage:    12,
			Confidence: 0.97,
		})
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "test-key", Timeout: 5 * time.Second}, discardLogger())
	res, err := c.Analyze(context.Background(), AnalyzeRequest{
		Content: []byte("%PDF-1.7 fake"),
		Pages:   "3-12",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if gotPath != "/analyze" {
		t.Errorf("path = %q, want /analyze", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody["model_id"] != "prebuilt-layout" {
		t.Errorf("model_id = %v, want default prebuilt-layout", gotBody["model_id"])
	}
	if gotBody["pages"] != "3-12" {
		t.Errorf("pages = %v, want 3-12", gotBody["pages"])
	}
	src, _ := gotBody["base64_source"].(string)
	if decoded, err := base64.StdEncoding.DecodeString(src); err != nil || string(decoded) != "%PDF-1.7 fake" {
		t.Errorf("base64_source did not round-trip: %v", err)
	}
	if !strings.Contains(res.Content, "SPECIAL REGULATIONS") {
		t.Errorf("content = %q", res.Content)
	}
	if res.StartPage != 3 || res.EndPage != 12 {
		t.Errorf("pages = %d-%d, want 3-12", res.StartPage, res.EndPage)
	}
}

func TestAnalyzeRequiresSource(t *testing.T) {
	c := NewClient(Config{Endpoint: "http://unused"}, discardLogger())
	if _, err := c.Analyze(context.Background(), AnalyzeRequest{}); err == nil {
		t.Fatal("expected error for empty request")
	}
}

func TestAnalyzeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, discardLogger())
	_, err := c.Analyze(context.Background(), AnalyzeRequest{SourceURL: "https://example.com/doc.pdf"})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("err = %v, want status 404 error", err)
	}
}
