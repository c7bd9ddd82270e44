package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fisheries-data/regs-tracker/internal/llm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func testClient(t *testing.T, handler http.HandlerFunc, lenient bool) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:          "test-key",
		BaseURL:         srv.URL,
		Model:           "gpt-4o-mini",
		Timeout:         5 * time.Second,
		LenientOptional: lenient,
	}, discardLogger())
}

func TestExtractRegulation(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(chatResponse(
			`{"species":"Walleye","regulation_type":"combined","daily_limit":6,"possession_limit":12}`)))
	}, false)

	fields, raw, err := c.ExtractRegulation(context.Background(), llm.ExtractRequest{
		WaterBodyName:  "Test Lake Alpha",
		County:         "Mock",
		StateCode:      "MN",
		RegulationYear: 2026,
		EntryText:      "Walleye daily limit 6, possession 12.",
	})
	if err != nil {
		t.Fatalf("ExtractRegulation: %v", err)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q, want /chat/completions", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v", gotBody["model"])
	}
	if fields.Species != "Walleye" {
		t.Errorf("species = %q, want Walleye", fields.Species)
	}
	if fields.DailyLimit == nil || *fields.DailyLimit != 6 {
		t.Errorf("daily limit = %v, want 6", fields.DailyLimit)
	}
	if !json.Valid(raw) {
		t.Error("raw content is not valid JSON")
	}
}

func TestExtractRegulationStripsFence(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(
			"```json\n{\"species\":\"Walleye\",\"regulation_type\":\"combined\"}\n```")))
	}, false)

	fields, _, err := c.ExtractRegulation(context.Background(), llm.ExtractRequest{EntryText: "x"})
	if err != nil {
		t.Fatalf("ExtractRegulation: %v", err)
	}
	if fields.Species != "Walleye" {
		t.Errorf("species = %q, want Walleye", fields.Species)
	}
}

func TestExtractRegulationLenientSanitize(t *testing.T) {
	// bag_limit and a string count are rejected by strict validation but
	// recoverable by the lenient path.
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(
			`{"species":"Walleye","regulation_type":"combined","bag_limit":"6"}`)))
	}, true)

	fields, _, err := c.ExtractRegulation(context.Background(), llm.ExtractRequest{EntryText: "x"})
	if err != nil {
		t.Fatalf("ExtractRegulation: %v", err)
	}
	if fields.DailyLimit == nil || *fields.DailyLimit != 6 {
		t.Errorf("daily limit = %v, want 6 after sanitize", fields.DailyLimit)
	}
}

func TestExtractRegulationStrictRejectsMissingSpecies(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"regulation_type":"combined"}`)))
	}, true)

	_, _, err := c.ExtractRegulation(context.Background(), llm.ExtractRequest{EntryText: "x"})
	if err == nil || !strings.Contains(err.Error(), "schema validation failed") {
		t.Fatalf("err = %v, want schema validation failure", err)
	}
}

func TestExtractRegulationHTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}, false)

	_, _, err := c.ExtractRegulation(context.Background(), llm.ExtractRequest{EntryText: "x"})
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("err = %v, want status 429 error", err)
	}
}

func TestExtractRegulationNoChoices(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}, false)

	_, _, err := c.ExtractRegulation(context.Background(), llm.ExtractRequest{EntryText: "x"})
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Fatalf("err = %v, want no choices error", err)
	}
}
