package analysis

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"context"

	"github.com/google/uuid"
)

// Config for the layout-analysis client.
type Config struct {
	Endpoint string // base URL of the analysis service
	APIKey   string // if empty, falls back to env ANALYSIS_API_KEY
	ModelID  string // default model identifier
	Timeout  time.Duration
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANALYSIS_API_KEY")
	}
	if cfg.ModelID == "" {
		cfg.ModelID = "prebuilt-layout"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Analyze submits one document unit and blocks until the service answers.
// Callers must expect multi-second latency per unit.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalysisResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	model := req.ModelID
	if model == "" {
		model = c.cfg.ModelID
	}

	body := map[string]any{"model_id": model}
	switch {
	case len(req.Content) > 0:
		body["base64_source"] = base64.StdEncoding.EncodeToString(req.Content)
	case req.SourceURL != "":
		body["url_source"] = req.SourceURL
	default:
		return nil, fmt.Errorf("analyze: no content or source url")
	}
	if req.Pages != "" {
		body["pages"] = req.Pages
	}

	c.logger.Info("analysis.request",
		"req_id", rid,
		"model", model,
		"pages", req.Pages,
		"content_bytes", len(req.Content),
	)

	endpoint := strings.TrimRight(c.cfg.Endpoint, "/") + "/analyze"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("analysis.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	var result AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.logger.Error("analysis.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}

	c.logger.Info("analysis.ok",
		"req_id", rid,
		"content_chars", len(result.Content),
		"fields", len(result.Fields),
		"tables", len(result.Tables),
		"confidence", result.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &result, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("analysis response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("analysis status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
