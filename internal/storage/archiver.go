// Package storage archives raw regulation documents in S3-compatible object
// storage. Archival failures are reported to callers as warnings, never as
// pipeline blockers.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Archiver stores a document's raw bytes and returns its stored URL.
type Archiver interface {
	Put(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

type Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string // optional, for S3-compatible stores
	KeyPrefix string // e.g. "documents"
}

type s3Archiver struct {
	client s3iface.S3API
	cfg    Config
	log    *slog.Logger
}

func NewS3Archiver(cfg Config, logger *slog.Logger) (Archiver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create s3 session: %w", err)
	}
	return &s3Archiver{client: s3.New(sess), cfg: cfg, log: logger}, nil
}

func (a *s3Archiver) Put(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	start := time.Now()
	key := objectKey(a.cfg.KeyPrefix, filename)
	if contentType == "" {
		contentType = ContentTypeFor(filename)
	}

	_, err := a.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		a.log.Warn("storage.put.failed",
			"key", key, "bytes", len(data), "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("archive %s: %w", filename, err)
	}

	url := a.objectURL(key)
	a.log.Info("storage.put.ok",
		"key", key, "bytes", len(data), "url", url,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return url, nil
}

func (a *s3Archiver) objectURL(key string) string {
	if a.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", a.cfg.Endpoint, a.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.cfg.Bucket, a.cfg.Region, key)
}

func objectKey(prefix, filename string) string {
	ts := time.Now().Unix()
	if prefix == "" {
		prefix = "documents"
	}
	return fmt.Sprintf("%s/%d_%s", prefix, ts, filepath.Base(filename))
}

// ContentTypeFor maps a document filename to its MIME type.
func ContentTypeFor(filename string) string {
	switch filepath.Ext(filename) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
