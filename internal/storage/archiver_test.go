package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeS3 struct {
	s3iface.S3API
	lastInput *s3.PutObjectInput
	err       error
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, input *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestPutStoresObjectAndReturnsURL(t *testing.T) {
	fake := &fakeS3{}
	a := &s3Archiver{
		client: fake,
		cfg:    Config{Bucket: "regs", Region: "us-east-1", KeyPrefix: "documents"},
		log:    discardLogger(),
	}

	url, err := a.Put(context.Background(), []byte("%PDF-1.7"), "mn_2024.pdf", "")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if fake.lastInput == nil {
		t.Fatal("no object stored")
	}
	if got := aws.StringValue(fake.lastInput.ContentType); got != "application/pdf" {
		t.Fatalf("content type = %q", got)
	}
	key := aws.StringValue(fake.lastInput.Key)
	if !strings.HasPrefix(key, "documents/") || !strings.HasSuffix(key, "_mn_2024.pdf") {
		t.Fatalf("key = %q", key)
	}
	if !strings.Contains(url, "regs.s3.us-east-1.amazonaws.com/"+key) {
		t.Fatalf("url = %q", url)
	}
}

func TestPutFailureIsReported(t *testing.T) {
	fake := &fakeS3{err: errors.New("bucket unavailable")}
	a := &s3Archiver{
		client: fake,
		cfg:    Config{Bucket: "regs", Region: "us-east-1"},
		log:    discardLogger(),
	}

	if _, err := a.Put(context.Background(), []byte("x"), "a.txt", ""); err == nil {
		t.Fatal("expected an error")
	}
}

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"a.pdf": "application/pdf",
		"a.txt": "text/plain",
		"a.bin": "application/octet-stream",
	}
	for in, want := range cases {
		if got := ContentTypeFor(in); got != want {
			t.Fatalf("ContentTypeFor(%q) = %q, want %q", in, got, want)
		}
	}
}
