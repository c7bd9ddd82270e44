package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one queued document run. Data carries the raw document bytes so
// workers never re-fetch from object storage.
type Job struct {
	DocumentID  uuid.UUID
	Data        []byte
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
