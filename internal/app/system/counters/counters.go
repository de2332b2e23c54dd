// Package counters bumps posting application counters off the request path.
//
// The counter is advisory: a submission must succeed even when the bump
// fails, so failures are logged and dropped rather than surfaced to the
// applicant.
package counters

import (
	"context"
	"time"

	postingstore "github.com/careerbridge/internhub/internal/app/store/postings"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single detached increment.
const DefaultTimeout = 5 * time.Second

// Incrementer owns the posting counter writes.
type Incrementer struct {
	Postings *postingstore.Store
	Log      *zap.Logger
	Timeout  time.Duration
}

func New(store *postingstore.Store, log *zap.Logger) *Incrementer {
	return &Incrementer{Postings: store, Log: log, Timeout: DefaultTimeout}
}

// Async bumps the counter on a detached goroutine with its own deadline.
// The caller's request context is deliberately not used: the bump should
// survive the response being written.
func (i *Incrementer) Async(postingID primitive.ObjectID) {
	go func() {
		if err := i.Sync(context.Background(), postingID); err != nil {
			i.Log.Warn("application counter increment failed",
				zap.String("posting_id", postingID.Hex()),
				zap.Error(err))
		}
	}()
}

// Sync bumps the counter and reports the error to the caller. Tests use it
// to observe the outcome without racing a goroutine.
func (i *Incrementer) Sync(ctx context.Context, postingID primitive.ObjectID) error {
	timeout := i.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return i.Postings.IncrementApplicationCount(ctx, postingID)
}
