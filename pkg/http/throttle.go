package http

import (
	"net/http"
	"sync"
	"time"
)

// Throttle wraps an HTTPClient and enforces a minimum interval between
// requests. Calls block until the interval has elapsed; the wrapped client's
// behavior is otherwise unchanged.
type Throttle struct {
	client   HTTPClient
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewThrottle creates a Throttle around client. A zero or negative interval
// disables waiting.
func NewThrottle(client HTTPClient, interval time.Duration) *Throttle {
	return &Throttle{
		client:   client,
		interval: interval,
	}
}

func (t *Throttle) Do(req *http.Request) (*http.Response, error) {
	if err := t.wait(req); err != nil {
		return nil, err
	}
	return t.client.Do(req)
}

// wait reserves the next send slot. The lock is held while waiting so
// concurrent callers queue up rather than stampede the provider.
func (t *Throttle) wait(req *http.Request) error {
	if t.interval <= 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	sleep := t.interval - time.Since(t.last)
	if sleep > 0 {
		select {
		case <-req.Context().Done():
			return req.Context().Err()
		case <-time.After(sleep):
		}
	}

	t.last = time.Now()
	return nil
}
