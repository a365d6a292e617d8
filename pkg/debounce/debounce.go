// Package debounce coalesces bursts of calls that share a key (one search box,
// one autocomplete widget) so only the latest settled call does work.
package debounce

import (
	"context"
	"sync"
	"time"

	apperrors "maintenance-console/pkg/errors"
)

// DefaultWait is the quiet period used when none is configured.
const DefaultWait = 300 * time.Millisecond

var ErrSuperseded = apperrors.ErrSuperseded

type Debouncer struct {
	wait time.Duration

	mu sync.Mutex
	// last is shared by all keys so a ticket is never handed out twice, even
	// after release dropped its key.
	last uint64
	seq  map[string]uint64
}

func New(wait time.Duration) *Debouncer {
	if wait < 0 {
		wait = DefaultWait
	}
	return &Debouncer{wait: wait, seq: make(map[string]uint64)}
}

func (d *Debouncer) Wait() time.Duration { return d.wait }

// Do waits for a quiet period on key and then runs fn. A call that is
// overtaken by a newer one for the same key returns ErrSuperseded, either
// before fn runs or, when fn already ran, instead of fn's result.
func (d *Debouncer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	ticket := d.next(key)
	defer d.release(key, ticket)

	if d.wait > 0 {
		timer := time.NewTimer(d.wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if !d.current(key, ticket) {
		return ErrSuperseded
	}

	err := fn(ctx)

	if !d.current(key, ticket) {
		return ErrSuperseded
	}
	return err
}

// Run is Do for functions that produce a value.
func Run[T any](ctx context.Context, d *Debouncer, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := d.Do(ctx, key, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (d *Debouncer) next(key string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last++
	d.seq[key] = d.last
	return d.last
}

func (d *Debouncer) current(key string, ticket uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq[key] == ticket
}

// release drops the key once its latest call is done, keeping the map small.
func (d *Debouncer) release(key string, ticket uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seq[key] == ticket {
		delete(d.seq, key)
	}
}
