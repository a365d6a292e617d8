package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pinged struct{}

func (pinged) Name() string { return "pinged" }

type other struct{}

func (other) Name() string { return "other" }

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := New(zap.NewNop())

	var calls int32
	for i := 0; i < 3; i++ {
		bus.Subscribe("pinged", func(ctx context.Context, e Event) error {
			atomic.AddInt32(&calls, 1)
			return nil
		})
	}
	bus.Subscribe("other", func(ctx context.Context, e Event) error {
		t.Error("listener of another event must not run")
		return nil
	})

	bus.Publish(context.Background(), pinged{})
	bus.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestBus_ListenerFailuresAreContained(t *testing.T) {
	bus := New(zap.NewNop())

	var ok int32
	bus.Subscribe("pinged", func(ctx context.Context, e Event) error { return errors.New("boom") })
	bus.Subscribe("pinged", func(ctx context.Context, e Event) error { panic("kaboom") })
	bus.Subscribe("pinged", func(ctx context.Context, e Event) error {
		atomic.AddInt32(&ok, 1)
		return nil
	})

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), pinged{})
		bus.Wait()
	})
	assert.Equal(t, int32(1), atomic.LoadInt32(&ok))
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := New(zap.NewNop())
	bus.Publish(context.Background(), other{})
	bus.Wait()
}
