package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"usergrip/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (r *recorder) handle(e DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) snapshot() []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DomainEvent(nil), r.events...)
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	rec := &recorder{}
	b.Subscribe(EventSearchStarted, rec.handle)

	for i := uint64(1); i <= 5; i++ {
		b.Publish(domain.SearchStartedEvent{Seq: i, Term: "octo"})
	}
	b.Close()

	events := rec.snapshot()
	require.Len(t, events, 5)
	for i, e := range events {
		assert.Equal(t, uint64(i+1), e.(domain.SearchStartedEvent).Seq)
	}
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New()
	started := &recorder{}
	failed := &recorder{}
	b.Subscribe(EventSearchStarted, started.handle)
	b.Subscribe(EventSearchFailed, failed.handle)

	b.Publish(domain.SearchFailedEvent{Term: "x", Message: "boom"})
	b.Close()

	assert.Empty(t, started.snapshot())
	require.Len(t, failed.snapshot(), 1)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	rec := &recorder{}
	unsubscribe := b.Subscribe(EventItemsDeleted, rec.handle)
	unsubscribe()

	done := make(chan struct{})
	b.Subscribe(EventItemsDeleted, func(DomainEvent) { close(done) })
	b.Publish(domain.ItemsDeletedEvent{})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
	assert.Empty(t, rec.snapshot())
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()
	rec := &recorder{}
	b.Subscribe(EventError, func(DomainEvent) { panic("handler failure") })
	b.Subscribe(EventError, rec.handle)

	b.Publish(domain.ErrorEvent{Message: "first"})
	b.Publish(domain.ErrorEvent{Message: "second"})
	b.Close()

	assert.Len(t, rec.snapshot(), 2)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	rec := &recorder{}
	b.Subscribe(EventConfigSaved, rec.handle)
	b.Close()
	b.Close()

	b.Publish(domain.ConfigSavedEvent{Path: "x"})
	assert.Empty(t, rec.snapshot())
}

func TestNopBus(t *testing.T) {
	b := Nop()
	unsubscribe := b.Subscribe(EventError, func(DomainEvent) { t.Fatal("nop bus delivered an event") })
	b.Publish(domain.ErrorEvent{})
	unsubscribe()
	b.Close()
}
