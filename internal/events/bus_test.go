package events

import (
	"sync"
	"testing"
	"time"

	"github.com/ncdevice/ncdevice/internal/protocol"
)

func TestNilBusPublish(t *testing.T) {
	var b *Bus
	// Must not panic.
	b.Publish(protocol.PropertyChangedEvent{Oid: 1})
}

func TestNilBusLen(t *testing.T) {
	var b *Bus
	if got := b.Len(); got != 0 {
		t.Errorf("Len() on nil bus = %d, want 0", got)
	}
}

func TestPublishThenNext(t *testing.T) {
	b := New()
	want := protocol.PropertyChangedEvent{Oid: 1, EventID: protocol.ElementId{Level: 1, Index: 1}}
	b.Publish(want)

	got, ok := b.Next()
	if !ok {
		t.Fatal("Next() returned ok=false for a non-empty bus")
	}
	if got.Oid != want.Oid {
		t.Errorf("got oid %d, want %d", got.Oid, want.Oid)
	}
}

func TestNextBlocksUntilPublish(t *testing.T) {
	b := New()
	done := make(chan protocol.PropertyChangedEvent, 1)
	go func() {
		e, ok := b.Next()
		if ok {
			done <- e
		}
	}()

	time.Sleep(10 * time.Millisecond)
	b.Publish(protocol.PropertyChangedEvent{Oid: 42})

	select {
	case got := <-done:
		if got.Oid != 42 {
			t.Errorf("got oid %d, want 42", got.Oid)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Next to unblock")
	}
}

func TestFIFOOrder(t *testing.T) {
	b := New()
	for i := uint32(1); i <= 5; i++ {
		b.Publish(protocol.PropertyChangedEvent{Oid: i})
	}
	for i := uint32(1); i <= 5; i++ {
		got, ok := b.Next()
		if !ok || got.Oid != i {
			t.Fatalf("Next() = %v, %v, want oid %d", got, ok, i)
		}
	}
}

func TestCloseDrainsThenFalse(t *testing.T) {
	b := New()
	b.Publish(protocol.PropertyChangedEvent{Oid: 1})
	b.Close()

	if _, ok := b.Next(); !ok {
		t.Fatal("expected queued event to still be delivered after Close")
	}
	if _, ok := b.Next(); ok {
		t.Fatal("expected Next() to return ok=false once drained after Close")
	}
}

func TestCloseUnblocksWaitingConsumer(t *testing.T) {
	b := New()
	done := make(chan bool, 1)
	go func() {
		_, ok := b.Next()
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	b.Close()

	select {
	case ok := <-done:
		if ok {
			t.Error("expected Next() to return ok=false after Close with no events")
		}
	case <-time.After(time.Second):
		t.Fatal("Close did not unblock waiting consumer")
	}
}

func TestDoubleClose(t *testing.T) {
	b := New()
	b.Close()
	// Must not panic.
	b.Close()
}

func TestConcurrentPublishSingleConsumer(t *testing.T) {
	b := New()
	const publishers = 10
	const eventsPerPublisher = 100

	var wg sync.WaitGroup
	received := make(chan struct{}, publishers*eventsPerPublisher)

	wg.Add(1)
	go func() {
		defer wg.Done()
		count := 0
		for count < publishers*eventsPerPublisher {
			if _, ok := b.Next(); ok {
				count++
				received <- struct{}{}
			}
		}
	}()

	var pubWg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		pubWg.Add(1)
		go func(i int) {
			defer pubWg.Done()
			for j := 0; j < eventsPerPublisher; j++ {
				b.Publish(protocol.PropertyChangedEvent{Oid: uint32(i*1000 + j)})
			}
		}(i)
	}

	pubWg.Wait()
	wg.Wait()
	close(received)

	n := 0
	for range received {
		n++
	}
	if n != publishers*eventsPerPublisher {
		t.Errorf("received %d events, want %d", n, publishers*eventsPerPublisher)
	}
}

func TestPublishAfterClose(t *testing.T) {
	b := New()
	b.Close()
	// Publishing after Close must not panic and must not be delivered.
	b.Publish(protocol.PropertyChangedEvent{Oid: 1})
	if _, ok := b.Next(); ok {
		t.Error("expected Next() to return ok=false after Close")
	}
}
