package asynchook

import (
	"errors"
	"sync"
	"testing"
)

type recorder struct {
	mu     sync.Mutex
	events []string
	block  chan struct{}
}

func (r *recorder) add(e string) {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) SelfHeal(k, reason string)    { r.add("heal:" + k + ":" + reason) }
func (r *recorder) ProviderSetRejected(k string) { r.add("rejected:" + k) }
func (r *recorder) ImportRejected(int, error)    { r.add("import") }

func TestForwardsAndDrainsOnClose(t *testing.T) {
	rec := &recorder{}
	h := New(rec, 2, 16)
	h.SelfHeal("k", "corrupt")
	h.ProviderSetRejected("k")
	h.ImportRejected(1, errors.New("x"))
	h.Close()
	h.Close() // idempotent

	if len(rec.events) != 3 {
		t.Fatalf("got %d events, want 3: %v", len(rec.events), rec.events)
	}
}

func TestDropsWhenQueueFull(t *testing.T) {
	rec := &recorder{block: make(chan struct{})}
	h := New(rec, 1, 1)

	// worker takes one event and blocks; queue holds one more; the rest drop
	for i := 0; i < 10; i++ {
		h.ProviderSetRejected("k")
	}
	close(rec.block)
	h.Close()

	if n := len(rec.events); n < 1 || n > 2 {
		t.Fatalf("expected 1-2 delivered events, got %d", n)
	}
}

func TestEventsAfterCloseAreDropped(t *testing.T) {
	rec := &recorder{}
	h := New(rec, 1, 4)
	h.Close()

	h.SelfHeal("k", "corrupt")
	h.ProviderSetRejected("k")
	h.ImportRejected(1, nil)

	if len(rec.events) != 0 {
		t.Fatalf("events delivered after Close: %v", rec.events)
	}
}

func TestCloseRacesWithEvents(t *testing.T) {
	rec := &recorder{}
	h := New(rec, 2, 8)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				h.ProviderSetRejected("k")
			}
		}()
	}
	h.Close()
	wg.Wait()
}
