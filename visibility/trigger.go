package visibility

import (
	"sync"

	"github.com/karupanerura/lazyload"
)

// Trigger is a repeatable visibility signal.
// The zero value is ready to use. It is safe for concurrent use.
//
// Fire calls the subscribers registered when it started, outside of any lock,
// so a callback may still run once after its unsubscribe function returned.
type Trigger struct {
	mu   sync.Mutex
	next uint64
	subs map[uint64]func()
}

var _ lazyload.VisibilitySignal = (*Trigger)(nil)

// Subscribe registers the callback and returns a function to remove it.
func (t *Trigger) Subscribe(f func()) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.subs == nil {
		t.subs = map[uint64]func(){}
	}
	id := t.next
	t.next++
	t.subs[id] = f

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			delete(t.subs, id)
		})
	}
}

// Fire calls every subscriber.
func (t *Trigger) Fire() {
	t.mu.Lock()
	subs := make([]func(), 0, len(t.subs))
	for _, f := range t.subs {
		subs = append(subs, f)
	}
	t.mu.Unlock()

	for _, f := range subs {
		f()
	}
}

// Subscribers returns the number of registered subscribers.
func (t *Trigger) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}
