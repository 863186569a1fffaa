package progressive

import (
	"context"
	"slices"
	"sync"

	"github.com/karupanerura/lazyload"
	"github.com/karupanerura/lazyload/internal/panicutil"
)

const (
	opInitialPage   = "initial-page"
	opRemainingPage = "remaining-page"
)

// Loader loads the detail entries of one item progressively.
// It is safe for concurrent use.
type Loader[K lazyload.KeyConstraint, V lazyload.ValueConstraint] struct {
	id       K
	source   lazyload.PageSource[K, V]
	pageSize int
	cloner   lazyload.ValueCloner[V]
	context  func() context.Context
	onError  func(error)

	mu          sync.Mutex
	phase       lazyload.Phase
	items       []V
	consumed    bool
	visible     bool
	collapsed   bool
	disposed    bool
	observing   bool
	lastErr     error
	unsubscribe func()

	// closed once the latest fetch settled and its error was reported
	inFlight chan struct{}
}

// State is a read-only snapshot of a Loader.
type State[K lazyload.KeyConstraint, V lazyload.ValueConstraint] struct {
	// ItemID is the identifier of the owning item.
	ItemID K

	// Phase is the current phase.
	Phase lazyload.Phase

	// Items is a copy of every loaded entry, initial page first.
	Items []V

	// Displayed is the part of Items to present.
	// It is truncated to the page size unless the loader is Full and not collapsed.
	Displayed []V

	// Visible is true once the visibility signal has fired.
	Visible bool

	// Collapsed is true when a Full loader displays only the initial page.
	Collapsed bool

	// Disposed is true once the loader has been disposed.
	Disposed bool

	// LastError is the error of the last failed fetch, if any.
	LastError error
}

// New creates a new Loader for the item.
func New[K lazyload.KeyConstraint, V lazyload.ValueConstraint](id K, source lazyload.PageSource[K, V], opts ...Option[K, V]) *Loader[K, V] {
	l := &Loader[K, V]{
		id:       id,
		source:   source,
		pageSize: DefaultPageSize,
		cloner:   nil,
		context:  context.Background,
	}
	for _, o := range opts {
		o.apply(l)
	}
	if l.cloner == nil {
		l.cloner = lazyload.DefaultValueCloner[V]()
	}
	return l
}

// ID returns the identifier of the owning item.
func (l *Loader[K, V]) ID() K {
	return l.id
}

// Observe subscribes the loader to the visibility signal.
// The first notification starts the initial fetch without blocking the signal source,
// and the subscription is torn down right away.
// It does nothing if the loader already observes a signal, was triggered, or was disposed.
func (l *Loader[K, V]) Observe(signal lazyload.VisibilitySignal) {
	l.mu.Lock()
	if l.observing || l.consumed || l.disposed {
		l.mu.Unlock()
		return
	}
	l.observing = true
	l.mu.Unlock()

	unsubscribe := signal.Subscribe(func() {
		l.trigger()
	})

	l.mu.Lock()
	if l.consumed || l.disposed {
		l.mu.Unlock()
		unsubscribe()
		return
	}
	l.unsubscribe = unsubscribe
	l.mu.Unlock()
}

// OnVisible handles the visibility signal.
// The first call starts the initial fetch and returns true; any later call is a no-op returning false.
// It blocks until the fetch settles or the context is done. The fetch itself is never canceled.
func (l *Loader[K, V]) OnVisible(ctx context.Context) bool {
	done, ok := l.trigger()
	if ok {
		wait(ctx, done)
	}
	return ok
}

// trigger consumes the visibility signal and starts the initial fetch.
// It returns false if the signal was already consumed or the loader was disposed.
func (l *Loader[K, V]) trigger() (<-chan struct{}, bool) {
	l.mu.Lock()
	if l.consumed || l.disposed {
		l.mu.Unlock()
		return nil, false
	}
	l.consumed = true
	l.visible = true
	l.phase = lazyload.PhaseInitialLoading
	unsubscribe := l.unsubscribe
	l.unsubscribe = nil
	done := l.start(opInitialPage, l.source.InitialPage, l.applyInitialPage)
	l.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	return done, true
}

// Expand handles a request to show every entry.
//
// On a Full loader it toggles between collapsed and expanded display without fetching.
// On a Partial loader holding no more than the initial page, it fetches the remaining
// page, appends it after the initial entries and returns true. The call blocks until the
// fetch settles or the context is done.
// In any other phase, including while an expansion is in flight, it is a no-op.
func (l *Loader[K, V]) Expand(ctx context.Context) bool {
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		return false
	}

	switch l.phase {
	case lazyload.PhaseFull:
		l.collapsed = !l.collapsed
		l.mu.Unlock()
		return false

	case lazyload.PhasePartial:
		if len(l.items) > l.pageSize {
			l.phase = lazyload.PhaseFull
			l.collapsed = false
			l.mu.Unlock()
			return false
		}
		l.phase = lazyload.PhaseExpanding
		done := l.start(opRemainingPage, l.source.RemainingPage, l.applyRemainingPage)
		l.mu.Unlock()

		wait(ctx, done)
		return true

	default:
		l.mu.Unlock()
		return false
	}
}

// Collapse truncates the display of a Full loader to the initial page.
// It never discards loaded entries.
func (l *Loader[K, V]) Collapse() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.phase == lazyload.PhaseFull {
		l.collapsed = true
	}
}

// Dispose tears the loader down.
// It unsubscribes from the visibility signal. A fetch in flight keeps running,
// but its result is discarded.
func (l *Loader[K, V]) Dispose() {
	l.mu.Lock()
	l.disposed = true
	unsubscribe := l.unsubscribe
	l.unsubscribe = nil
	l.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Wait blocks until the latest fetch, if any, settles.
func (l *Loader[K, V]) Wait() {
	l.mu.Lock()
	done := l.inFlight
	l.mu.Unlock()

	if done != nil {
		<-done
	}
}

// State returns a snapshot of the loader.
func (l *Loader[K, V]) State() State[K, V] {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := lazyload.CloneSlice(l.cloner, l.items)
	return State[K, V]{
		ItemID:    l.id,
		Phase:     l.phase,
		Items:     items,
		Displayed: l.displayed(items),
		Visible:   l.visible,
		Collapsed: l.collapsed,
		Disposed:  l.disposed,
		LastError: l.lastErr,
	}
}

// displayed returns the presented part of the items.
func (l *Loader[K, V]) displayed(items []V) []V {
	switch l.phase {
	case lazyload.PhaseUnobserved, lazyload.PhaseInitialLoading:
		return nil
	case lazyload.PhaseFull:
		if !l.collapsed {
			return items
		}
	}
	return items[:min(l.pageSize, len(items))]
}

// start runs the fetch in a new goroutine and returns a channel closed after it settles.
// It must be called with the lock held.
func (l *Loader[K, V]) start(op string, fetch func(context.Context, K) ([]V, error), apply func([]V, error)) <-chan struct{} {
	done := make(chan struct{})
	l.inFlight = done

	ctx := l.context()
	go func() {
		defer close(done)

		g := panicutil.Guard{
			OnGoexit: func() {
				l.finish(apply, nil, lazyload.NewFetchError(op, panicutil.ErrGoexit))
			},
		}

		var items []V
		err := g.Call(func() (err error) {
			items, err = fetch(ctx, l.id)
			return
		})
		l.finish(apply, items, lazyload.NewFetchError(op, err))
	}()
	return done
}

// finish applies the fetch result unless the loader was disposed in the meantime.
func (l *Loader[K, V]) finish(apply func([]V, error), items []V, err error) {
	l.mu.Lock()
	if l.disposed {
		// lazyload.ErrStaleUpdate: dropped without notice
		l.mu.Unlock()
		return
	}
	apply(items, err)
	l.mu.Unlock()

	if err != nil && l.onError != nil {
		l.onError(err)
	}
}

func (l *Loader[K, V]) applyInitialPage(items []V, err error) {
	if err != nil {
		l.phase = lazyload.PhaseUnobserved
		l.items = nil
		l.lastErr = err
		return
	}
	l.phase = lazyload.PhasePartial
	l.items = slices.Clone(items)
	l.lastErr = nil
}

func (l *Loader[K, V]) applyRemainingPage(items []V, err error) {
	if err != nil {
		l.phase = lazyload.PhasePartial
		l.lastErr = err
		return
	}
	l.phase = lazyload.PhaseFull
	l.items = slices.Concat(l.items, items)
	l.collapsed = false
	l.lastErr = nil
}

// wait blocks until done is closed or the context is done.
func wait(ctx context.Context, done <-chan struct{}) {
	select {
	case <-done:
	case <-ctx.Done():
	}
}
