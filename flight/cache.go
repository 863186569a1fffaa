package flight

import (
	"context"
	"sync"
	"time"

	"github.com/karupanerura/lazyload"
	"github.com/karupanerura/lazyload/internal/panicutil"
)

const opList = "list"

// Cache is a single-flight fetch cache over a lazyload.ListSource.
// It is safe for concurrent use.
type Cache[V lazyload.ValueConstraint] struct {
	source  lazyload.ListSource[V]
	cloner  lazyload.ValueCloner[V]
	clock   lazyload.Clock
	context func() context.Context
	onError func(error)

	mu       sync.Mutex
	status   lazyload.Status
	data     []V
	ready    *Flight[V]
	inFlight *Flight[V]
	lastErr  error
	loadedAt time.Time
	failedAt time.Time
	fetches  int
}

// State is a read-only snapshot of a Cache.
type State[V lazyload.ValueConstraint] struct {
	// Status is the status of the cache.
	Status lazyload.Status

	// Data is a copy of the loaded items. It is empty unless Status is StatusReady.
	Data []V

	// LastError is the error of the last fetch. It is set only when Status is StatusFailed.
	LastError error

	// LoadedAt is the time the data was loaded.
	LoadedAt time.Time

	// FailedAt is the time the last fetch failed.
	FailedAt time.Time

	// Fetches is the number of fetches issued to the source.
	Fetches int
}

// New creates a new Cache instance.
func New[V lazyload.ValueConstraint](source lazyload.ListSource[V], opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		source:  source,
		cloner:  nil,
		clock:   lazyload.SystemClock,
		context: context.Background,
	}
	for _, o := range opts {
		o.apply(c)
	}
	if c.cloner == nil {
		c.cloner = lazyload.DefaultValueCloner[V]()
	}
	return c
}

// Request returns the flight that delivers the data, starting a fetch only when needed.
// It never blocks on the fetch.
//
// If the data is ready, it returns an already settled flight.
// If a fetch is in flight, it returns the flight of that fetch.
// Otherwise it starts a new fetch and returns its flight.
func (c *Cache[V]) Request() *Flight[V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.status {
	case lazyload.StatusReady:
		return c.ready
	case lazyload.StatusLoading:
		return c.inFlight
	}

	f := newFlight(c.cloner)
	c.status = lazyload.StatusLoading
	c.inFlight = f
	c.lastErr = nil
	c.fetches++
	go c.load(c.context(), f)
	return f
}

// EnsureLoaded returns the data, fetching it at most once across all callers.
// If the context is done before the data arrives, it returns the context error;
// the fetch itself is never canceled.
func (c *Cache[V]) EnsureLoaded(ctx context.Context) ([]V, error) {
	return c.Request().Wait(ctx)
}

// State returns a snapshot of the cache.
func (c *Cache[V]) State() State[V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State[V]{
		Status:    c.status,
		Data:      lazyload.CloneSlice(c.cloner, c.data),
		LastError: c.lastErr,
		LoadedAt:  c.loadedAt,
		FailedAt:  c.failedAt,
		Fetches:   c.fetches,
	}
}

// Reset tears the cache down to the idle status, dropping the data.
// A fetch in flight is detached: its callers still receive its result,
// but the result is not stored in the cache.
func (c *Cache[V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = lazyload.StatusIdle
	c.data = nil
	c.ready = nil
	c.inFlight = nil
	c.lastErr = nil
}

// load fetches the data from the source and settles the flight.
func (c *Cache[V]) load(ctx context.Context, f *Flight[V]) {
	g := panicutil.Guard{
		OnGoexit: func() {
			c.settle(f, nil, lazyload.NewFetchError(opList, panicutil.ErrGoexit))
		},
	}

	var data []V
	err := g.Call(func() (err error) {
		data, err = c.source.List(ctx)
		return
	})
	if err == nil && len(data) == 0 {
		err = lazyload.ErrEmptyResult
	}
	c.settle(f, data, lazyload.NewFetchError(opList, err))
}

// settle applies the result to the cache unless the flight was detached,
// reports a failure to the error handler, then wakes the waiters.
// The waiters are woken even if the error handler does not return.
func (c *Cache[V]) settle(f *Flight[V], data []V, err error) {
	c.mu.Lock()
	if c.inFlight == f {
		c.inFlight = nil
		if err != nil {
			c.status = lazyload.StatusFailed
			c.lastErr = err
			c.failedAt = c.clock.Now()
		} else {
			c.status = lazyload.StatusReady
			c.data = data
			c.ready = f
			c.loadedAt = c.clock.Now()
		}
	}
	c.mu.Unlock()

	if err != nil {
		data = nil
	}
	defer f.settle(data, err)

	if err != nil && c.onError != nil {
		c.onError(err)
	}
}
