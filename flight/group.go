package flight

import (
	"context"
	"sync"

	"github.com/karupanerura/lazyload"
	"github.com/karupanerura/lazyload/internal/keyhash"
)

// DefaultBucketsSize is the default number of buckets in a Group.
var DefaultBucketsSize = 64

type bucket[K lazyload.KeyConstraint, V lazyload.ValueConstraint] struct {
	mu sync.Mutex
	m  map[K]*Cache[V]
}

// Group is a set of single-flight caches, one per key.
// Caches are created lazily on the first request for a key.
// It is safe for concurrent use.
type Group[K lazyload.KeyConstraint, V lazyload.ValueConstraint] struct {
	source  lazyload.KeyedListSource[K, V]
	opts    []Option[V]
	hashKey func(K) int
	buckets []*bucket[K, V]
}

// NewGroup creates a new Group instance.
// The options are applied to every cache in the group.
// Keys are distributed across buckets by hash; key types that cannot be hashed share a single bucket.
func NewGroup[K lazyload.KeyConstraint, V lazyload.ValueConstraint](source lazyload.KeyedListSource[K, V], opts ...Option[V]) *Group[K, V] {
	g := &Group[K, V]{
		source:  source,
		opts:    opts,
		hashKey: keyhash.Func[K](),
	}

	size := DefaultBucketsSize
	if g.hashKey == nil || size < 1 {
		size = 1
	}
	g.buckets = make([]*bucket[K, V], size)
	for i := range g.buckets {
		g.buckets[i] = &bucket[K, V]{m: map[K]*Cache[V]{}}
	}
	return g
}

// resolveBucket returns the bucket that corresponds to the given key.
func (g *Group[K, V]) resolveBucket(key K) *bucket[K, V] {
	if len(g.buckets) == 1 {
		return g.buckets[0]
	}
	return g.buckets[keyhash.Bucket(g.hashKey(key), len(g.buckets))]
}

// cache returns the cache for the key, creating it if needed.
func (g *Group[K, V]) cache(key K) *Cache[V] {
	b := g.resolveBucket(key)
	b.mu.Lock()
	defer b.mu.Unlock()

	if c, ok := b.m[key]; ok {
		return c
	}
	c := New[V](keyedSource[K, V]{source: g.source, key: key}, g.opts...)
	b.m[key] = c
	return c
}

// Request returns the flight that delivers the data for the key.
// See Cache.Request.
func (g *Group[K, V]) Request(key K) *Flight[V] {
	return g.cache(key).Request()
}

// EnsureLoaded returns the data for the key, fetching it at most once across all callers.
// See Cache.EnsureLoaded.
func (g *Group[K, V]) EnsureLoaded(ctx context.Context, key K) ([]V, error) {
	return g.cache(key).EnsureLoaded(ctx)
}

// State returns a snapshot of the cache for the key.
// A key never requested reports the idle status.
func (g *Group[K, V]) State(key K) State[V] {
	b := g.resolveBucket(key)
	b.mu.Lock()
	c, ok := b.m[key]
	b.mu.Unlock()

	if !ok {
		return State[V]{Status: lazyload.StatusIdle}
	}
	return c.State()
}

// Forget drops the cache for the key.
// A fetch in flight for the key is detached; see Cache.Reset.
func (g *Group[K, V]) Forget(key K) {
	b := g.resolveBucket(key)
	b.mu.Lock()
	c, ok := b.m[key]
	delete(b.m, key)
	b.mu.Unlock()

	if ok {
		c.Reset()
	}
}

// keyedSource binds a key to a lazyload.KeyedListSource.
type keyedSource[K lazyload.KeyConstraint, V lazyload.ValueConstraint] struct {
	source lazyload.KeyedListSource[K, V]
	key    K
}

func (s keyedSource[K, V]) List(ctx context.Context) ([]V, error) {
	return s.source.List(ctx, s.key)
}
