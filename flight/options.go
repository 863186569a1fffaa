package flight

import (
	"context"

	"github.com/karupanerura/lazyload"
)

// Option is the interface for the options of the Cache.
type Option[V lazyload.ValueConstraint] interface {
	apply(*Cache[V])
}

type optionFunc[V lazyload.ValueConstraint] func(*Cache[V])

func (f optionFunc[V]) apply(c *Cache[V]) {
	f(c)
}

// WithCloner sets the value cloner to the cache.
// The default value cloner is lazyload.DefaultValueCloner.
func WithCloner[V lazyload.ValueConstraint](cloner lazyload.ValueCloner[V]) Option[V] {
	return optionFunc[V](func(c *Cache[V]) {
		c.cloner = cloner
	})
}

// WithBackgroundContextProvider sets the context provider to the cache.
// Fetches run on the provided context instead of the caller's one, because the
// result is shared by every caller.
// The provider must return a new context for each call.
// The default context provider is context.Background.
func WithBackgroundContextProvider[V lazyload.ValueConstraint](provider func() context.Context) Option[V] {
	return optionFunc[V](func(c *Cache[V]) {
		c.context = provider
	})
}

// WithErrorHandler sets the handler called with the error of each failed fetch.
func WithErrorHandler[V lazyload.ValueConstraint](onError func(error)) Option[V] {
	return optionFunc[V](func(c *Cache[V]) {
		c.onError = onError
	})
}

// WithClock sets the clock to the cache.
// The default clock is lazyload.SystemClock.
func WithClock[V lazyload.ValueConstraint](clock lazyload.Clock) Option[V] {
	return optionFunc[V](func(c *Cache[V]) {
		c.clock = clock
	})
}
