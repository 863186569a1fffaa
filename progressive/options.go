package progressive

import (
	"context"

	"github.com/karupanerura/lazyload"
)

// DefaultPageSize is the default size of the initial page.
var DefaultPageSize = 2

// Option is the interface for the options of the Loader.
type Option[K lazyload.KeyConstraint, V lazyload.ValueConstraint] interface {
	apply(*Loader[K, V])
}

type optionFunc[K lazyload.KeyConstraint, V lazyload.ValueConstraint] func(*Loader[K, V])

func (f optionFunc[K, V]) apply(l *Loader[K, V]) {
	f(l)
}

// WithPageSize sets the size of the initial page.
// The page size must be a natural number.
func WithPageSize[K lazyload.KeyConstraint, V lazyload.ValueConstraint](pageSize int) Option[K, V] {
	if pageSize <= 0 {
		panic("pageSize must be natural number")
	}
	return optionFunc[K, V](func(l *Loader[K, V]) {
		l.pageSize = pageSize
	})
}

// WithCloner sets the value cloner used for snapshots.
// The default value cloner is lazyload.DefaultValueCloner.
func WithCloner[K lazyload.KeyConstraint, V lazyload.ValueConstraint](cloner lazyload.ValueCloner[V]) Option[K, V] {
	return optionFunc[K, V](func(l *Loader[K, V]) {
		l.cloner = cloner
	})
}

// WithErrorHandler sets the handler called with the error of each failed fetch.
// Errors of fetches that finish after Dispose are not reported.
func WithErrorHandler[K lazyload.KeyConstraint, V lazyload.ValueConstraint](onError func(error)) Option[K, V] {
	return optionFunc[K, V](func(l *Loader[K, V]) {
		l.onError = onError
	})
}

// WithBackgroundContextProvider sets the context provider to the loader.
// The provider must return a new context for each call.
// The default context provider is context.Background.
func WithBackgroundContextProvider[K lazyload.KeyConstraint, V lazyload.ValueConstraint](provider func() context.Context) Option[K, V] {
	return optionFunc[K, V](func(l *Loader[K, V]) {
		l.context = provider
	})
}
