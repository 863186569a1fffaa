package source

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/karupanerura/lazyload"
)

// ListFunc is a function that implements the lazyload.ListSource interface.
type ListFunc[V lazyload.ValueConstraint] func(context.Context) ([]V, error)

var _ lazyload.ListSource[struct{}] = (ListFunc[struct{}])(nil)

// List calls the function.
func (f ListFunc[V]) List(ctx context.Context) ([]V, error) {
	return f(ctx)
}

// KeyedListFunc is a function that implements the lazyload.KeyedListSource interface.
type KeyedListFunc[K lazyload.KeyConstraint, V lazyload.ValueConstraint] func(context.Context, K) ([]V, error)

var _ lazyload.KeyedListSource[uint8, struct{}] = (KeyedListFunc[uint8, struct{}])(nil)

// List calls the function.
func (f KeyedListFunc[K, V]) List(ctx context.Context, key K) ([]V, error) {
	return f(ctx, key)
}

// FunctionsPageSource is a page source that uses functions to load the pages.
type FunctionsPageSource[K lazyload.KeyConstraint, V lazyload.ValueConstraint] struct {
	// InitialPageFunc is a function that loads the first bounded page of an item.
	InitialPageFunc func(context.Context, K) ([]V, error)

	// RemainingPageFunc is a function that loads the entries following the initial page.
	RemainingPageFunc func(context.Context, K) ([]V, error)
}

var _ lazyload.PageSource[uint8, struct{}] = (*FunctionsPageSource[uint8, struct{}])(nil)

// InitialPage calls the InitialPageFunc function.
func (s *FunctionsPageSource[K, V]) InitialPage(ctx context.Context, key K) ([]V, error) {
	return s.InitialPageFunc(ctx, key)
}

// RemainingPage calls the RemainingPageFunc function.
func (s *FunctionsPageSource[K, V]) RemainingPage(ctx context.Context, key K) ([]V, error) {
	return s.RemainingPageFunc(ctx, key)
}

// LintPageSource is a page source that is used for linting purposes.
// It validates the behavior of the wrapped source and panics on contract violations.
type LintPageSource[K lazyload.KeyConstraint, V lazyload.ValueConstraint] struct {
	Source lazyload.PageSource[K, V]

	// PageSize is the maximum number of entries in the initial page.
	PageSize int
}

var _ lazyload.PageSource[uint8, struct{}] = (*LintPageSource[uint8, struct{}])(nil)

// InitialPage retrieves the initial page from the source.
// It checks that the page is not larger than PageSize.
func (s *LintPageSource[K, V]) InitialPage(ctx context.Context, key K) ([]V, error) {
	entries, err := s.Source.InitialPage(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(entries) > s.PageSize {
		panic(fmt.Sprintf("initial page has %d entries over the page size %d", len(entries), s.PageSize))
	}
	return entries, nil
}

// RemainingPage retrieves the remaining page from the source.
func (s *LintPageSource[K, V]) RemainingPage(ctx context.Context, key K) ([]V, error) {
	return s.Source.RemainingPage(ctx, key)
}

// CountingListSource is a list source that counts the calls to the wrapped source.
type CountingListSource[V lazyload.ValueConstraint] struct {
	Source lazyload.ListSource[V]

	calls atomic.Int64
}

var _ lazyload.ListSource[struct{}] = (*CountingListSource[struct{}])(nil)

// List counts the call and calls the wrapped source.
func (s *CountingListSource[V]) List(ctx context.Context) ([]V, error) {
	s.calls.Add(1)
	return s.Source.List(ctx)
}

// Calls returns the number of calls so far.
func (s *CountingListSource[V]) Calls() int {
	return int(s.calls.Load())
}

// CountingPageSource is a page source that counts the calls to the wrapped source.
type CountingPageSource[K lazyload.KeyConstraint, V lazyload.ValueConstraint] struct {
	Source lazyload.PageSource[K, V]

	initialCalls   atomic.Int64
	remainingCalls atomic.Int64
}

var _ lazyload.PageSource[uint8, struct{}] = (*CountingPageSource[uint8, struct{}])(nil)

// InitialPage counts the call and calls the wrapped source.
func (s *CountingPageSource[K, V]) InitialPage(ctx context.Context, key K) ([]V, error) {
	s.initialCalls.Add(1)
	return s.Source.InitialPage(ctx, key)
}

// RemainingPage counts the call and calls the wrapped source.
func (s *CountingPageSource[K, V]) RemainingPage(ctx context.Context, key K) ([]V, error) {
	s.remainingCalls.Add(1)
	return s.Source.RemainingPage(ctx, key)
}

// InitialCalls returns the number of InitialPage calls so far.
func (s *CountingPageSource[K, V]) InitialCalls() int {
	return int(s.initialCalls.Load())
}

// RemainingCalls returns the number of RemainingPage calls so far.
func (s *CountingPageSource[K, V]) RemainingCalls() int {
	return int(s.remainingCalls.Load())
}
