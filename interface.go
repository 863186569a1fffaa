package lazyload

import (
	"context"
)

// KeyConstraint is an interface for key constraints.
type KeyConstraint interface {
	comparable
}

// ValueConstraint is an interface for value constraints.
type ValueConstraint interface {
	any
}

// ListSource is an interface for loading a whole data set at once.
type ListSource[V ValueConstraint] interface {
	// List retrieves all items.
	// It may fail and must be callable repeatedly.
	// The order of the returned items is kept by the callers.
	List(context.Context) ([]V, error)
}

// KeyedListSource is an interface for loading a whole data set per key.
type KeyedListSource[K KeyConstraint, V ValueConstraint] interface {
	// List retrieves all items associated with the given key.
	List(context.Context, K) ([]V, error)
}

// PageSource is an interface for loading the detail entries of an item in two pages.
// No ordering is guaranteed between calls for different item identifiers.
type PageSource[K KeyConstraint, V ValueConstraint] interface {
	// InitialPage retrieves the first bounded page of entries for the item.
	InitialPage(context.Context, K) ([]V, error)

	// RemainingPage retrieves the entries following the initial page.
	RemainingPage(context.Context, K) ([]V, error)
}

// VisibilitySignal is an interface for a "this item is now observable" notification.
// Implementations may call the callback more than once, even after the returned
// unsubscribe function was called. Subscribers must guard against that.
type VisibilitySignal interface {
	// Subscribe registers the callback and returns a function to tear the subscription down.
	// The unsubscribe function must be safe to call more than once.
	Subscribe(func()) (unsubscribe func())
}
