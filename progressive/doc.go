// Package progressive provides a visibility-triggered progressive loader.
//
// A Loader belongs to one rendered item. It defers the detail fetch of the item
// until the item is likely to be seen, fetches a small initial page once the
// visibility signal fires, and fetches the rest only when asked to expand.
// Every trigger fetches at most once: a signal that fires again, or an expand
// request while an expansion is in flight, is a no-op.
//
// Phases move Unobserved -> InitialLoading -> Partial -> Expanding -> Full.
// Once Full, expanding and collapsing only toggle how many items are displayed
// and never fetch again.
//
// Fetch errors never reach the caller. They are turned into state (a failed
// initial page leaves the loader Unobserved with no items, a failed expansion
// returns it to Partial) and handed to the handler set by WithErrorHandler.
package progressive
