// Package flight provides a single-flight fetch cache.
//
// A Cache wraps a data source that returns a whole data set. However many
// goroutines ask for the data, at most one fetch is in flight at a time, every
// caller observes the same result, and once a fetch succeeds the data is kept
// for good without ever fetching again. A failed fetch leaves the cache
// retryable: the next request starts exactly one new fetch.
//
// Group generalizes Cache to a set of keys, holding one Cache per key.
//
// The Cache can be configured with options:
//   - WithCloner: Sets the value cloner used to hand each caller its own copy of the data
//   - WithBackgroundContextProvider: Sets the context provider for fetches
//   - WithErrorHandler: Sets a handler called once for each failed fetch
//   - WithClock: Sets the clock used to timestamp state transitions
package flight
