// Package mocksource provides the canned backend of the quiz and hotel demos.
//
// Every source answers after a fixed delay and never fails on its own; the
// delays honor context cancellation. Set the delays to zero in tests.
package mocksource
