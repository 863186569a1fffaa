package panicutil

import (
	"errors"

	"github.com/sourcegraph/conc/panics"
)

// ErrGoexit is the error handed to waiters when a guarded function called runtime.Goexit.
var ErrGoexit = errors.New("runtime.Goexit is called")

// Guard runs fetch functions so that waiters sharing their result are always settled.
type Guard struct {
	// OnGoexit is called when the function calls runtime.Goexit.
	// The goroutine keeps exiting after it returns, so it must settle any waiters by itself.
	OnGoexit func()
}

// Call runs the function and tells apart its three ways to end.
// On a normal return it returns the error value returned from the function.
// On a panic it returns the recovered value as *panics.ErrRecovered.
// On runtime.Goexit it calls OnGoexit and never returns.
func (g Guard) Call(f func() error) (err error) {
	var (
		returned  bool
		recovered panics.Recovered
	)
	defer func() {
		if returned || recovered.Value != nil {
			return
		}
		if g.OnGoexit != nil {
			g.OnGoexit()
		}
	}()

	func() {
		defer func() {
			if r := recover(); r != nil {
				recovered = panics.NewRecovered(2, r)
			}
		}()
		err = f()
		returned = true
	}()

	if !returned {
		err = recovered.AsError()
	}
	return
}

// Call runs the function with a zero Guard.
func Call(f func() error) error {
	return Guard{}.Call(f)
}
