package roomlist

import (
	"github.com/karupanerura/lazyload/flight"
	"github.com/karupanerura/lazyload/progressive"
)

// Option is the interface for the options of the List.
type Option interface {
	apply(*List)
}

type optionFunc func(*List)

func (f optionFunc) apply(l *List) {
	f(l)
}

// WithRoomOptions sets the options of the cache holding the room list.
func WithRoomOptions(opts ...flight.Option[Room]) Option {
	return optionFunc(func(l *List) {
		l.roomOpts = append(l.roomOpts, opts...)
	})
}

// WithPriceOptions sets the options of the price loader of every card.
func WithPriceOptions(opts ...progressive.Option[string, Price]) Option {
	return optionFunc(func(l *List) {
		l.priceOpts = append(l.priceOpts, opts...)
	})
}
