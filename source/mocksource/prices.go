package mocksource

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/karupanerura/lazyload"
	"github.com/karupanerura/lazyload/roomlist"
)

const (
	// DefaultInitialPriceDelay is the default latency of the initial price page.
	DefaultInitialPriceDelay = 800 * time.Millisecond

	// DefaultRemainingPriceDelay is the default latency of the remaining price page.
	DefaultRemainingPriceDelay = 600 * time.Millisecond

	// InitialPageSize is the number of prices in the initial page.
	InitialPageSize = 2

	currency = "¥"
)

// Prices is a source of room prices.
// The initial page holds the two core channels with slightly randomized amounts;
// the remaining page holds two more channels with fixed amounts.
type Prices struct {
	InitialDelay   time.Duration
	RemainingDelay time.Duration

	// Random is the random number generator for the amounts.
	// If nil, it uses system default random generator.
	Random *rand.Rand

	mu sync.Mutex
}

var _ lazyload.PageSource[string, roomlist.Price] = (*Prices)(nil)

// NewPrices creates a price source with the default delays.
func NewPrices() *Prices {
	return &Prices{InitialDelay: DefaultInitialPriceDelay, RemainingDelay: DefaultRemainingPriceDelay}
}

// InitialPage returns the ctrip and meituan prices of the room.
func (s *Prices) InitialPage(ctx context.Context, roomID string) ([]roomlist.Price, error) {
	if err := sleep(ctx, s.InitialDelay); err != nil {
		return nil, err
	}

	return []roomlist.Price{
		{
			ChannelID:   "ctrip",
			ChannelName: "Ctrip Hotels",
			Tags:        []string{"No breakfast", "Free cancellation for a limited time", "Invoice available"},
			Amount:      138 + s.intN(20),
			Currency:    currency,
			CanCancel:   true,
		},
		{
			ChannelID:   "meituan",
			ChannelName: "Meituan Hotels",
			Tags:        []string{"No breakfast", "Non-refundable"},
			Amount:      135 + s.intN(20),
			Currency:    currency,
			CanCancel:   false,
		},
	}, nil
}

// RemainingPage returns the agoda and booking prices of the room.
func (s *Prices) RemainingPage(ctx context.Context, roomID string) ([]roomlist.Price, error) {
	if err := sleep(ctx, s.RemainingDelay); err != nil {
		return nil, err
	}

	return []roomlist.Price{
		{
			ChannelID:   "agoda",
			ChannelName: "Agoda",
			Tags:        []string{"Breakfast included", "Instant confirmation"},
			Amount:      160,
			Currency:    currency,
			CanCancel:   true,
		},
		{
			ChannelID:   "booking",
			ChannelName: "Booking",
			Tags:        []string{"No breakfast"},
			Amount:      155,
			Currency:    currency,
			CanCancel:   false,
		},
	}, nil
}

func (s *Prices) intN(n int) int {
	if s.Random == nil {
		return rand.IntN(n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Random.IntN(n)
}
