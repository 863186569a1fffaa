package roomlist

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/karupanerura/lazyload"
	"github.com/karupanerura/lazyload/flight"
	"github.com/karupanerura/lazyload/internal/iterutil"
	"github.com/karupanerura/lazyload/progressive"
	"github.com/karupanerura/lazyload/visibility"
)

var ErrUnknownRoom = errors.New("roomlist: unknown room")

// Card is a rendered room together with the loader of its prices.
type Card struct {
	Room   Room
	Prices *progressive.Loader[string, Price]
}

// Layout places cards one below another.
type Layout struct {
	// Top is the position of the first card.
	Top float64

	// CardHeight is the height of every card.
	CardHeight float64

	// Gap is the space between two cards.
	Gap float64
}

// Region returns the region of the card at the position.
func (l Layout) Region(position int) visibility.Region {
	return visibility.Region{
		Top:    l.Top + float64(position)*(l.CardHeight+l.Gap),
		Height: l.CardHeight,
	}
}

// List is the room list of a hotel page.
// Each card lazily loads its prices when it scrolls into the attached viewport.
// It is safe for concurrent use.
type List struct {
	prices    lazyload.PageSource[string, Price]
	roomOpts  []flight.Option[Room]
	priceOpts []progressive.Option[string, Price]
	rooms     *flight.Cache[Room]

	mu       sync.Mutex
	order    []string
	cards    map[string]*Card
	viewport *visibility.Viewport
	layout   Layout
}

// New creates a new List.
func New(rooms lazyload.ListSource[Room], prices lazyload.PageSource[string, Price], opts ...Option) *List {
	l := &List{
		prices: prices,
		cards:  map[string]*Card{},
	}
	for _, o := range opts {
		o.apply(l)
	}
	l.rooms = flight.New(rooms, l.roomOpts...)
	return l
}

// Load fetches the room list once and syncs the cards with it.
func (l *List) Load(ctx context.Context) error {
	rooms, err := l.rooms.EnsureLoaded(ctx)
	if err != nil {
		return err
	}
	l.Sync(rooms)
	return nil
}

// Sync makes the cards match the rooms, in order.
// Cards of new rooms get a fresh price loader; cards of removed rooms are disposed.
// Loaders are never carried over a removal, so a room that comes back loads again.
func (l *List) Sync(rooms []Room) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rooms = slices.Collect(iterutil.UniqBy(slices.Values(rooms), Room.key))
	order := slices.Collect(iterutil.Map(slices.Values(rooms), Room.key))
	keep := make(map[string]struct{}, len(order))
	for _, id := range order {
		keep[id] = struct{}{}
	}

	for id, card := range l.cards {
		if _, ok := keep[id]; ok {
			continue
		}
		card.Prices.Dispose()
		delete(l.cards, id)
		if l.viewport != nil {
			l.viewport.Remove(id)
		}
	}

	var added []*Card
	for _, room := range rooms {
		if _, ok := l.cards[room.ID]; ok {
			continue
		}
		card := &Card{
			Room:   room,
			Prices: progressive.New(room.ID, l.prices, l.priceOpts...),
		}
		l.cards[room.ID] = card
		added = append(added, card)
	}
	l.order = order

	if l.viewport != nil {
		for _, card := range added {
			card.Prices.Observe(l.viewport.Signal(card.Room.ID))
		}
		l.placeLocked()
	}
}

// Attach places the cards into the viewport and starts observing their visibility.
// Cards already visible start loading right away.
func (l *List) Attach(viewport *visibility.Viewport, layout Layout) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.viewport = viewport
	l.layout = layout
	for _, id := range l.order {
		l.cards[id].Prices.Observe(viewport.Signal(id))
	}
	l.placeLocked()
}

func (l *List) placeLocked() {
	for i, id := range l.order {
		l.viewport.Place(id, l.layout.Region(i))
	}
}

// Card returns the card of the room.
func (l *List) Card(id string) (*Card, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	card, ok := l.cards[id]
	if !ok {
		return nil, ErrUnknownRoom
	}
	return card, nil
}

// Cards returns the cards in list order.
func (l *List) Cards() []*Card {
	l.mu.Lock()
	defer l.mu.Unlock()

	cards := make([]*Card, len(l.order))
	for i, id := range l.order {
		cards[i] = l.cards[id]
	}
	return cards
}

// Expand toggles the full price list of the room. See progressive.Loader.Expand.
func (l *List) Expand(ctx context.Context, id string) (bool, error) {
	card, err := l.Card(id)
	if err != nil {
		return false, err
	}
	return card.Prices.Expand(ctx), nil
}

// Wait blocks until no card has a fetch in flight.
func (l *List) Wait() {
	var wg conc.WaitGroup
	for _, card := range l.Cards() {
		wg.Go(card.Prices.Wait)
	}
	wg.Wait()
}

// Dispose disposes every card.
func (l *List) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for id, card := range l.cards {
		card.Prices.Dispose()
		if l.viewport != nil {
			l.viewport.Remove(id)
		}
	}
	l.cards = map[string]*Card{}
	l.order = nil
}
