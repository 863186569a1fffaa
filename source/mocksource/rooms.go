package mocksource

import (
	"context"
	"fmt"
	"time"

	"github.com/karupanerura/lazyload"
	"github.com/karupanerura/lazyload/roomlist"
)

const (
	// DefaultRoomCount is the default number of rooms.
	DefaultRoomCount = 10

	// DefaultRoomDelay is the default latency of the room list.
	DefaultRoomDelay = 500 * time.Millisecond

	roomImage = "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=400&q=80"
)

// Rooms is a source of the room list of a hotel.
type Rooms struct {
	Count int
	Delay time.Duration
}

var _ lazyload.ListSource[roomlist.Room] = (*Rooms)(nil)

// NewRooms creates a room source with the default size and delay.
func NewRooms() *Rooms {
	return &Rooms{Count: DefaultRoomCount, Delay: DefaultRoomDelay}
}

// List returns Count rooms with IDs room-0, room-1, ... after Delay.
func (s *Rooms) List(ctx context.Context) ([]roomlist.Room, error) {
	if err := sleep(ctx, s.Delay); err != nil {
		return nil, err
	}

	rooms := make([]roomlist.Room, s.Count)
	for i := range rooms {
		name := "Cozy King Room (Window)"
		if i%2 != 0 {
			name = "Deluxe Twin Room (Non-smoking)"
		}
		rooms[i] = roomlist.Room{
			ID:       fmt.Sprintf("room-%d", i),
			Name:     name,
			Image:    roomImage,
			Area:     "17-25m²",
			Features: []string{"King bed", "Window", "WiFi"},
		}
	}
	return rooms, nil
}
