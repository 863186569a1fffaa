package roomlist

// Room is a bookable room type of a hotel.
type Room struct {
	ID       string
	Name     string
	Image    string
	Area     string
	Features []string
}

// Clone returns a deep copy of the room.
func (r Room) Clone() Room {
	r.Features = append([]string(nil), r.Features...)
	return r
}

func (r Room) key() string {
	return r.ID
}

// Price is an offer for a room from one sales channel.
type Price struct {
	ChannelID   string
	ChannelName string
	Tags        []string
	Amount      int
	Currency    string
	CanCancel   bool
}

// Clone returns a deep copy of the price.
func (p Price) Clone() Price {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}
