package canon

import (
	"encoding/json"
	"fmt"
	"sort"
)

// EventKind is the short discriminant of an EventItem.
type EventKind string

const (
	EventDraw           EventKind = "t"
	EventDiscard        EventKind = "d"
	EventChow           EventKind = "c"
	EventPung           EventKind = "p"
	EventOpenKong       EventKind = "m"
	EventAdditionalKong EventKind = "k"
	EventConcealedKong  EventKind = "a"
)

// EventItem is one step of a game. Which fields are meaningful depends on Kind:
//
//	t  Seat, Tile
//	d  Seat, Tile, Riichi
//	c  Seat, Tile (called), From, Tiles (two from hand)
//	p  Seat, Tile (called), From, Tiles (two from hand)
//	m  Seat, Tile (called), From, Tiles (three from hand)
//	k  Seat, Tile (added), From == Seat
//	a  Seat, From == Seat, Tiles (four from hand)
type EventItem struct {
	Kind   EventKind
	Seat   int
	Tile   Instance
	From   int
	Tiles  []Instance
	Riichi bool
}

// Draw returns a self-draw event.
func Draw(seat int, tile Instance) EventItem {
	return EventItem{Kind: EventDraw, Seat: seat, Tile: tile}
}

// Discard returns a discard event.
func Discard(seat int, tile Instance, riichi bool) EventItem {
	return EventItem{Kind: EventDiscard, Seat: seat, Tile: tile, Riichi: riichi}
}

// Chow returns a sequence call on tile discarded by from.
func Chow(seat int, tile Instance, from int, hand []Instance) EventItem {
	return EventItem{Kind: EventChow, Seat: seat, Tile: tile, From: from, Tiles: sortedCopy(hand)}
}

// Pung returns a triplet call on tile discarded by from.
func Pung(seat int, tile Instance, from int, hand []Instance) EventItem {
	return EventItem{Kind: EventPung, Seat: seat, Tile: tile, From: from, Tiles: sortedCopy(hand)}
}

// OpenKong returns a quad call on tile discarded by from.
func OpenKong(seat int, tile Instance, from int, hand []Instance) EventItem {
	return EventItem{Kind: EventOpenKong, Seat: seat, Tile: tile, From: from, Tiles: sortedCopy(hand)}
}

// AdditionalKong returns the upgrade of an existing pung with tile.
func AdditionalKong(seat int, tile Instance) EventItem {
	return EventItem{Kind: EventAdditionalKong, Seat: seat, Tile: tile, From: seat}
}

// ConcealedKong returns a self-declared quad built from four hand tiles.
func ConcealedKong(seat int, hand []Instance) EventItem {
	return EventItem{Kind: EventConcealedKong, Seat: seat, From: seat, Tiles: sortedCopy(hand)}
}

// IsMeld reports whether the event is one of the call variants.
func (e EventItem) IsMeld() bool {
	switch e.Kind {
	case EventChow, EventPung, EventOpenKong, EventAdditionalKong, EventConcealedKong:
		return true
	default:
		return false
	}
}

// IsKong reports whether the event declares a kong of any kind.
func (e EventItem) IsKong() bool {
	return e.Kind == EventOpenKong || e.Kind == EventAdditionalKong || e.Kind == EventConcealedKong
}

// Removed returns the instances that leave the seat's concealed hand.
func (e EventItem) Removed() []Instance {
	switch e.Kind {
	case EventDiscard, EventAdditionalKong:
		return []Instance{e.Tile}
	case EventChow, EventPung, EventOpenKong, EventConcealedKong:
		return e.Tiles
	default:
		return nil
	}
}

func (e EventItem) String() string {
	switch e.Kind {
	case EventDraw:
		return fmt.Sprintf("seat %d draws %s", e.Seat, e.Tile)
	case EventDiscard:
		if e.Riichi {
			return fmt.Sprintf("seat %d discards %s (riichi)", e.Seat, e.Tile)
		}
		return fmt.Sprintf("seat %d discards %s", e.Seat, e.Tile)
	case EventConcealedKong:
		return fmt.Sprintf("seat %d concealed kong %v", e.Seat, e.Tiles)
	case EventAdditionalKong:
		return fmt.Sprintf("seat %d additional kong %s", e.Seat, e.Tile)
	default:
		return fmt.Sprintf("seat %d %s %s from %d with %v", e.Seat, e.Kind, e.Tile, e.From, e.Tiles)
	}
}

type eventJSON struct {
	K        EventKind  `json:"k"`
	P        int        `json:"p"`
	T        *Instance  `json:"t,omitempty"`
	From     *int       `json:"from,omitempty"`
	Tiles    []Instance `json:"tiles,omitempty"`
	IsRiichi bool       `json:"isRiichi,omitempty"`
}

// MarshalJSON emits only the fields the event kind carries.
func (e EventItem) MarshalJSON() ([]byte, error) {
	out := eventJSON{K: e.Kind, P: e.Seat}
	tile, from := e.Tile, e.From
	switch e.Kind {
	case EventDraw:
		out.T = &tile
	case EventDiscard:
		out.T = &tile
		out.IsRiichi = e.Riichi
	case EventChow, EventPung, EventOpenKong:
		out.T, out.From, out.Tiles = &tile, &from, e.Tiles
	case EventAdditionalKong:
		out.T, out.From = &tile, &from
	case EventConcealedKong:
		out.From, out.Tiles = &from, e.Tiles
	default:
		return nil, fmt.Errorf("unknown event kind %q", e.Kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the layout produced by MarshalJSON.
func (e *EventItem) UnmarshalJSON(data []byte) error {
	var in eventJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*e = EventItem{Kind: in.K, Seat: in.P, Tiles: in.Tiles, Riichi: in.IsRiichi}
	if in.T != nil {
		e.Tile = *in.T
	}
	if in.From != nil {
		e.From = *in.From
	}
	return nil
}

func sortedCopy(tiles []Instance) []Instance {
	out := make([]Instance, len(tiles))
	copy(out, tiles)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
