package canon

import "fmt"

// CheckTileConservation replays a game's events and verifies that no instance is used
// twice, that every tile leaving a hand was held, that calls reference the preceding
// discard and that each seat holds 13 tiles (melds counting three) after every discard.
func CheckTileConservation(g Game) error {
	used := make(map[Instance]bool, InstanceCount)
	claim := func(t Instance, what string) error {
		if !t.Valid() {
			return fmt.Errorf("%s %d out of range: %w", what, int(t), ErrInstanceMismatch)
		}
		if used[t] {
			return fmt.Errorf("%s %s used twice: %w", what, t, ErrInstanceMismatch)
		}
		used[t] = true
		return nil
	}

	for _, t := range g.Dora {
		if err := claim(t, "dora"); err != nil {
			return err
		}
	}
	for _, t := range g.HiddenDora {
		if err := claim(t, "hidden dora"); err != nil {
			return err
		}
	}

	var hands [Seats]map[Instance]bool
	var melds [Seats]int
	for seat, dealt := range g.DealtTiles {
		if len(dealt) != DealtTiles {
			return fmt.Errorf("seat %d dealt %d tiles: %w", seat, len(dealt), ErrInstanceMismatch)
		}
		hands[seat] = make(map[Instance]bool, DealtTiles+1)
		for _, t := range dealt {
			if err := claim(t, "dealt tile"); err != nil {
				return err
			}
			hands[seat][t] = true
		}
	}

	lastDiscard := Instance(-1)
	for i, e := range g.Events {
		if e.Seat < 0 || e.Seat >= Seats {
			return fmt.Errorf("event %d: seat %d: %w", i, e.Seat, ErrInstanceMismatch)
		}
		hand := hands[e.Seat]
		for _, t := range e.Removed() {
			if !hand[t] {
				return fmt.Errorf("event %d (%s): %s not in hand: %w", i, e, t, ErrInstanceMismatch)
			}
			delete(hand, t)
		}

		switch e.Kind {
		case EventDraw:
			if err := claim(e.Tile, "drawn tile"); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
			hand[e.Tile] = true
		case EventDiscard:
			if got := len(hand) + 3*melds[e.Seat]; got != DealtTiles {
				return fmt.Errorf("event %d: seat %d holds %d tiles after discard: %w", i, e.Seat, got, ErrInstanceMismatch)
			}
			lastDiscard = e.Tile
		case EventChow, EventPung, EventOpenKong:
			if e.Tile != lastDiscard {
				return fmt.Errorf("event %d: called %s is not the last discard: %w", i, e.Tile, ErrInstanceMismatch)
			}
			lastDiscard = -1
			melds[e.Seat]++
		case EventConcealedKong:
			melds[e.Seat]++
		}
	}
	return nil
}
