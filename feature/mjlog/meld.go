package mjlog

import (
	"fmt"

	"match-canon/feature/canon"
)

// Category bits of a packed call integer.
const (
	callChow           = 0x0004
	callPung           = 0x0008
	callAdditionalKong = 0x0010
)

// DecodeCall decodes the packed call integer m declared by seat who.
func DecodeCall(who, m int) (canon.EventItem, error) {
	if who < 0 || who >= canon.Seats || m < 0 {
		return canon.EventItem{}, fmt.Errorf("call who=%d m=%d: %w", who, m, canon.ErrMalformedToken)
	}

	switch {
	case m&callChow != 0:
		return decodeChow(who, m)
	case m&callPung != 0:
		return decodePung(who, m)
	case m&callAdditionalKong != 0:
		return decodeAdditionalKong(who, m)
	default:
		return decodeKong(who, m)
	}
}

func decodeChow(who, m int) (canon.EventItem, error) {
	t := m >> 10
	base, called := t/3, t%3
	if base >= 21 {
		return canon.EventItem{}, fmt.Errorf("chow m=%d base %d: %w", m, base, canon.ErrMalformedToken)
	}
	start := 9*(base/7) + base%7

	var tiles [3]canon.Instance
	for i := range tiles {
		sel := (m >> (2*i + 3)) & 3
		tiles[i] = canon.NewInstance(canon.Kind(start+i), sel)
	}
	hand := make([]canon.Instance, 0, 2)
	for i, tile := range tiles {
		if i != called {
			hand = append(hand, tile)
		}
	}
	return canon.Chow(who, tiles[called], (who+3)%canon.Seats, hand), nil
}

func decodePung(who, m int) (canon.EventItem, error) {
	t := m >> 10
	kind, called := canon.Kind(t/3), t%3
	if !kind.Valid() {
		return canon.EventItem{}, fmt.Errorf("pung m=%d kind %d: %w", m, kind, canon.ErrMalformedToken)
	}
	unused := (m >> 5) & 3

	tiles := make([]canon.Instance, 0, 3)
	for c := 0; c < 4; c++ {
		if c != unused {
			tiles = append(tiles, canon.NewInstance(kind, c))
		}
	}
	tile := tiles[called]
	hand := append(append([]canon.Instance{}, tiles[:called]...), tiles[called+1:]...)
	return canon.Pung(who, tile, (who+(m&3))%canon.Seats, hand), nil
}

func decodeAdditionalKong(who, m int) (canon.EventItem, error) {
	kind := canon.Kind((m >> 10) / 3)
	if !kind.Valid() {
		return canon.EventItem{}, fmt.Errorf("additional kong m=%d kind %d: %w", m, kind, canon.ErrMalformedToken)
	}
	return canon.AdditionalKong(who, canon.NewInstance(kind, (m>>5)&3)), nil
}

func decodeKong(who, m int) (canon.EventItem, error) {
	tile := canon.Instance(m >> 8)
	if !tile.Valid() {
		return canon.EventItem{}, fmt.Errorf("kong m=%d tile %d: %w", m, tile, canon.ErrMalformedToken)
	}
	offset := m & 3
	kind := tile.Kind()

	if offset == 0 {
		all := make([]canon.Instance, 4)
		for c := range all {
			all[c] = canon.NewInstance(kind, c)
		}
		return canon.ConcealedKong(who, all), nil
	}

	others := make([]canon.Instance, 0, 3)
	for c := 0; c < 4; c++ {
		if inst := canon.NewInstance(kind, c); inst != tile {
			others = append(others, inst)
		}
	}
	return canon.OpenKong(who, tile, (who+offset)%canon.Seats, others), nil
}
