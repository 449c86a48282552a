package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// seqHand returns 13 consecutive instances starting at first.
func seqHand(first Instance) []Instance {
	out := make([]Instance, DealtTiles)
	for i := range out {
		out[i] = first + Instance(i)
	}
	return out
}

func conservationGame() Game {
	return Game{
		Dora: []Instance{135},
		DealtTiles: [Seats][]Instance{
			seqHand(0), seqHand(13), seqHand(26), seqHand(39),
		},
	}
}

func TestCheckTileConservation_Valid(t *testing.T) {
	g := conservationGame()
	g.Events = []EventItem{
		Draw(0, 100),
		Discard(0, 12, false),
		Pung(1, 12, 0, []Instance{13, 14}),
		Discard(1, 15, false),
		Draw(2, 101),
		Discard(2, 101, true),
	}

	assert.NoError(t, CheckTileConservation(g))
}

func TestCheckTileConservation_Violations(t *testing.T) {
	tests := []struct {
		name   string
		events []EventItem
	}{
		{name: "draw of a dealt tile", events: []EventItem{Draw(0, 20)}},
		{name: "draw of the dora indicator", events: []EventItem{Draw(0, 135)}},
		{name: "discard not in hand", events: []EventItem{Draw(0, 100), Discard(0, 50, false)}},
		{name: "discard without draw", events: []EventItem{Discard(0, 0, false)}},
		{name: "call on a stale tile", events: []EventItem{
			Draw(0, 100), Discard(0, 12, false), Pung(1, 11, 0, []Instance{13, 14}),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := conservationGame()
			g.Events = tt.events
			assert.ErrorIs(t, CheckTileConservation(g), ErrInstanceMismatch)
		})
	}
}

func TestCheckTileConservation_ShortDeal(t *testing.T) {
	g := conservationGame()
	g.DealtTiles[3] = g.DealtTiles[3][:12]
	assert.ErrorIs(t, CheckTileConservation(g), ErrInstanceMismatch)
}

func TestGame_DropUnconfirmedRiichi(t *testing.T) {
	ron := GameResult{Kind: ResultWin, Winner: 2, From: SeatRef(1)}
	tsumo := GameResult{Kind: ResultWin, Winner: 1}

	tests := []struct {
		name    string
		results []GameResult
		want    bool
	}{
		{name: "ron on the riichi tile", results: []GameResult{ron}, want: false},
		{name: "self draw keeps flag", results: []GameResult{tsumo}, want: true},
		{name: "exhaustive draw keeps flag", results: []GameResult{{Kind: ResultDraw, Reason: DrawExhaustive}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Game{
				Events:  []EventItem{Draw(1, 0), Discard(1, 0, true)},
				Results: tt.results,
			}
			g.DropUnconfirmedRiichi()
			assert.Equal(t, tt.want, g.Events[1].Riichi)
		})
	}
}

func TestGame_Dealer(t *testing.T) {
	assert.Equal(t, 0, (&Game{Round: 4}).Dealer())
	assert.Equal(t, 3, (&Game{Round: 7}).Dealer())
}
