package mjson

import (
	"testing"

	"match-canon/feature/canon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seatOf parses raw gain and discard tokens for one seat.
func seatOf(t *testing.T, seat int, gains, discards []any) seatLog {
	t.Helper()
	var s seatLog
	for _, v := range gains {
		g, err := parseGain(seat, v)
		require.NoError(t, err)
		s.gains = append(s.gains, g)
	}
	for _, v := range discards {
		d, err := parseDiscard(v)
		require.NoError(t, err)
		s.discards = append(s.discards, d)
	}
	return s
}

func runReplay(t *testing.T, hands [canon.Seats][]int, seats [canon.Seats]seatLog) (canon.Game, error) {
	t.Helper()
	r := newReplay(NewRepository(), 0, seats)
	dealt, err := r.deal(hands)
	if err != nil {
		return canon.Game{}, err
	}
	events, err := r.run()
	if err != nil {
		return canon.Game{}, err
	}
	return canon.Game{DealtTiles: dealt, Events: events}, nil
}

func TestReplay_CallsAndKongs(t *testing.T) {
	hands := [canon.Seats][]int{
		{11, 11, 11, 12, 13, 14, 16, 17, 18, 19, 21, 22, 23},
		{41, 41, 41, 42, 43, 44, 45, 14, 16, 31, 32, 33, 34},
		{31, 31, 31, 24, 24, 24, 26, 27, 28, 29, 36, 37, 38},
		{26, 26, 25, 25, 27, 28, 29, 36, 37, 38, 39, 33, 34},
	}
	seats := [canon.Seats]seatLog{
		seatOf(t, 0, []any{11.0, 15.0, 26.0}, []any{"111111a11", 60.0, 60.0}),
		seatOf(t, 1, []any{"c151416"}, []any{31.0}),
		seatOf(t, 2, []any{"m31313131", 24.0}, []any{0.0, 26.0}),
		seatOf(t, 3, []any{"p262626"}, []any{39.0}),
	}

	g, err := runReplay(t, hands, seats)
	require.NoError(t, err)

	assert.Equal(t, []canon.EventItem{
		canon.Draw(0, 3),
		canon.ConcealedKong(0, []canon.Instance{0, 1, 2, 3}),
		canon.Draw(0, 17),
		canon.Discard(0, 17, false),
		canon.Chow(1, 17, 0, []canon.Instance{13, 21}),
		canon.Discard(1, 72, false),
		canon.OpenKong(2, 72, 1, []canon.Instance{73, 74, 75}),
		canon.Draw(2, 51),
		canon.Discard(2, 56, false),
		canon.Pung(3, 56, 2, []canon.Instance{57, 58}),
		canon.Discard(3, 104, false),
		canon.Draw(0, 59),
		canon.Discard(0, 59, false),
	}, g.Events)
	assert.NoError(t, canon.CheckTileConservation(g))
}

func TestReplay_RobbedAdditionalKong(t *testing.T) {
	hands := [canon.Seats][]int{
		{41, 11, 12, 13, 14, 16, 17, 18, 19, 21, 22, 23, 24},
		{41, 41, 31, 32, 33, 34, 35, 36, 37, 38, 39, 43, 44},
		{11, 12, 13, 14, 15, 16, 17, 18, 19, 21, 22, 23, 24},
		{26, 27, 28, 29, 11, 12, 13, 14, 16, 17, 18, 19, 21},
	}
	seats := [canon.Seats]seatLog{
		seatOf(t, 0, []any{42.0, 35.0}, []any{41.0, 60.0}),
		seatOf(t, 1, []any{"p414141", 41.0}, []any{31.0, "414141k41"}),
		seatOf(t, 2, []any{33.0}, []any{60.0}),
		seatOf(t, 3, []any{34.0}, []any{60.0}),
	}

	g, err := runReplay(t, hands, seats)
	require.NoError(t, err)
	require.Len(t, g.Events, 12)

	assert.Equal(t, canon.Discard(0, 108, false), g.Events[1])
	assert.Equal(t, canon.Pung(1, 108, 0, []canon.Instance{109, 110}), g.Events[2])
	assert.Equal(t, canon.Draw(1, 111), g.Events[10])
	assert.Equal(t, canon.AdditionalKong(1, 111), g.Events[11], "game ends on the robbed kong")
	assert.NoError(t, canon.CheckTileConservation(g))
}

func TestReplay_PlainFiveFallsBackToRed(t *testing.T) {
	hands := [canon.Seats][]int{
		{11, 12, 13, 14, 16, 17, 18, 19, 21, 22, 23, 24, 26},
		{15, 15, 15, 31, 32, 33, 34, 35, 36, 37, 38, 39, 41},
		{31, 32, 33, 34, 35, 36, 37, 38, 39, 41, 42, 43, 44},
		{31, 32, 33, 34, 35, 36, 37, 38, 39, 41, 42, 43, 44},
	}
	seats := [canon.Seats]seatLog{
		seatOf(t, 0, []any{15.0}, []any{15.0}),
		{}, {}, {},
	}

	g, err := runReplay(t, hands, seats)
	require.NoError(t, err)
	assert.Equal(t, []canon.EventItem{
		canon.Draw(0, 16),
		canon.Discard(0, 16, false),
	}, g.Events)
}

func TestReplay_Errors(t *testing.T) {
	base := [canon.Seats][]int{
		{11, 12, 13, 14, 16, 17, 18, 19, 21, 22, 23, 24, 26},
		{31, 32, 33, 34, 36, 37, 38, 39, 41, 42, 43, 44, 45},
		{11, 12, 13, 14, 16, 17, 18, 19, 21, 22, 23, 24, 26},
		{31, 32, 33, 34, 36, 37, 38, 39, 41, 42, 43, 44, 45},
	}

	tests := []struct {
		name  string
		hands [canon.Seats][]int
		seats func(t *testing.T) [canon.Seats]seatLog
		want  error
	}{
		{
			name: "fifth copy of a kind",
			hands: [canon.Seats][]int{
				{11, 11, 11, 11, 12, 13, 14, 16, 17, 18, 19, 21, 22},
				base[1], base[1], base[3],
			},
			seats: func(t *testing.T) [canon.Seats]seatLog {
				return [canon.Seats]seatLog{seatOf(t, 0, []any{11.0}, []any{60.0})}
			},
			want: canon.ErrPoolExhausted,
		},
		{
			name:  "discard not in hand",
			hands: base,
			seats: func(t *testing.T) [canon.Seats]seatLog {
				return [canon.Seats]seatLog{seatOf(t, 0, []any{46.0}, []any{47.0})}
			},
			want: canon.ErrInstanceMismatch,
		},
		{
			name:  "call matching no discard",
			hands: base,
			seats: func(t *testing.T) [canon.Seats]seatLog {
				return [canon.Seats]seatLog{
					seatOf(t, 0, []any{46.0}, []any{60.0}),
					seatOf(t, 1, []any{"p414141"}, []any{41.0}),
				}
			},
			want: canon.ErrInstanceMismatch,
		},
		{
			name:  "called tiles missing from hand",
			hands: base,
			seats: func(t *testing.T) [canon.Seats]seatLog {
				return [canon.Seats]seatLog{
					seatOf(t, 0, []any{46.0}, []any{60.0}),
					seatOf(t, 1, []any{"p464646"}, []any{41.0}),
				}
			},
			want: canon.ErrInstanceMismatch,
		},
		{
			name: "open kong without placeholder",
			hands: [canon.Seats][]int{
				base[0],
				{46, 46, 46, 31, 32, 33, 34, 36, 37, 38, 39, 41, 42},
				base[2], base[3],
			},
			seats: func(t *testing.T) [canon.Seats]seatLog {
				return [canon.Seats]seatLog{
					seatOf(t, 0, []any{46.0}, []any{60.0}),
					seatOf(t, 1, []any{"m46464646", 25.0}, []any{41.0}),
				}
			},
			want: canon.ErrInstanceMismatch,
		},
		{
			name:  "short deal",
			hands: [canon.Seats][]int{{11, 12}, base[1], base[2], base[3]},
			seats: func(t *testing.T) [canon.Seats]seatLog {
				return [canon.Seats]seatLog{}
			},
			want: canon.ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runReplay(t, tt.hands, tt.seats(t))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
