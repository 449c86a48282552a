package reconcile

import (
	"testing"

	"match-canon/feature/canon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatch(id int64) *canon.Match {
	return &canon.Match{
		ID: id,
		Players: [canon.Seats]canon.Player{
			{Name: "alice", Score: 30000, Rank: 0},
			{Name: "bob", Score: 25000, Rank: 1},
			{Name: "carol", Score: 25000, Rank: 2},
			{Name: "dave", Score: 20000, Rank: 3},
		},
		Games: []canon.Game{{
			BeginningScores: [canon.Seats]int{25000, 25000, 25000, 25000},
			Dora:            []canon.Instance{52},
			Events: []canon.EventItem{
				canon.Draw(0, 4),
				canon.Discard(0, 4, false),
			},
			Results: []canon.GameResult{{
				Kind:        canon.ResultWin,
				ScoreDeltas: [canon.Seats]int{-5000, 5000, 0, 0},
				Winner:      1,
				From:        canon.SeatRef(0),
				WinScore:    5000,
				Points:      30,
			}},
		}},
	}
}

func TestCompareMatches_Identical(t *testing.T) {
	got := CompareMatches(sampleMatch(1), sampleMatch(1))
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestCompareMatches_NilAndEmptySlicesAreEqual(t *testing.T) {
	a, b := sampleMatch(1), sampleMatch(1)
	a.Games[0].HiddenDora = nil
	b.Games[0].HiddenDora = []canon.Instance{}

	assert.Empty(t, CompareMatches(a, b))
}

func TestCompareMatches_Fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *canon.Match)
		want   []string
	}{
		{
			name:   "event tile",
			mutate: func(m *canon.Match) { m.Games[0].Events[1].Tile = 5 },
			want:   []string{"games[0].events[1].tile: left=2m#0 right=2m#1"},
		},
		{
			name:   "player name",
			mutate: func(m *canon.Match) { m.Players[1].Name = "bobby" },
			want:   []string{"players[1].name: left=bob right=bobby"},
		},
		{
			name:   "self draw against ron",
			mutate: func(m *canon.Match) { m.Games[0].Results[0].From = nil },
			want:   []string{"games[0].gameResults[0].from: left=0 right=<nil>"},
		},
		{
			name: "extra event",
			mutate: func(m *canon.Match) {
				m.Games[0].Events = append(m.Games[0].Events, canon.Draw(1, 8))
			},
			want: []string{"games[0].events.length: left=2 right=3"},
		},
		{
			name:   "riichi flag",
			mutate: func(m *canon.Match) { m.Games[0].Events[1].Riichi = true },
			want:   []string{"games[0].events[1].riichi: left=false right=true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			right := sampleMatch(1)
			tt.mutate(right)
			assert.Equal(t, tt.want, CompareMatches(sampleMatch(1), right))
		})
	}
}

func TestCompareMatches_Capped(t *testing.T) {
	a, b := sampleMatch(1), sampleMatch(1)
	a.Games[0].Dora = make([]canon.Instance, 25)
	b.Games[0].Dora = make([]canon.Instance, 25)
	for i := range b.Games[0].Dora {
		b.Games[0].Dora[i] = 1
	}

	got := CompareMatches(a, b)
	require.Len(t, got, maxMismatches+1)
	assert.Equal(t, "games[0].dora[0]: left=1m#0 right=1m#1", got[0])
	assert.Equal(t, "... and 5 more", got[maxMismatches])
}
