package mjlog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"match-canon/feature/canon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNames = map[string]string{
	"Alice": "alice",
	"あ":     "a-chan",
	"Carol": "carol",
	"Dave":  "dave",
}

// countingResolver resolves from testNames and counts lookups.
type countingResolver struct {
	calls int
}

func (r *countingResolver) Resolve(nick string) (string, error) {
	r.calls++
	name, ok := testNames[nick]
	if !ok {
		return "", fmt.Errorf("%q: %w", nick, canon.ErrUnknownPlayer)
	}
	return name, nil
}

const roster = `<UN n0="Alice" n1="%E3%81%82" n2="Carol" n3="Dave"/>`

// initRecord deals instances 0-51 in seat order with dora indicator 52.
func initRecord(round, honba, bets int, ten string) string {
	var hai [canon.Seats]string
	for seat := range hai {
		parts := make([]string, canon.DealtTiles)
		for i := range parts {
			parts[i] = fmt.Sprint(seat*canon.DealtTiles + i)
		}
		hai[seat] = strings.Join(parts, ",")
	}
	return fmt.Sprintf(`<INIT seed="%d,%d,%d,3,4,52" ten="%s" oya="%d" hai0="%s" hai1="%s" hai2="%s" hai3="%s"/>`,
		round, honba, bets, ten, round%4, hai[0], hai[1], hai[2], hai[3])
}

func decode(t *testing.T, content string) (*canon.Match, error) {
	t.Helper()
	return NewDecoder(&countingResolver{}, 0).Decode(1, []byte(content))
}

func TestDecode_PairedFixture(t *testing.T) {
	content, err := os.ReadFile("testdata/paired.xml")
	require.NoError(t, err)

	r := &countingResolver{}
	m, err := NewDecoder(r, DefaultStartingScore).Decode(1001, content)
	require.NoError(t, err)
	assert.Equal(t, 4, r.calls)

	assert.Equal(t, int64(1001), m.ID)
	assert.Equal(t, canon.Player{Name: "alice", Score: 19800, Income: -40.2, Rank: 3}, m.Players[0])
	assert.Equal(t, canon.Player{Name: "a-chan", Score: 25000, Income: 5, Rank: 1}, m.Players[1])
	assert.Equal(t, canon.Player{Name: "carol", Score: 30200, Income: 50.2, Rank: 0}, m.Players[2])
	assert.Equal(t, canon.Player{Name: "dave", Score: 25000, Income: -15, Rank: 2}, m.Players[3])

	require.Len(t, m.Games, 1)
	g := m.Games[0]
	assert.Equal(t, [canon.Seats]int{25000, 25000, 25000, 25000}, g.BeginningScores)
	assert.Equal(t, []canon.Instance{121}, g.Dora)
	assert.Equal(t, []canon.Instance{117}, g.HiddenDora)
	assert.Equal(t, []canon.Instance{1, 5, 16, 17, 53, 104, 108, 112, 116, 120, 124, 128, 132}, g.DealtTiles[2])

	assert.Equal(t, []canon.EventItem{
		canon.Draw(0, 69),
		canon.Discard(0, 8, false),
		canon.Pung(1, 8, 0, []canon.Instance{9, 10}),
		canon.Discard(1, 100, false),
		canon.Draw(2, 133),
		canon.Discard(2, 133, true),
		canon.Draw(3, 42),
		canon.Discard(3, 42, false),
		canon.Draw(0, 125),
		canon.Discard(0, 125, false),
	}, g.Events)

	require.Len(t, g.Results, 1)
	assert.Equal(t, canon.GameResult{
		Kind:        canon.ResultWin,
		ScoreDeltas: [canon.Seats]int{-5200, 0, 5200, 0},
		Winner:      2,
		From:        canon.SeatRef(0),
		WinScore:    5200,
		Points:      40,
		Yaku:        []canon.YakuDoubles{{YakuID: 1, Doubles: 1}, {YakuID: 52, Doubles: 2}},
	}, g.Results[0])

	assert.NoError(t, canon.CheckTileConservation(g))
}

func TestDecode_RiichiFlag(t *testing.T) {
	content := roster + initRecord(0, 0, 0, "250,250,250,250") +
		`<T60/><D60/>` +
		`<U61/><REACH who="1" step="1"/><E61/><REACH who="1" ten="250,240,250,250" step="2"/>` +
		`<V62/><F62/><W63/><G63/>` +
		`<T64/><D64/><U65/><E65/>` +
		`<RYUUKYOKU ba="0,1" sc="250,0,240,0,250,0,250,0" owari="250,0,240,-11,250,0,250,0"/>`

	m, err := decode(t, content)
	require.NoError(t, err)

	var flagged []canon.Instance
	for _, e := range m.Games[0].Events {
		if e.Kind == canon.EventDiscard && e.Riichi {
			flagged = append(flagged, e.Tile)
		}
	}
	assert.Equal(t, []canon.Instance{61}, flagged, "only the discard right after the declaration is flagged")
}

func TestDecode_UnconfirmedRiichiOnTerminalDiscard(t *testing.T) {
	content := roster + initRecord(0, 0, 0, "250,250,250,250") +
		`<T60/><D60/><U61/><REACH who="1" step="1"/><E61/>` +
		`<AGARI ten="30,2000,0" yaku="1,1,53,0" who="2" fromWho="1" sc="250,0,250,-20,250,20,250,0" owari="250,0,230,-27,270,37,250,-10"/>`

	m, err := decode(t, content)
	require.NoError(t, err)

	events := m.Games[0].Events
	last := events[len(events)-1]
	assert.Equal(t, canon.Discard(1, 61, false), last)

	r := m.Games[0].Results[0]
	assert.Equal(t, []canon.YakuDoubles{{YakuID: 1, Doubles: 1}}, r.Yaku)
	assert.Nil(t, m.Games[0].HiddenDora)
}

func TestDecode_DoubleRonAndRunningScores(t *testing.T) {
	content := roster +
		initRecord(0, 0, 1, "250,250,240,250") +
		`<T60/><D60/>` +
		`<AGARI ten="30,1000,0" yaku="8,1" who="1" fromWho="0" doraHaiUra="70" sc="250,-10,250,20,240,0,250,0"/>` +
		`<AGARI ten="40,2600,0" yaku="1,1,7,1" who="3" fromWho="0" doraHaiUra="71" paoWho="2" sc="240,-26,270,0,240,0,250,26"/>` +
		initRecord(1, 1, 0, "214,270,240,276") +
		`<T60/><D60/><RYUUKYOKU type="yao9" sc="214,0,270,0,240,0,276,0" owari="214,-38.6,270,7,240,-16,276,47.6"/>`

	m, err := decode(t, content)
	require.NoError(t, err)
	require.Len(t, m.Games, 2)

	first := m.Games[0]
	require.Len(t, first.Results, 2)
	// running totals start at 25000 for every seat, so the pot shows up in the first delta
	assert.Equal(t, [canon.Seats]int{-1000, 2000, -1000, 0}, first.Results[0].ScoreDeltas)
	assert.Equal(t, [canon.Seats]int{-2600, 0, 0, 2600}, first.Results[1].ScoreDeltas)
	assert.Equal(t, canon.SeatRef(2), first.Results[1].Pao)
	assert.Equal(t, []canon.Instance{70}, first.HiddenDora, "only the first hidden dora record counts")
	assert.Equal(t, 1, first.Bets)

	second := m.Games[1]
	assert.Equal(t, 1, second.Round)
	assert.Equal(t, 1, second.DealerKeepingCount)
	assert.Equal(t, [canon.Seats]int{21400, 27000, 24000, 27600}, second.BeginningScores)
	assert.Equal(t, canon.GameResult{Kind: canon.ResultDraw, Reason: canon.DrawNineTerminals}, second.Results[0])
}

func TestDecode_DrawReasons(t *testing.T) {
	tests := []struct {
		attr string
		want canon.DrawReason
	}{
		{attr: ``, want: canon.DrawExhaustive},
		{attr: `type="yao9"`, want: canon.DrawNineTerminals},
		{attr: `type="reach4"`, want: canon.DrawFourRiichi},
		{attr: `type="ron3"`, want: canon.DrawTripleRon},
		{attr: `type="kan4"`, want: canon.DrawFourKongs},
		{attr: `type="kaze4"`, want: canon.DrawFourWinds},
		{attr: `type="nm"`, want: canon.DrawNagashiMangan},
		{attr: `type="ryuukyoku"`, want: canon.DrawExhaustive},
	}

	for _, tt := range tests {
		t.Run(string(tt.want)+tt.attr, func(t *testing.T) {
			content := roster + initRecord(0, 0, 0, "250,250,250,250") +
				`<RYUUKYOKU ` + tt.attr + ` sc="250,0,250,0,250,0,250,0" owari="250,0,250,0,250,0,250,0"/>`
			m, err := decode(t, content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Games[0].Results[0].Reason)
		})
	}
}

func TestDecode_YakumanAndSelfDraw(t *testing.T) {
	content := roster + initRecord(0, 0, 0, "250,250,250,250") +
		`<T60/><AGARI ten="40,48000,5" yaku="" yakuman="37,40" who="0" fromWho="0" sc="250,960,250,-320,250,-320,250,-320" owari="1210,141,-70,-37,-70,-57,-70,-47"/>`

	m, err := decode(t, content)
	require.NoError(t, err)

	r := m.Games[0].Results[0]
	assert.True(t, r.IsSelfDraw())
	assert.Equal(t, []canon.YakuDoubles{{YakuID: 37, Doubles: 13}, {YakuID: 40, Doubles: 13}}, r.Yaku)
	assert.Equal(t, [canon.Seats]int{96000, -32000, -32000, -32000}, r.ScoreDeltas)
	assert.Equal(t, -7000, m.Players[1].Score)
}

func TestDecode_ReconnectRosterIgnored(t *testing.T) {
	content := roster + initRecord(0, 0, 0, "250,250,250,250") +
		`<T60/><BYE who="1"/><UN n1="Mallory"/><D60/>` +
		`<RYUUKYOKU sc="250,0,250,0,250,0,250,0" owari="250,0,250,0,250,0,250,0"/>`

	r := &countingResolver{}
	m, err := NewDecoder(r, 0).Decode(1, []byte(content))
	require.NoError(t, err)
	assert.Equal(t, 4, r.calls)
	assert.Equal(t, "a-chan", m.Players[1].Name)
	assert.Len(t, m.Games[0].Events, 2)
}

func TestDecode_ResolverOutage(t *testing.T) {
	content, err := os.ReadFile("testdata/paired.xml")
	require.NoError(t, err)

	refused := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	outage := canon.ResolverFunc(func(string) (string, error) { return "", refused })

	_, err = NewDecoder(outage, DefaultStartingScore).Decode(1001, content)
	assert.ErrorIs(t, err, refused)
	assert.False(t, canon.IsDecodeError(err))
}

func TestDecode_Errors(t *testing.T) {
	game := initRecord(0, 0, 0, "250,250,250,250")
	tests := []struct {
		name    string
		content string
		want    error
		game    int
	}{
		{
			name:    "missing final score",
			content: roster + game + `<T60/><D60/><RYUUKYOKU sc="250,0,250,0,250,0,250,0"/>`,
			want:    canon.ErrMissingFinalScore,
			game:    -1,
		},
		{
			name:    "unknown player",
			content: `<UN n0="Alice" n1="Mallory" n2="Carol" n3="Dave"/>` + game,
			want:    canon.ErrUnknownPlayer,
			game:    -1,
		},
		{
			name:    "bad draw record",
			content: roster + game + `<Txx/>`,
			want:    canon.ErrMalformedToken,
			game:    0,
		},
		{
			name:    "call without packed integer",
			content: roster + game + `<N who="1"/>`,
			want:    canon.ErrMalformedToken,
			game:    0,
		},
		{
			name:    "short dealt hand",
			content: roster + `<INIT seed="0,0,0,1,2,52" ten="250,250,250,250" hai0="1,2" hai1="" hai2="" hai3=""/>`,
			want:    canon.ErrMalformedToken,
			game:    0,
		},
		{
			name:    "result outside a game",
			content: roster + `<AGARI ten="30,1000,0" who="0" fromWho="1" sc="250,0,250,0,250,0,250,0"/>`,
			want:    canon.ErrMalformedToken,
			game:    -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := decode(t, tt.content)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.want)

			var de *canon.DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, int64(1), de.MatchID)
			assert.Equal(t, tt.game, de.Game)
		})
	}
}
