package mjlog

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"match-canon/feature/canon"
)

// DefaultStartingScore is the score every seat holds before the first game.
const DefaultStartingScore = 25000

type state int

const (
	stateIdle state = iota
	stateInGame
	stateEnded
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateInGame:
		return "in game"
	case stateEnded:
		return "ended"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

var (
	drawSeats    = map[byte]int{'T': 0, 'U': 1, 'V': 2, 'W': 3}
	discardSeats = map[byte]int{'D': 0, 'E': 1, 'F': 2, 'G': 3}
)

var drawReasons = map[string]canon.DrawReason{
	"yao9":   canon.DrawNineTerminals,
	"reach4": canon.DrawFourRiichi,
	"ron3":   canon.DrawTripleRon,
	"kan4":   canon.DrawFourKongs,
	"kaze4":  canon.DrawFourWinds,
	"nm":     canon.DrawNagashiMangan,
}

// Decoder converts Format A logs. It holds no per-match state and is safe for
// concurrent use.
type Decoder struct {
	resolver      canon.Resolver
	startingScore int
}

// NewDecoder creates a decoder resolving nicknames with resolver. A non-positive
// startingScore selects DefaultStartingScore.
func NewDecoder(resolver canon.Resolver, startingScore int) *Decoder {
	if startingScore <= 0 {
		startingScore = DefaultStartingScore
	}
	return &Decoder{resolver: resolver, startingScore: startingScore}
}

// Decode converts one Format A log into a match. No partial match is returned on error.
func (d *Decoder) Decode(id int64, content []byte) (*canon.Match, error) {
	m := &matchState{
		id:       id,
		resolver: d.resolver,
		seat:     -1,
	}
	for i := range m.running {
		m.running[i] = d.startingScore
	}

	for _, node := range Tokenize(string(content)) {
		if err := m.step(node); err != nil {
			return nil, m.wrap(err)
		}
	}
	return m.finish()
}

// matchState accumulates one match while walking its nodes.
type matchState struct {
	id       int64
	resolver canon.Resolver

	state     state
	namesSeen bool
	names     [canon.Seats]string

	game    *canon.Game
	riichi  [canon.Seats]bool
	running [canon.Seats]int
	games   []canon.Game

	finalScores  [canon.Seats]int
	finalIncomes [canon.Seats]float64

	// seat of the record being processed, for error context
	seat int
}

func (m *matchState) wrap(err error) error {
	var de *canon.DecodeError
	var re *canon.ResolverError
	if errors.As(err, &de) || errors.As(err, &re) {
		return err
	}
	game := -1
	if m.game != nil {
		game = len(m.games)
	}
	return canon.NewDecodeError(m.id, game, m.seat, err)
}

func (m *matchState) step(n Node) error {
	m.seat = -1
	switch n.Name {
	case "UN":
		return m.roster(n)
	case "BYE":
		return nil
	case "AGARI", "RYUUKYOKU":
		return m.result(n)
	}

	if m.game != nil && len(m.game.Results) > 0 {
		m.closeGame()
	}

	if n.Name == "INIT" {
		if m.state == stateEnded {
			return fmt.Errorf("<INIT> after final score: %w", canon.ErrMalformedToken)
		}
		if err := m.openGame(n); err != nil {
			return canon.NewDecodeError(m.id, len(m.games), m.seat, err)
		}
		return nil
	}
	if m.state != stateInGame || m.game == nil {
		return nil
	}

	switch n.Name {
	case "REACH":
		return m.reach(n)
	case "DORA":
		hai, err := n.Int("hai")
		if err != nil {
			return err
		}
		m.game.Dora = append(m.game.Dora, canon.Instance(hai))
		return nil
	case "N":
		return m.call(n)
	default:
		return m.drawOrDiscard(n)
	}
}

func (m *matchState) roster(n Node) error {
	if m.namesSeen {
		return nil
	}
	var nicks [canon.Seats]string
	for seat := range nicks {
		raw, ok := n.Attr(fmt.Sprintf("n%d", seat))
		if !ok {
			m.seat = seat
			return fmt.Errorf("<UN> missing n%d: %w", seat, canon.ErrMalformedToken)
		}
		nick, err := url.PathUnescape(raw)
		if err != nil {
			m.seat = seat
			return fmt.Errorf("<UN> n%d=%q: %w", seat, raw, canon.ErrMalformedToken)
		}
		nicks[seat] = nick
	}
	names, err := canon.ResolveSeats(m.id, m.resolver, nicks)
	if err != nil {
		return err
	}
	m.names = names
	m.namesSeen = true
	return nil
}

func (m *matchState) openGame(n Node) error {
	seed, err := n.Ints("seed", 6)
	if err != nil {
		return err
	}
	ten, err := n.Ints("ten", canon.Seats)
	if err != nil {
		return err
	}

	g := &canon.Game{
		Round:              seed[0],
		DealerKeepingCount: seed[1],
		Bets:               seed[2],
		Dora:               []canon.Instance{canon.Instance(seed[5])},
	}
	for seat := range g.BeginningScores {
		g.BeginningScores[seat] = ten[seat] * 100
	}
	for seat := range g.DealtTiles {
		hai, err := n.Ints(fmt.Sprintf("hai%d", seat), canon.DealtTiles)
		if err != nil {
			m.seat = seat
			return err
		}
		sort.Ints(hai)
		tiles := make([]canon.Instance, len(hai))
		for i, h := range hai {
			tiles[i] = canon.Instance(h)
		}
		g.DealtTiles[seat] = tiles
	}

	m.game = g
	m.riichi = [canon.Seats]bool{}
	m.state = stateInGame
	return nil
}

func (m *matchState) closeGame() {
	g := m.game
	g.DropUnconfirmedRiichi()
	if len(g.HiddenDora) == 0 {
		g.HiddenDora = nil
	}
	m.games = append(m.games, *g)
	m.game = nil
	if m.state == stateInGame {
		m.state = stateIdle
	}
}

func (m *matchState) reach(n Node) error {
	who, err := m.who(n)
	if err != nil {
		return err
	}
	step, _ := n.Attr("step")
	switch step {
	case "1":
		m.riichi[who] = true
	case "2":
		m.riichi[who] = false
	default:
		return fmt.Errorf("<REACH> step=%q: %w", step, canon.ErrMalformedToken)
	}
	return nil
}

func (m *matchState) call(n Node) error {
	who, err := m.who(n)
	if err != nil {
		return err
	}
	packed, err := n.Int("m")
	if err != nil {
		return err
	}
	e, err := DecodeCall(who, packed)
	if err != nil {
		return err
	}
	m.game.Events = append(m.game.Events, e)
	return nil
}

func (m *matchState) drawOrDiscard(n Node) error {
	if len(n.Name) < 2 {
		return fmt.Errorf("record <%s>: %w", n.Name, canon.ErrMalformedToken)
	}
	tile, err := strconv.Atoi(n.Name[1:])
	if err != nil || !canon.Instance(tile).Valid() {
		return fmt.Errorf("record <%s>: %w", n.Name, canon.ErrMalformedToken)
	}

	if seat, ok := drawSeats[n.Name[0]]; ok {
		m.seat = seat
		m.game.Events = append(m.game.Events, canon.Draw(seat, canon.Instance(tile)))
		return nil
	}
	if seat, ok := discardSeats[n.Name[0]]; ok {
		m.seat = seat
		m.game.Events = append(m.game.Events, canon.Discard(seat, canon.Instance(tile), m.riichi[seat]))
		m.riichi[seat] = false
		return nil
	}
	return fmt.Errorf("record <%s>: %w", n.Name, canon.ErrMalformedToken)
}

func (m *matchState) result(n Node) error {
	if m.game == nil {
		return fmt.Errorf("<%s> while %s: %w", n.Name, m.state, canon.ErrMalformedToken)
	}

	var r canon.GameResult
	var err error
	if n.Name == "AGARI" {
		r, err = m.win(n)
	} else {
		r, err = m.draw(n)
	}
	if err != nil {
		return err
	}

	after, err := scoresAfter(n)
	if err != nil {
		return err
	}
	for seat := range after {
		r.ScoreDeltas[seat] = after[seat] - m.running[seat]
	}
	m.running = after
	m.game.Results = append(m.game.Results, r)

	if _, ok := n.Attr("doraHaiUra"); ok && len(m.game.HiddenDora) == 0 {
		ints, err := n.Ints("doraHaiUra", -1)
		if err != nil {
			return err
		}
		for _, t := range ints {
			m.game.HiddenDora = append(m.game.HiddenDora, canon.Instance(t))
		}
	}

	if _, ok := n.Attr("owari"); ok {
		return m.finalStandings(n)
	}
	return nil
}

func (m *matchState) win(n Node) (canon.GameResult, error) {
	who, err := m.who(n)
	if err != nil {
		return canon.GameResult{}, err
	}
	fromWho, err := n.Int("fromWho")
	if err != nil {
		return canon.GameResult{}, err
	}
	ten, err := n.Ints("ten", -1)
	if err != nil {
		return canon.GameResult{}, err
	}
	if len(ten) < 2 {
		return canon.GameResult{}, fmt.Errorf("<AGARI> ten has %d values: %w", len(ten), canon.ErrMalformedToken)
	}

	r := canon.GameResult{
		Kind:     canon.ResultWin,
		Winner:   who,
		Points:   ten[0],
		WinScore: ten[1],
	}
	if fromWho != who {
		r.From = canon.SeatRef(fromWho)
	}
	if _, ok := n.Attr("paoWho"); ok {
		pao, err := n.Int("paoWho")
		if err != nil {
			return canon.GameResult{}, err
		}
		if pao != who {
			r.Pao = canon.SeatRef(pao)
		}
	}

	if _, ok := n.Attr("yakuman"); ok {
		ids, err := n.Ints("yakuman", -1)
		if err != nil {
			return canon.GameResult{}, err
		}
		r.Yaku = make([]canon.YakuDoubles, 0, len(ids))
		for _, id := range ids {
			r.Yaku = append(r.Yaku, canon.YakuDoubles{YakuID: id, Doubles: canon.Yakuman})
		}
		return r, nil
	}

	pairs, err := n.Ints("yaku", -1)
	if err != nil {
		return canon.GameResult{}, err
	}
	if len(pairs)%2 != 0 {
		return canon.GameResult{}, fmt.Errorf("<AGARI> odd yaku list: %w", canon.ErrMalformedToken)
	}
	r.Yaku = make([]canon.YakuDoubles, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i+1] == 0 {
			continue
		}
		r.Yaku = append(r.Yaku, canon.YakuDoubles{YakuID: pairs[i], Doubles: pairs[i+1]})
	}
	return r, nil
}

func (m *matchState) draw(n Node) (canon.GameResult, error) {
	reason := canon.DrawExhaustive
	if t, ok := n.Attr("type"); ok {
		if mapped, ok := drawReasons[t]; ok {
			reason = mapped
		}
	}
	return canon.GameResult{Kind: canon.ResultDraw, Reason: reason}, nil
}

// scoresAfter reads the sc attribute, pairs of score before and change in hundreds.
func scoresAfter(n Node) ([canon.Seats]int, error) {
	var out [canon.Seats]int
	sc, err := n.Ints("sc", 2*canon.Seats)
	if err != nil {
		return out, err
	}
	for seat := range out {
		out[seat] = 100 * (sc[2*seat] + sc[2*seat+1])
	}
	return out, nil
}

func (m *matchState) finalStandings(n Node) error {
	owari, err := n.Floats("owari", 2*canon.Seats)
	if err != nil {
		return err
	}
	for seat := 0; seat < canon.Seats; seat++ {
		m.finalScores[seat] = int(owari[2*seat]) * 100
		m.finalIncomes[seat] = owari[2*seat+1]
	}
	m.state = stateEnded
	return nil
}

func (m *matchState) who(n Node) (int, error) {
	who, err := n.Int("who")
	if err != nil {
		return 0, err
	}
	if who < 0 || who >= canon.Seats {
		return 0, fmt.Errorf("<%s> who=%d: %w", n.Name, who, canon.ErrMalformedToken)
	}
	m.seat = who
	return who, nil
}

func (m *matchState) finish() (*canon.Match, error) {
	if m.state != stateEnded {
		return nil, canon.NewDecodeError(m.id, -1, -1, canon.ErrMissingFinalScore)
	}
	if m.game != nil {
		if len(m.game.Results) == 0 {
			return nil, canon.NewDecodeError(m.id, len(m.games), -1, fmt.Errorf("game without result: %w", canon.ErrMalformedToken))
		}
		m.closeGame()
	}
	if !m.namesSeen {
		return nil, canon.NewDecodeError(m.id, -1, -1, fmt.Errorf("no player roster: %w", canon.ErrMalformedToken))
	}

	return &canon.Match{
		ID:      m.id,
		Players: canon.RankPlayers(m.names, m.finalScores, m.finalIncomes),
		Games:   m.games,
	}, nil
}
