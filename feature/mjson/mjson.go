package mjson

import (
	"encoding/json"
	"errors"
	"fmt"

	"match-canon/feature/canon"
)

// gameFields is the number of entries of one game record.
const gameFields = 17

// Document is the top level of a Format B log.
type Document struct {
	Version float64           `json:"ver"`
	Ref     string            `json:"ref"`
	Scores  []float64         `json:"sc"`
	Names   []string          `json:"name"`
	Log     []json.RawMessage `json:"log"`
}

// gameRecord is one decoded game entry:
//
//	[0] round, honba, bets   [1] starting scores   [2] dora   [3] hidden dora
//	[4+3n] dealt, [5+3n] gained, [6+3n] discarded for seat n   [16] result
type gameRecord struct {
	Seed       []int
	Scores     []int
	Dora       []int
	HiddenDora []int
	Hands      [canon.Seats][]int
	Gains      [canon.Seats][]any
	Discards   [canon.Seats][]any
	Result     json.RawMessage
}

func parseGameRecord(raw json.RawMessage) (*gameRecord, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, fmt.Errorf("game record: %v: %w", err, canon.ErrMalformedToken)
	}
	if len(parts) != gameFields {
		return nil, fmt.Errorf("game record has %d fields: %w", len(parts), canon.ErrMalformedToken)
	}

	g := &gameRecord{Result: parts[16]}
	targets := []any{&g.Seed, &g.Scores, &g.Dora, &g.HiddenDora}
	for seat := 0; seat < canon.Seats; seat++ {
		targets = append(targets, &g.Hands[seat], &g.Gains[seat], &g.Discards[seat])
	}
	for i, dst := range targets {
		if err := json.Unmarshal(parts[i], dst); err != nil {
			return nil, fmt.Errorf("game field %d: %v: %w", i, err, canon.ErrMalformedToken)
		}
	}
	if len(g.Seed) < 3 || len(g.Scores) != canon.Seats {
		return nil, fmt.Errorf("game header: %w", canon.ErrMalformedToken)
	}
	return g, nil
}

// Decoder converts Format B logs. It holds no per-match state and is safe for
// concurrent use.
type Decoder struct {
	resolver canon.Resolver
}

// NewDecoder creates a decoder resolving nicknames with resolver.
func NewDecoder(resolver canon.Resolver) *Decoder {
	return &Decoder{resolver: resolver}
}

// Decode converts one Format B log into a match. No partial match is returned on error.
func (d *Decoder) Decode(id int64, content []byte) (*canon.Match, error) {
	var doc Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, canon.NewDecodeError(id, -1, -1, fmt.Errorf("document: %v: %w", err, canon.ErrMalformedToken))
	}
	return d.DecodeDocument(id, &doc)
}

// DecodeDocument converts an already parsed Format B document.
func (d *Decoder) DecodeDocument(id int64, doc *Document) (*canon.Match, error) {
	if len(doc.Names) != canon.Seats || len(doc.Scores) != 2*canon.Seats {
		return nil, canon.NewDecodeError(id, -1, -1, fmt.Errorf("%d names and %d scores: %w", len(doc.Names), len(doc.Scores), canon.ErrMalformedToken))
	}

	var nicks [canon.Seats]string
	copy(nicks[:], doc.Names)
	names, err := canon.ResolveSeats(id, d.resolver, nicks)
	if err != nil {
		return nil, err
	}

	games := make([]canon.Game, 0, len(doc.Log))
	for i, raw := range doc.Log {
		g, err := decodeGame(raw)
		if err != nil {
			var located *locatedError
			seat := -1
			if errors.As(err, &located) {
				seat, err = located.seat, located.err
			}
			return nil, canon.NewDecodeError(id, i, seat, err)
		}
		games = append(games, *g)
	}

	var scores [canon.Seats]int
	var incomes [canon.Seats]float64
	for seat := range scores {
		scores[seat] = int(doc.Scores[2*seat])
		incomes[seat] = doc.Scores[2*seat+1]
	}

	return &canon.Match{
		ID:      id,
		Players: canon.RankPlayers(names, scores, incomes),
		Games:   games,
	}, nil
}

// locatedError attaches the seat an error occurred at.
type locatedError struct {
	seat int
	err  error
}

func (e *locatedError) Error() string { return e.err.Error() }
func (e *locatedError) Unwrap() error { return e.err }

func decodeGame(raw json.RawMessage) (*canon.Game, error) {
	rec, err := parseGameRecord(raw)
	if err != nil {
		return nil, err
	}

	var seats [canon.Seats]seatLog
	for seat := 0; seat < canon.Seats; seat++ {
		for _, v := range rec.Gains[seat] {
			g, err := parseGain(seat, v)
			if err != nil {
				return nil, &locatedError{seat: seat, err: err}
			}
			seats[seat].gains = append(seats[seat].gains, g)
		}
		for _, v := range rec.Discards[seat] {
			dis, err := parseDiscard(v)
			if err != nil {
				return nil, &locatedError{seat: seat, err: err}
			}
			seats[seat].discards = append(seats[seat].discards, dis)
		}
	}

	g := &canon.Game{
		Round:              rec.Seed[0],
		DealerKeepingCount: rec.Seed[1],
		Bets:               rec.Seed[2],
	}
	copy(g.BeginningScores[:], rec.Scores)

	repo := NewRepository()
	r := newReplay(repo, g.Dealer(), seats)
	dealt, err := r.deal(rec.Hands)
	if err != nil {
		return nil, &locatedError{seat: r.seat, err: err}
	}
	g.DealtTiles = dealt

	events, err := r.run()
	if err != nil {
		return nil, &locatedError{seat: r.seat, err: err}
	}
	g.Events = events

	if g.Dora, err = allocateAll(repo, rec.Dora); err != nil {
		return nil, fmt.Errorf("dora: %w", err)
	}
	if len(rec.HiddenDora) > 0 {
		if g.HiddenDora, err = allocateAll(repo, rec.HiddenDora); err != nil {
			return nil, fmt.Errorf("hidden dora: %w", err)
		}
	}

	if g.Results, err = parseResults(rec.Result); err != nil {
		return nil, err
	}
	g.DropUnconfirmedRiichi()
	return g, nil
}

func allocateAll(repo *Repository, codes []int) ([]canon.Instance, error) {
	out := make([]canon.Instance, 0, len(codes))
	for _, code := range codes {
		inst, err := repo.Allocate(code)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}
