package mjson

import (
	"fmt"
	"sort"

	"match-canon/feature/canon"
)

type replayState int

const (
	stateCallCheck replayState = iota
	stateDraw
	stateDiscard
	stateDone
)

func (s replayState) String() string {
	switch s {
	case stateCallCheck:
		return "call check"
	case stateDraw:
		return "draw"
	case stateDiscard:
		return "discard"
	default:
		return "done"
	}
}

// seatLog is one seat's recorded lists with a cursor into each.
type seatLog struct {
	gains    []gain
	discards []discard
	nextGain int
	nextDisc int
}

func (s *seatLog) peekGain() (gain, bool) {
	if s.nextGain >= len(s.gains) {
		return gain{}, false
	}
	return s.gains[s.nextGain], true
}

func (s *seatLog) peekDiscard() (discard, bool) {
	if s.nextDisc >= len(s.discards) {
		return discard{}, false
	}
	return s.discards[s.nextDisc], true
}

// replay reconstructs the event order of one game.
type replay struct {
	repo  *Repository
	hands [canon.Seats][]canon.Instance
	seats [canon.Seats]seatLog
	drawn [canon.Seats]canon.Instance

	state         replayState
	turn          int
	lastDiscard   canon.Instance
	lastDiscarder int
	events        []canon.EventItem

	// seat being processed, for error context
	seat int
}

func newReplay(repo *Repository, dealer int, seats [canon.Seats]seatLog) *replay {
	r := &replay{
		repo:          repo,
		seats:         seats,
		state:         stateCallCheck,
		turn:          dealer,
		lastDiscarder: -1,
		seat:          -1,
	}
	for i := range r.drawn {
		r.drawn[i] = -1
	}
	return r
}

// deal allocates the starting hands. Hands keep allocation order for lookups;
// the returned dealt tiles are sorted.
func (r *replay) deal(codes [canon.Seats][]int) ([canon.Seats][]canon.Instance, error) {
	var dealt [canon.Seats][]canon.Instance
	for seat, hand := range codes {
		r.seat = seat
		if len(hand) != canon.DealtTiles {
			return dealt, fmt.Errorf("dealt %d tiles: %w", len(hand), canon.ErrMalformedToken)
		}
		for _, code := range hand {
			inst, err := r.repo.Allocate(code)
			if err != nil {
				return dealt, err
			}
			r.hands[seat] = append(r.hands[seat], inst)
		}
		sorted := append([]canon.Instance(nil), r.hands[seat]...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		dealt[seat] = sorted
	}
	r.seat = -1
	return dealt, nil
}

// run drives the state machine until no seat can act.
func (r *replay) run() ([]canon.EventItem, error) {
	for r.state != stateDone {
		var err error
		current := r.state
		switch current {
		case stateCallCheck:
			r.state, err = r.callCheck()
		case stateDraw:
			r.state, err = r.draw()
		case stateDiscard:
			r.state, err = r.discard()
		}
		if err != nil {
			return nil, fmt.Errorf("%s after %d events: %w", current, len(r.events), err)
		}
	}
	return r.events, nil
}

// callCheck looks, starting from the turn holder, for the first seat whose pending gain
// calls the last discard.
func (r *replay) callCheck() (replayState, error) {
	if r.lastDiscarder < 0 {
		return stateDraw, nil
	}
	for i := 0; i < canon.Seats; i++ {
		seat := (r.turn + i) % canon.Seats
		g, ok := r.seats[seat].peekGain()
		if !ok || !g.isCall() || g.From != r.lastDiscarder || !codeMatches(g.Code, r.lastDiscard) {
			continue
		}
		r.seat = seat
		r.seats[seat].nextGain++
		if err := r.call(seat, g); err != nil {
			return stateDone, err
		}
		r.turn = seat
		return stateDiscard, nil
	}
	return stateDraw, nil
}

func (r *replay) call(seat int, g gain) error {
	tiles, err := r.takeFromHand(seat, g.Hand)
	if err != nil {
		return fmt.Errorf("%s of %d: %w", g.Call, g.Code, err)
	}
	called := r.lastDiscard
	r.lastDiscarder = -1
	r.drawn[seat] = -1

	switch g.Call {
	case canon.EventChow:
		r.events = append(r.events, canon.Chow(seat, called, g.From, tiles))
	case canon.EventPung:
		r.events = append(r.events, canon.Pung(seat, called, g.From, tiles))
	case canon.EventOpenKong:
		r.events = append(r.events, canon.OpenKong(seat, called, g.From, tiles))
		d, ok := r.seats[seat].peekDiscard()
		if !ok || d.Kong != "" || d.Code != codeKongPlaceholder {
			return fmt.Errorf("open kong without placeholder discard: %w", canon.ErrInstanceMismatch)
		}
		r.seats[seat].nextDisc++
		drew, err := r.replacementDraw(seat)
		if err != nil {
			return err
		}
		if !drew {
			return fmt.Errorf("open kong without replacement draw: %w", canon.ErrInstanceMismatch)
		}
	}
	return nil
}

// draw takes the turn holder's next plain draw.
func (r *replay) draw() (replayState, error) {
	r.seat = r.turn
	g, ok := r.seats[r.turn].peekGain()
	if !ok {
		return stateDone, nil
	}
	if g.isCall() {
		return stateDone, fmt.Errorf("%s of %d matches no discard: %w", g.Call, g.Code, canon.ErrInstanceMismatch)
	}
	r.seats[r.turn].nextGain++
	if err := r.drawTile(r.turn, g.Code); err != nil {
		return stateDone, err
	}
	return stateDiscard, nil
}

// discard drains kong declarations and ends the turn on the first plain discard.
func (r *replay) discard() (replayState, error) {
	seat := r.turn
	r.seat = seat
	for {
		d, ok := r.seats[seat].peekDiscard()
		if !ok {
			return stateDone, nil
		}
		r.seats[seat].nextDisc++

		if d.Kong == "" {
			inst, err := r.discardTile(seat, d.Code)
			if err != nil {
				return stateDone, err
			}
			r.events = append(r.events, canon.Discard(seat, inst, d.Riichi))
			r.lastDiscard, r.lastDiscarder = inst, seat
			r.drawn[seat] = -1
			r.turn = (seat + 1) % canon.Seats
			return stateCallCheck, nil
		}

		tiles, err := r.takeFromHand(seat, d.Hand)
		if err != nil {
			return stateDone, fmt.Errorf("%s of %d: %w", d.Kong, d.Code, err)
		}
		if d.Kong == canon.EventConcealedKong {
			r.events = append(r.events, canon.ConcealedKong(seat, tiles))
		} else {
			r.events = append(r.events, canon.AdditionalKong(seat, tiles[0]))
		}

		drew, err := r.replacementDraw(seat)
		if err != nil {
			return stateDone, err
		}
		if !drew {
			// robbed kong: the game ended on the declaration
			return stateDone, nil
		}
	}
}

// replacementDraw takes the supplemental draw after a kong. It reports false when the
// seat has no gain left.
func (r *replay) replacementDraw(seat int) (bool, error) {
	g, ok := r.seats[seat].peekGain()
	if !ok {
		return false, nil
	}
	if g.isCall() {
		return false, fmt.Errorf("call %s of %d in place of a kong draw: %w", g.Call, g.Code, canon.ErrInstanceMismatch)
	}
	r.seats[seat].nextGain++
	return true, r.drawTile(seat, g.Code)
}

func (r *replay) drawTile(seat, code int) error {
	inst, err := r.repo.Allocate(code)
	if err != nil {
		return err
	}
	r.hands[seat] = append(r.hands[seat], inst)
	r.drawn[seat] = inst
	r.events = append(r.events, canon.Draw(seat, inst))
	return nil
}

func (r *replay) discardTile(seat, code int) (canon.Instance, error) {
	if code == codeTsumogiri {
		if r.drawn[seat] < 0 {
			return 0, fmt.Errorf("discard of the drawn tile without a draw: %w", canon.ErrInstanceMismatch)
		}
		return r.takeInstance(seat, r.drawn[seat])
	}
	tiles, err := r.takeFromHand(seat, []int{code})
	if err != nil {
		return 0, fmt.Errorf("discard: %w", err)
	}
	return tiles[0], nil
}

// takeFromHand removes one instance per code from the seat's hand. Exact codes are
// preferred; a plain five code falls back to the red copy.
func (r *replay) takeFromHand(seat int, codes []int) ([]canon.Instance, error) {
	out := make([]canon.Instance, 0, len(codes))
	for _, code := range codes {
		idx := r.find(seat, code)
		if idx < 0 {
			return nil, fmt.Errorf("code %d not in hand %v: %w", code, r.hands[seat], canon.ErrInstanceMismatch)
		}
		out = append(out, r.remove(seat, idx))
	}
	return out, nil
}

func (r *replay) takeInstance(seat int, inst canon.Instance) (canon.Instance, error) {
	for i, h := range r.hands[seat] {
		if h == inst {
			return r.remove(seat, i), nil
		}
	}
	return 0, fmt.Errorf("drawn %s no longer in hand: %w", inst, canon.ErrInstanceMismatch)
}

func (r *replay) find(seat, code int) int {
	fallback := -1
	for i, inst := range r.hands[seat] {
		if instanceCode(inst) == code {
			return i
		}
		if fallback < 0 && codeMatches(code, inst) {
			fallback = i
		}
	}
	return fallback
}

func (r *replay) remove(seat, idx int) canon.Instance {
	hand := r.hands[seat]
	inst := hand[idx]
	r.hands[seat] = append(hand[:idx], hand[idx+1:]...)
	return inst
}
