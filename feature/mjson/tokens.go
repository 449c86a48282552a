package mjson

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"match-canon/core/utils"
	"match-canon/feature/canon"
)

const (
	// codeTsumogiri discards the tile the seat has just drawn.
	codeTsumogiri = 60
	// codeKongPlaceholder fills the discard slot consumed by an open kong.
	codeKongPlaceholder = 0
	codeRedMan          = 51
)

var (
	gainPattern    = regexp.MustCompile(`^((?:\d\d)*)([cpm]\d\d)((?:\d\d)*)$`)
	kongPattern    = regexp.MustCompile(`^((?:\d\d)*)([ak]\d\d)((?:\d\d)*)$`)
	gainCallEvents = map[byte]canon.EventKind{'c': canon.EventChow, 'p': canon.EventPung, 'm': canon.EventOpenKong}
	kongEvents     = map[byte]canon.EventKind{'a': canon.EventConcealedKong, 'k': canon.EventAdditionalKong}
)

// codeKind maps a kind code to its kind; red reports the red five codes 51-53.
func codeKind(code int) (kind canon.Kind, red bool, ok bool) {
	suit, num := code/10, code%10
	switch {
	case suit >= 1 && suit <= 3 && num >= 1:
		return canon.Kind((suit-1)*9 + num - 1), false, true
	case suit == 4 && num >= 1 && num <= 7:
		return canon.KindEast + canon.Kind(num-1), false, true
	case code >= codeRedMan && code < codeRedMan+3:
		return canon.Kind((code-codeRedMan)*9 + 4), true, true
	default:
		return 0, false, false
	}
}

// instanceCode returns the kind code of an instance, using 51-53 for red fives.
func instanceCode(inst canon.Instance) int {
	k := inst.Kind()
	if inst.IsRed() {
		return codeRedMan + k.Suit()
	}
	if k.IsHonor() {
		return 41 + int(k-canon.KindEast)
	}
	return 10*(k.Suit()+1) + k.Number()
}

// codeMatches reports whether inst may stand for code. A plain five code also accepts
// the red copy, which only happens when a ruleset without red fives ran the pool dry.
func codeMatches(code int, inst canon.Instance) bool {
	if instanceCode(inst) == code {
		return true
	}
	kind, red, ok := codeKind(code)
	return ok && !red && kind.IsFive() && inst.Kind() == kind
}

// gain is one entry of a seat's gained list: a plain draw, or a call when Call is set.
type gain struct {
	Code int
	Call canon.EventKind
	From int
	Hand []int
}

func (g gain) isCall() bool {
	return g.Call != ""
}

// discard is one entry of a seat's discarded list: a plain or riichi discard, or a
// kong declaration when Kong is set.
type discard struct {
	Code   int
	Riichi bool
	Kong   canon.EventKind
	Hand   []int
}

func parseGain(seat int, v any) (gain, error) {
	if code, ok := utils.ToInt(v); ok {
		return gain{Code: code}, nil
	}
	s, ok := v.(string)
	if !ok {
		return gain{}, fmt.Errorf("gain %v: %w", v, canon.ErrMalformedToken)
	}
	m := gainPattern.FindStringSubmatch(s)
	if m == nil {
		return gain{}, fmt.Errorf("gain %q: %w", s, canon.ErrMalformedToken)
	}
	code, err := strconv.Atoi(m[2][1:])
	if err != nil {
		return gain{}, fmt.Errorf("gain %q: %w", s, canon.ErrMalformedToken)
	}
	hand, err := utils.SplitDigitPairs(m[1] + m[3])
	if err != nil {
		return gain{}, fmt.Errorf("gain %q: %v: %w", s, err, canon.ErrMalformedToken)
	}

	// the called tile sits on the side of the seat it came from
	from := (seat + 2) % canon.Seats
	switch {
	case m[1] == "":
		from = (seat + 3) % canon.Seats
	case m[3] == "":
		from = (seat + 1) % canon.Seats
	}
	return gain{Code: code, Call: gainCallEvents[m[2][0]], From: from, Hand: hand}, nil
}

func parseDiscard(v any) (discard, error) {
	if code, ok := utils.ToInt(v); ok {
		return discard{Code: code}, nil
	}
	s, ok := v.(string)
	if !ok {
		return discard{}, fmt.Errorf("discard %v: %w", v, canon.ErrMalformedToken)
	}
	if rest, found := strings.CutPrefix(s, "r"); found {
		code, err := strconv.Atoi(rest)
		if err != nil {
			return discard{}, fmt.Errorf("riichi discard %q: %w", s, canon.ErrMalformedToken)
		}
		return discard{Code: code, Riichi: true}, nil
	}

	m := kongPattern.FindStringSubmatch(s)
	if m == nil {
		return discard{}, fmt.Errorf("discard %q: %w", s, canon.ErrMalformedToken)
	}
	code, err := strconv.Atoi(m[2][1:])
	if err != nil {
		return discard{}, fmt.Errorf("discard %q: %w", s, canon.ErrMalformedToken)
	}
	kind := kongEvents[m[2][0]]
	if kind == canon.EventAdditionalKong {
		return discard{Code: code, Kong: kind, Hand: []int{code}}, nil
	}
	hand, err := utils.SplitDigitPairs(m[1] + m[3])
	if err != nil {
		return discard{}, fmt.Errorf("discard %q: %v: %w", s, err, canon.ErrMalformedToken)
	}
	return discard{Code: code, Kong: kind, Hand: append(hand, code)}, nil
}
