package canon

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPlayer is returned when a nickname has no registered player.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrMalformedToken is returned for unparsable log records.
	ErrMalformedToken = errors.New("malformed token")
	// ErrPoolExhausted is returned when a tile kind is used more often than it exists.
	ErrPoolExhausted = errors.New("tile pool exhausted")
	// ErrInstanceMismatch is returned when a record references a tile the hand does not hold.
	ErrInstanceMismatch = errors.New("tile instance mismatch")
	// ErrMissingFinalScore is returned when a Format A stream has no final score record.
	ErrMissingFinalScore = errors.New("missing final score")
	// ErrUnrecognizedResult is returned for win or draw strings matching no known pattern.
	ErrUnrecognizedResult = errors.New("unrecognized result string")
)

// DecodeError locates a decode failure. Game and Seat are -1 when not applicable.
type DecodeError struct {
	MatchID int64
	Game    int
	Seat    int
	Err     error
}

// NewDecodeError wraps err with the given location.
func NewDecodeError(matchID int64, game, seat int, err error) *DecodeError {
	return &DecodeError{MatchID: matchID, Game: game, Seat: seat, Err: err}
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "match %d", e.MatchID)
	if e.Game >= 0 {
		fmt.Fprintf(&b, " game %d", e.Game)
	}
	if e.Seat >= 0 {
		fmt.Fprintf(&b, " seat %d", e.Seat)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err originates from malformed or inconsistent input.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
