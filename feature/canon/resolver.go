package canon

import (
	"errors"
	"fmt"
)

// Resolver maps a log nickname to a canonical player name.
// Implementations return an error wrapping ErrUnknownPlayer for unregistered nicknames.
type Resolver interface {
	Resolve(nickname string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(nickname string) (string, error)

func (f ResolverFunc) Resolve(nickname string) (string, error) {
	return f(nickname)
}

// ResolverError is a resolver failure unrelated to the log itself, such as a lost
// database connection. It is never a DecodeError.
type ResolverError struct {
	Nickname string
	Err      error
}

func (e *ResolverError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Nickname, e.Err)
}

func (e *ResolverError) Unwrap() error { return e.Err }

// ResolveSeats resolves the nickname of every seat once, in seat order.
// Unknown nicknames yield a DecodeError; any other failure yields a ResolverError.
func ResolveSeats(matchID int64, r Resolver, nicknames [Seats]string) ([Seats]string, error) {
	var names [Seats]string
	for seat, nick := range nicknames {
		name, err := r.Resolve(nick)
		if err != nil {
			if !errors.Is(err, ErrUnknownPlayer) {
				return names, &ResolverError{Nickname: nick, Err: err}
			}
			return names, NewDecodeError(matchID, -1, seat, fmt.Errorf("resolve %q: %w", nick, err))
		}
		names[seat] = name
	}
	return names, nil
}
