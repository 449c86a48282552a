package mjson

import (
	"fmt"

	"match-canon/feature/canon"
)

// Repository allocates tile instances from per-kind pools. Allocation is one way;
// use a fresh Repository for every game.
type Repository struct {
	pools [canon.KindCount][]canon.Instance
}

// NewRepository returns a repository holding all 136 instances. Copies are handed out
// in ascending order, except that the red copy of a five goes last.
func NewRepository() *Repository {
	r := &Repository{}
	for k := canon.Kind(0); k < canon.KindCount; k++ {
		order := []int{0, 1, 2, 3}
		if k.IsFive() {
			order = []int{1, 2, 3, 0}
		}
		pool := make([]canon.Instance, 0, 4)
		for _, c := range order {
			pool = append(pool, canon.NewInstance(k, c))
		}
		r.pools[k] = pool
	}
	return r
}

// Allocate removes and returns one instance for a kind code. Red five codes take the
// red copy specifically.
func (r *Repository) Allocate(code int) (canon.Instance, error) {
	kind, red, ok := codeKind(code)
	if !ok {
		return 0, fmt.Errorf("allocate code %d: %w", code, canon.ErrMalformedToken)
	}
	if red {
		return r.take(kind, canon.NewInstance(kind, 0))
	}
	return r.AllocateKind(kind)
}

// AllocateKind removes and returns the next instance of kind.
func (r *Repository) AllocateKind(kind canon.Kind) (canon.Instance, error) {
	pool := r.pools[kind]
	if len(pool) == 0 {
		return 0, fmt.Errorf("kind %s: %w", kind, canon.ErrPoolExhausted)
	}
	inst := pool[0]
	r.pools[kind] = pool[1:]
	return inst, nil
}

// Remaining returns how many instances of kind are still unallocated.
func (r *Repository) Remaining(kind canon.Kind) int {
	return len(r.pools[kind])
}

func (r *Repository) take(kind canon.Kind, want canon.Instance) (canon.Instance, error) {
	pool := r.pools[kind]
	for i, inst := range pool {
		if inst == want {
			r.pools[kind] = append(pool[:i:i], pool[i+1:]...)
			return inst, nil
		}
	}
	return 0, fmt.Errorf("red %s: %w", kind, canon.ErrPoolExhausted)
}
