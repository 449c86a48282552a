package reconcile

import (
	"context"

	"match-canon/feature/canon"
)

// Source loads all matches of one side of a cross-check.
type Source interface {
	// Name identifies the source in reports and cache keys.
	Name() string

	// LoadIndex decodes every match of the source. A match that fails to decode goes
	// to Index.Failures; the error return is reserved for failures of the source itself.
	LoadIndex(ctx context.Context) (*Index, error)
}

// Index is the content of one source.
type Index struct {
	Matches  map[int64]*canon.Match
	Failures map[int64]string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		Matches:  make(map[int64]*canon.Match),
		Failures: make(map[int64]string),
	}
}

// has reports whether id is known to the source, decoded or not.
func (x *Index) has(id int64) bool {
	if _, ok := x.Matches[id]; ok {
		return true
	}
	_, ok := x.Failures[id]
	return ok
}
