package reconcile

import (
	"context"
	"sort"

	"match-canon/feature/canon"
)

// ReconcileAll loads both sources and cross-checks every match id.
func ReconcileAll(ctx context.Context, spec *Spec) (*Report, error) {
	cache, err := BuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	return reconcileFromCache(spec, cache), nil
}

// ReconcileCached is ReconcileAll over indices cached for spec.CacheTTL.
func ReconcileCached(ctx context.Context, spec *Spec) (*Report, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	return reconcileFromCache(spec, cache), nil
}

// ReconcileOne cross-checks a single pair. Either match may be nil when absent.
func ReconcileOne(id int64, left, right *canon.Match) Result {
	result := Result{
		ID:           id,
		LeftPresent:  left != nil,
		RightPresent: right != nil,
		Mismatch:     []string{},
	}
	if left != nil && right != nil {
		result.Mismatch = CompareMatches(left, right)
	}
	return result
}

func reconcileFromCache(spec *Spec, cache *Cache) *Report {
	union := buildUnion(cache.Left, cache.Right)

	results := make([]Result, 0, len(union))
	for id := range union {
		results = append(results, buildResult(id, cache.Left, cache.Right))
	}

	// deterministic output
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})

	return &Report{
		Left:    spec.Left.Name(),
		Right:   spec.Right.Name(),
		Results: results,
		Summary: summarize(results),
	}
}

// buildUnion collects the ids known to either side, decoded or failed.
func buildUnion(left, right *Index) map[int64]struct{} {
	union := make(map[int64]struct{})
	for _, idx := range []*Index{left, right} {
		for id := range idx.Matches {
			union[id] = struct{}{}
		}
		for id := range idx.Failures {
			union[id] = struct{}{}
		}
	}
	return union
}

func buildResult(id int64, left, right *Index) Result {
	result := ReconcileOne(id, left.Matches[id], right.Matches[id])
	result.LeftPresent = left.has(id)
	result.RightPresent = right.has(id)
	result.LeftError = left.Failures[id]
	result.RightError = right.Failures[id]
	return result
}

func summarize(results []Result) Summary {
	s := Summary{TotalMatches: len(results)}
	for _, r := range results {
		switch {
		case !r.LeftPresent:
			s.MissingLeft++
		case !r.RightPresent:
			s.MissingRight++
		case r.LeftError != "" || r.RightError != "":
			s.DecodeFailures++
		case len(r.Mismatch) > 0:
			s.Mismatches++
		default:
			s.Identical++
		}
	}
	return s
}
