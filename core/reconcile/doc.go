// Package reconcile cross-checks canonical matches decoded from two sources.
//
// The same match logged in both formats must decode to identical canonical records.
// This package loads an index from each source, builds the union of match ids and
// reports, per id, whether each side has the match and which fields differ.
//
// # Architecture
//
// 1. Source: loads every match of one side, keyed by match id. Decode failures are
// reported per id instead of failing the whole load.
//
// 2. Engine: builds the union of ids, detects presence and absence, and diffs the
// matches present on both sides field by field (CompareMatches).
//
// 3. Cache: TTL-based cache of both indices with stampede protection, so repeated
// HTTP cross-checks do not decode the whole bucket again.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Left:     svc.Source(convert.FormatMjlog),
//	    Right:    svc.Source(convert.FormatMjson),
//	    CacheTTL: 5 * time.Minute,
//	}
//
//	report, err := reconcile.ReconcileAll(ctx, spec)
//
//	// single pair of matches
//	result := reconcile.ReconcileOne(id, left, right)
package reconcile
