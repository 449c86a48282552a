package reconcile

import "time"

// Result is the cross-check outcome for a single match id.
type Result struct {
	// ID is the match id.
	ID int64 `json:"id"`

	// LeftPresent indicates whether the left source holds the match.
	LeftPresent bool `json:"left_present"`

	// RightPresent indicates whether the right source holds the match.
	RightPresent bool `json:"right_present"`

	// LeftError and RightError hold decode failures of a present match.
	LeftError  string `json:"left_error,omitempty"`
	RightError string `json:"right_error,omitempty"`

	// Mismatch lists differing fields, e.g. "games[0].events[3].tile: left=3m#0 right=3m#1".
	Mismatch []string `json:"mismatch"`
}

// Identical reports whether both sides decoded the match to the same record.
func (r Result) Identical() bool {
	return r.LeftPresent && r.RightPresent && r.LeftError == "" && r.RightError == "" && len(r.Mismatch) == 0
}

// Report contains the results of a full cross-check.
type Report struct {
	Left    string   `json:"left"`
	Right   string   `json:"right"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Summary provides aggregate counts of a report.
type Summary struct {
	// TotalMatches is the number of distinct match ids.
	TotalMatches int `json:"total_matches"`

	// MissingLeft and MissingRight count ids absent from one side.
	MissingLeft  int `json:"missing_left"`
	MissingRight int `json:"missing_right"`

	// DecodeFailures counts ids failing to decode on at least one side.
	DecodeFailures int `json:"decode_failures"`

	// Mismatches counts ids decoded on both sides to different records.
	Mismatches int `json:"mismatches"`

	// Identical counts ids decoded on both sides to the same record.
	Identical int `json:"identical"`
}

// Spec bundles the two sources of a cross-check.
type Spec struct {
	Left  Source
	Right Source

	// CacheTTL is the time-to-live of cached indices. Zero disables caching.
	CacheTTL time.Duration
}

// CacheKey returns a key identifying the source pair.
func (s *Spec) CacheKey() string {
	return s.Left.Name() + "|" + s.Right.Name()
}
