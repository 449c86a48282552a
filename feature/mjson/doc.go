// Package mjson decodes Format B match logs into canonical matches.
//
// A Format B log records, per seat, the tiles it was dealt, the tiles it gained (draws
// and calls) and the tiles it discarded, all as two-digit kind codes. The relative order
// of the four seats' actions and the physical identity of every tile are lost, so the
// decoder replays each game:
//
//   - a Repository hands out concrete tile instances for kind codes;
//   - a replay state machine (call check, draw, discard) walks the per-seat lists
//     with one cursor each, deciding at every discard whether another seat called it;
//   - result strings are parsed into wins or draws.
//
// Capped wins carry no fu in the source. The decoder substitutes a fixed value per
// doubles tier so the result stays reproducible.
package mjson
