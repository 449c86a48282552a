// Package canon defines the canonical match model shared by every log decoder.
//
// A Match is built once by a decoder (see feature/mjlog and feature/mjson) and is
// read-only afterwards. Statistics and report layers consume these values; nothing in
// this package performs I/O.
//
// # Tiles
//
// Kind identifies one of the 34 abstract tiles (0-8 characters, 9-17 circles, 18-26
// bamboo, 27-33 honors). Instance identifies one of the 136 physical tiles and is
// kind*4 + copy. Copy 0 of every numeral five is the red five.
//
// # Events and results
//
// EventItem is a tagged union keyed by EventKind (draw, discard and the five call
// variants). GameResult is a tagged union keyed by ResultKind (win or draw). Both
// marshal to the short-tag JSON layout used by the legacy tooling.
//
// # Errors
//
// Decoders report failures with the sentinel errors of this package wrapped in a
// *DecodeError carrying the match, game and seat the failure belongs to.
package canon
