// Package mjlog decodes Format A match logs into canonical matches.
//
// A Format A log is a flat stream of attribute records:
//
//	<UN n0="..." n1="..." n2="..." n3="..."/>
//	<INIT seed="0,0,0,2,1,52" ten="250,250,250,250" hai0="..." .../>
//	<T46/><D46/><N who="1" m="8299"/>
//	<AGARI ten="30,1000,0" who="1" fromWho="0" sc="..." owari="..."/>
//
// Tokenize splits the stream into nodes without interpreting them. Decoder walks the
// nodes with a small state machine (idle, in game, ended), decoding draws, discards and
// packed call integers into canonical events, and tracking running scores so that each
// result carries the real per-seat score change.
//
// Game boundaries are not marked in the stream: a game is closed by the first record
// after its result that is not itself a result.
package mjlog
