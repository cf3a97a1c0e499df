// Package game implements the core Bonusly poker bookkeeping: participants
// and their balances, round-by-round action recording, pot tracking and
// winner settlement for a single game.
//
// The package is deliberately presentation-agnostic. It knows nothing about
// terminals or files, only about the rules of recording a game. Interactive
// input arrives through the ActionSource interface and progress lines leave
// through OutputSink.
package game
