package game

import "errors"

var (
	// ErrInsufficientBalance is returned when a commitment would push a
	// participant's balance below zero.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUnknownPlayer is returned when a name does not match any
	// participant in the game.
	ErrUnknownPlayer = errors.New("unknown player")

	// ErrAlreadyFinalized is returned when a game already has a winner.
	ErrAlreadyFinalized = errors.New("game already finalized")
)
