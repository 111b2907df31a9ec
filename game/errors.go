package game

import "errors"

// Sentinel errors for the rules engine. Callers check them with errors.Is;
// the values returned by Board methods wrap these with position context.
var (
	// ErrIllegalMove indicates a move that violates the rules: no piece at
	// the source, a piece not owned by the side to move, or a destination
	// failing the legality predicate.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMalformedBoard indicates a serialized board that cannot be decoded.
	ErrMalformedBoard = errors.New("malformed board")
)
