// Package bots provides baseline controllers for self-play.
package bots

import (
	"golang.org/x/exp/rand"

	"buffalo/game"
)

// Random picks uniformly from the legal moves of the side to move. It works
// for either side, mirroring the naive buffalo and hunter strategies.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random controller seeded for reproducible play.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// ChooseMove implements engine.Controller.
func (r *Random) ChooseMove(board *game.Board) (game.Move, bool) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
