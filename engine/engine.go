// Package engine drives one game of Buffalo: it asks the controller of the
// side to move for a move, applies it to the board, and keeps an append-only
// history of per-move audit records.
package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"buffalo/game"
)

var (
	// ErrGameOver is returned by Step and ApplyMove once the game is over.
	ErrGameOver = errors.New("game is over - no moves allowed")

	// ErrControllerContract is returned when a controller declines to move
	// even though legal moves exist. The loop fails loudly rather than
	// substituting a move on the controller's behalf.
	ErrControllerContract = errors.New("controller contract violation")
)

// ReasonNoMoves is the record sentinel for a turn on which the side to move
// had no legal moves and no move was made.
const ReasonNoMoves = "no_moves"

// Controller picks a move for one side. It is called only on that side's
// turn and gets read access to the board; it must not mutate it. Returning
// false means the controller has no move to make.
type Controller interface {
	ChooseMove(board *game.Board) (game.Move, bool)
}

// MoveRecord is the immutable audit entry built once per turn. For a turn
// with no move made, the positional fields are nil, PieceKind and Captured
// are NoPiece, and Reason carries ReasonNoMoves.
type MoveRecord struct {
	MoveNumber  int
	Side        game.Side
	PieceKind   game.PieceKind
	From        *game.Position
	To          *game.Position
	BoardBefore string
	BoardAfter  string
	Captured    game.PieceKind
	LegalMoves  int
	MoveMade    bool
	GameOver    bool
	Winner      *game.Side
	Reason      string
}

// Game owns a board and orchestrates the turn loop.
type Game struct {
	board       *game.Board
	controllers map[game.Side]Controller
	history     []MoveRecord
	gameOver    bool
	winner      *game.Side
	reason      string
}

// NewGame starts a game from the standard opening position.
func NewGame(buffalo, hunters Controller) *Game {
	return NewGameWithBoard(buffalo, hunters, game.NewBoard())
}

// NewGameWithBoard starts a game from an explicit position. The game takes
// sole ownership of the board.
func NewGameWithBoard(buffalo, hunters Controller, board *game.Board) *Game {
	return &Game{
		board: board,
		controllers: map[game.Side]Controller{
			game.SideBuffalo: buffalo,
			game.SideHunters: hunters,
		},
	}
}

// Board returns the game's board. Callers other than the game itself must
// treat it as read-only.
func (g *Game) Board() *game.Board {
	return g.board
}

// History returns the records of all turns taken so far, in order.
func (g *Game) History() []MoveRecord {
	return g.history
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.gameOver
}

// Winner returns the winning side once the game is over.
func (g *Game) Winner() (game.Side, bool) {
	if g.winner == nil {
		return 0, false
	}
	return *g.winner, true
}

// Reason returns why the game ended, or "" while it is ongoing.
func (g *Game) Reason() string {
	return g.reason
}

// Step advances the game by one turn: it asks the current side's controller
// for a move, applies it, and records the result. Validity of the chosen
// move is enforced solely by the board's ApplyMove.
func (g *Game) Step() (*MoveRecord, error) {
	if g.gameOver {
		return nil, ErrGameOver
	}

	side := g.board.CurrentSide()
	controller := g.controllers[side]
	if controller == nil {
		return nil, fmt.Errorf("no controller registered for %s", side)
	}

	legal := g.board.LegalMoves()
	if len(legal) == 0 {
		return g.recordNoMove(side), nil
	}

	move, ok := controller.ChooseMove(g.board)
	if !ok {
		return nil, fmt.Errorf("%w: %s declined to move with %d legal moves", ErrControllerContract, side, len(legal))
	}

	return g.applyAndRecord(move.From, move.To, len(legal))
}

// ApplyMove plays one explicit move for the side to move, bypassing its
// controller. Used for manual play and replay.
func (g *Game) ApplyMove(from, to game.Position) (*MoveRecord, error) {
	if g.gameOver {
		return nil, ErrGameOver
	}
	return g.applyAndRecord(from, to, len(g.board.LegalMoves()))
}

func (g *Game) applyAndRecord(from, to game.Position, legalMoves int) (*MoveRecord, error) {
	side := g.board.CurrentSide()
	piece, _ := g.board.PieceAt(from)
	before := g.board.Serialize()

	outcome, err := g.board.ApplyMove(from, to)
	if err != nil {
		return nil, err
	}

	record := MoveRecord{
		MoveNumber:  g.board.MoveNumber(),
		Side:        side,
		PieceKind:   piece.Kind,
		From:        &from,
		To:          &to,
		BoardBefore: before,
		BoardAfter:  g.board.Serialize(),
		Captured:    outcome.Captured,
		LegalMoves:  legalMoves,
		MoveMade:    true,
	}
	if outcome.GameOver {
		winner := outcome.Winner
		record.GameOver = true
		record.Winner = &winner
		record.Reason = outcome.Reason.String()
		g.gameOver = true
		g.winner = &winner
		g.reason = record.Reason
	}

	g.history = append(g.history, record)
	return &g.history[len(g.history)-1], nil
}

func (g *Game) recordNoMove(side game.Side) *MoveRecord {
	state := g.board.Serialize()
	record := MoveRecord{
		MoveNumber:  g.board.MoveNumber(),
		Side:        side,
		BoardBefore: state,
		BoardAfter:  state,
		GameOver:    true,
		Reason:      ReasonNoMoves,
	}
	if winner, _, over := g.board.CheckWinner(); over {
		w := winner
		record.Winner = &w
	}

	g.gameOver = true
	g.winner = record.Winner
	g.reason = record.Reason
	g.history = append(g.history, record)
	return &g.history[len(g.history)-1]
}

// Run executes the turn loop until the game ends or maxMoves moves have been
// applied, and returns whether a winner was found.
func (g *Game) Run(maxMoves int) (winner *game.Side, reason string, err error) {
	log.Info().Msgf("%s is starting", g.board.CurrentSide())

	for !g.gameOver && g.board.MoveNumber() < maxMoves {
		if _, err := g.Step(); err != nil {
			return nil, "", err
		}
	}

	if g.gameOver {
		if g.winner != nil {
			log.Info().Msgf("game over after %d moves: %s wins (%s)", g.board.MoveNumber(), *g.winner, g.reason)
		} else {
			log.Info().Msgf("game over after %d moves: no winner (%s)", g.board.MoveNumber(), g.reason)
		}
	} else {
		log.Info().Msgf("stopped after %d moves with no winner", g.board.MoveNumber())
	}
	return g.winner, g.reason, nil
}
