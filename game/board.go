package game

import "fmt"

var (
	initialDogFiles  = []int{3, 4, 6, 7}
	initialChiefFile = 5
)

// Board is the aggregate root of one game: piece placement, side to move and
// the count of applied moves. It is mutated only through ApplyMove.
type Board struct {
	pieces      map[Position]Piece
	currentSide Side
	moveNumber  int
}

// NewBoard returns a board in the standard starting position: buffalo across
// the whole top row, dogs and the chief on the second-to-last row.
func NewBoard() *Board {
	b := &Board{
		pieces:      make(map[Position]Piece),
		currentSide: SideBuffalo,
	}
	for x := 0; x < BoardWidth; x++ {
		b.pieces[Position{x, 0}] = NewPiece(Buffalo)
	}
	for _, x := range initialDogFiles {
		b.pieces[Position{x, BoardHeight - 2}] = NewPiece(Dog)
	}
	b.pieces[Position{initialChiefFile, BoardHeight - 2}] = NewPiece(Chief)
	return b
}

// NewBoardFromPieces builds a board from an explicit placement, used when
// reconstructing positions from recorded history. The mapping is copied.
func NewBoardFromPieces(pieces map[Position]Piece, currentSide Side) *Board {
	b := &Board{
		pieces:      make(map[Position]Piece, len(pieces)),
		currentSide: currentSide,
	}
	for pos, piece := range pieces {
		b.pieces[pos] = piece
	}
	return b
}

// Copy returns an independent deep copy of the board.
func (b *Board) Copy() *Board {
	c := NewBoardFromPieces(b.pieces, b.currentSide)
	c.moveNumber = b.moveNumber
	return c
}

// PieceAt returns the piece on the given square, if any.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	piece, ok := b.pieces[pos]
	return piece, ok
}

// CurrentSide returns the side to move.
func (b *Board) CurrentSide() Side {
	return b.currentSide
}

// MoveNumber returns the number of moves applied so far.
func (b *Board) MoveNumber() int {
	return b.moveNumber
}

// Pieces returns a copy of the placement mapping.
func (b *Board) Pieces() map[Position]Piece {
	pieces := make(map[Position]Piece, len(b.pieces))
	for pos, piece := range b.pieces {
		pieces[pos] = piece
	}
	return pieces
}

// IsLegal reports whether moving piece from one square to another is legal.
// It must only be called for pieces owned by the side to move; the board is
// never mutated.
func (b *Board) IsLegal(piece Piece, from, to Position) bool {
	if piece.Owner != b.currentSide {
		panic("game: IsLegal called for a piece not owned by the side to move")
	}

	if !to.InBounds() {
		return false
	}
	if from == to {
		return false
	}

	atDest, destOccupied := b.pieces[to]
	notOnBottomRow := to.Y != BoardHeight-1
	notOnTopRow := to.Y != 0

	switch piece.Kind {
	case Buffalo:
		// One square straight down, never capturing.
		return to.X == from.X && to.Y == from.Y+1 && !destOccupied

	case Chief:
		dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
		if dx > 1 || dy > 1 {
			return false
		}
		// The chief stays off both edge rows, even to capture.
		if !notOnBottomRow || !notOnTopRow {
			return false
		}
		return !destOccupied || atDest.Owner != piece.Owner

	case Dog:
		// Dogs block, they never capture.
		if destOccupied {
			return false
		}
		if !notOnBottomRow || !notOnTopRow {
			return false
		}
		dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
		if dx != dy && to.X != from.X && to.Y != from.Y {
			return false
		}
		return b.pathClear(from, to)

	default:
		return false
	}
}

// pathClear reports whether every square strictly between from and to along a
// straight line is empty.
func (b *Board) pathClear(from, to Position) bool {
	step := Position{sign(to.X - from.X), sign(to.Y - from.Y)}
	curr := Position{from.X + step.X, from.Y + step.Y}
	for curr != to {
		if _, occupied := b.pieces[curr]; occupied {
			return false
		}
		curr = Position{curr.X + step.X, curr.Y + step.Y}
	}
	return true
}

// LegalMoves returns all legal moves for the side to move. The board is not
// mutated and enumeration order is deterministic: source squares in row-major
// order, then destinations in row-major order.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	for fromY := 0; fromY < BoardHeight; fromY++ {
		for fromX := 0; fromX < BoardWidth; fromX++ {
			from := Position{fromX, fromY}
			piece, ok := b.pieces[from]
			if !ok || piece.Owner != b.currentSide {
				continue
			}
			for toY := 0; toY < BoardHeight; toY++ {
				for toX := 0; toX < BoardWidth; toX++ {
					to := Position{toX, toY}
					if b.IsLegal(piece, from, to) {
						moves = append(moves, Move{
							Side:  b.currentSide,
							Piece: piece,
							From:  from,
							To:    to,
						})
					}
				}
			}
		}
	}
	return moves
}

// CheckWinner evaluates the terminal-state rules and returns the winner and
// reason, or over=false for an ongoing game.
func (b *Board) CheckWinner() (winner Side, reason GameOverReason, over bool) {
	// Any buffalo on the bottom row wins outright.
	for x := 0; x < BoardWidth; x++ {
		if piece, ok := b.pieces[Position{x, BoardHeight - 1}]; ok && piece.Kind == Buffalo {
			return SideBuffalo, BuffaloCrossed, true
		}
	}

	// Buffalo to move with nothing to play covers both "all blocked" and
	// "none left".
	if b.currentSide == SideBuffalo && len(b.LegalMoves()) == 0 {
		return SideHunters, BuffaloStuck, true
	}

	// Extinction check for the hunters-to-move case.
	for _, piece := range b.pieces {
		if piece.Kind == Buffalo {
			return SideBuffalo, ReasonNone, false
		}
	}
	return SideHunters, BuffaloExtinct, true
}

// MoveOutcome is what ApplyMove reports back: the captured piece kind (or
// NoPiece) and the terminal verdict after the move.
type MoveOutcome struct {
	Captured PieceKind
	Winner   Side
	Reason   GameOverReason
	GameOver bool
}

// ApplyMove validates and applies one move for the side to move. On success
// it removes any captured piece, relocates the mover, increments the move
// counter, flips the side to move and reruns terminal detection. On failure
// the board is unchanged and the error wraps ErrIllegalMove.
func (b *Board) ApplyMove(from, to Position) (MoveOutcome, error) {
	piece, ok := b.pieces[from]
	if !ok {
		return MoveOutcome{}, fmt.Errorf("%w: no piece at %s", ErrIllegalMove, from)
	}
	if piece.Owner != b.currentSide {
		return MoveOutcome{}, fmt.Errorf("%w: piece at %s does not belong to %s", ErrIllegalMove, from, b.currentSide)
	}
	if !b.IsLegal(piece, from, to) {
		return MoveOutcome{}, fmt.Errorf("%w: %s %s->%s", ErrIllegalMove, piece.Kind, from, to)
	}

	captured := NoPiece
	if atDest, occupied := b.pieces[to]; occupied {
		captured = atDest.Kind
	}

	b.pieces[to] = piece
	delete(b.pieces, from)
	b.moveNumber++
	b.currentSide = b.currentSide.Other()

	winner, reason, over := b.CheckWinner()
	return MoveOutcome{
		Captured: captured,
		Winner:   winner,
		Reason:   reason,
		GameOver: over,
	}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
