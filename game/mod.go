package game

import "fmt"

// Board dimensions are fixed; Buffalo is always played on 11 files and 7 ranks.
const (
	BoardWidth  = 11
	BoardHeight = 7
)

// Side identifies one of the two competing parties.
type Side int

const (
	SideBuffalo Side = iota
	SideHunters
)

func (s Side) String() string {
	switch s {
	case SideBuffalo:
		return "BUFFALO"
	case SideHunters:
		return "HUNTERS"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideBuffalo {
		return SideHunters
	}
	return SideBuffalo
}

// PieceKind is the closed set of piece types. NoPiece is the zero value and
// stands for "no piece" in outcomes and records.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Buffalo
	Dog
	Chief
)

// Code returns the canonical single-character code used by the board text
// format ('B', 'D', 'C'). NoPiece has no code.
func (k PieceKind) Code() byte {
	switch k {
	case Buffalo:
		return 'B'
	case Dog:
		return 'D'
	case Chief:
		return 'C'
	default:
		return 0
	}
}

func (k PieceKind) String() string {
	switch k {
	case NoPiece:
		return ""
	case Buffalo:
		return "BUFFALO"
	case Dog:
		return "DOG"
	case Chief:
		return "CHIEF"
	default:
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
}

// KindForCode maps a canonical code back to its kind. Returns NoPiece for an
// unknown byte.
func KindForCode(c byte) PieceKind {
	switch c {
	case 'B':
		return Buffalo
	case 'D':
		return Dog
	case 'C':
		return Chief
	default:
		return NoPiece
	}
}

// Piece is an immutable piece value. Owner is redundant with Kind in the
// standard rules (buffalo belong to the buffalo side, dogs and the chief to
// the hunters) but kept explicit.
type Piece struct {
	Kind  PieceKind
	Owner Side
}

// NewPiece builds a piece with the owner implied by its kind.
func NewPiece(kind PieceKind) Piece {
	owner := SideHunters
	if kind == Buffalo {
		owner = SideBuffalo
	}
	return Piece{Kind: kind, Owner: owner}
}

// Position is a 0-indexed board coordinate. X grows to the right, Y grows
// downward: the buffalo start on row 0 and win by reaching row BoardHeight-1.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardWidth && p.Y >= 0 && p.Y < BoardHeight
}

// Move describes one piece relocation. Moves are produced by LegalMoves or
// accepted by ApplyMove; nothing else constructs them in the engine.
type Move struct {
	Side  Side
	Piece Piece
	From  Position
	To    Position
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s %s->%s", m.Side, m.Piece.Kind, m.From, m.To)
}

// GameOverReason explains a terminal position. ReasonNone is the zero value
// for ongoing games.
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	BuffaloCrossed
	BuffaloStuck
	BuffaloExtinct
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case BuffaloCrossed:
		return "buffalo_crossed"
	case BuffaloStuck:
		return "buffalo_stuck"
	case BuffaloExtinct:
		return "buffalo_extinct"
	default:
		return fmt.Sprintf("GameOverReason(%d)", int(r))
	}
}
