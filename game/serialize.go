package game

import (
	"fmt"
	"strings"
)

// EmptySquare is the text-format code for an unoccupied square.
const EmptySquare = '.'

// Serialize encodes the piece placement as BoardHeight rows of BoardWidth
// characters, top row (y=0) first, joined by '/'. Side to move and move
// number are not part of the format.
func (b *Board) Serialize() string {
	var sb strings.Builder
	for y := 0; y < BoardHeight; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		for x := 0; x < BoardWidth; x++ {
			if piece, ok := b.pieces[Position{x, y}]; ok {
				sb.WriteByte(piece.Kind.Code())
			} else {
				sb.WriteByte(EmptySquare)
			}
		}
	}
	return sb.String()
}

// Deserialize decodes a board produced by Serialize. The format carries
// placement only, so the result always has the buffalo to move and a move
// number of zero; callers needing turn fidelity must track the side
// themselves. Errors wrap ErrMalformedBoard.
func Deserialize(data string) (*Board, error) {
	rows := strings.Split(data, "/")
	if len(rows) != BoardHeight {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedBoard, BoardHeight, len(rows))
	}

	b := &Board{
		pieces:      make(map[Position]Piece),
		currentSide: SideBuffalo,
	}
	for y, row := range rows {
		if len(row) != BoardWidth {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrMalformedBoard, y, len(row), BoardWidth)
		}
		for x := 0; x < BoardWidth; x++ {
			c := row[x]
			if c == EmptySquare {
				continue
			}
			kind := KindForCode(c)
			if kind == NoPiece {
				return nil, fmt.Errorf("%w: unknown piece code %q at %s", ErrMalformedBoard, string(c), Position{x, y})
			}
			b.pieces[Position{x, y}] = NewPiece(kind)
		}
	}
	return b, nil
}
