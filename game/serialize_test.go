package game

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSerializeInitialBoard(t *testing.T) {
	want := strings.Join([]string{
		"BBBBBBBBBBB",
		"...........",
		"...........",
		"...........",
		"...........",
		"...DDCDD...",
		"...........",
	}, "/")

	require.Equal(t, want, NewBoard().Serialize())
}

func TestSerializeRoundTripPreservesPlacement(t *testing.T) {
	b := NewBoard()
	_, err := b.ApplyMove(Position{4, 0}, Position{4, 1})
	require.NoError(t, err)

	decoded, err := Deserialize(b.Serialize())
	require.NoError(t, err)

	if diff := cmp.Diff(b.Pieces(), decoded.Pieces()); diff != "" {
		t.Errorf("placement changed across a round trip (-want +got):\n%s", diff)
	}
}

func TestDeserializeResetsTurnState(t *testing.T) {
	b := NewBoard()
	_, err := b.ApplyMove(Position{4, 0}, Position{4, 1})
	require.NoError(t, err)
	require.Equal(t, SideHunters, b.CurrentSide())

	// The format encodes placement only: side and move number reset.
	decoded, err := Deserialize(b.Serialize())
	require.NoError(t, err)
	require.Equal(t, SideBuffalo, decoded.CurrentSide())
	require.Equal(t, 0, decoded.MoveNumber())
}

func TestDeserializeOwnersFollowKinds(t *testing.T) {
	decoded, err := Deserialize(strings.Join([]string{
		"B..........",
		"...........",
		"...........",
		"...........",
		"...........",
		".D...C.....",
		"...........",
	}, "/"))
	require.NoError(t, err)

	piece, ok := decoded.PieceAt(Position{0, 0})
	require.True(t, ok)
	require.Equal(t, Piece{Buffalo, SideBuffalo}, piece)

	piece, ok = decoded.PieceAt(Position{1, 5})
	require.True(t, ok)
	require.Equal(t, Piece{Dog, SideHunters}, piece)

	piece, ok = decoded.PieceAt(Position{5, 5})
	require.True(t, ok)
	require.Equal(t, Piece{Chief, SideHunters}, piece)
}

func TestDeserializeRejectsMalformedInput(t *testing.T) {
	emptyRow := strings.Repeat(".", BoardWidth)

	t.Run("wrong row count", func(t *testing.T) {
		data := strings.Join([]string{emptyRow, emptyRow, emptyRow}, "/")
		_, err := Deserialize(data)
		require.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("wrong row width", func(t *testing.T) {
		rows := make([]string, BoardHeight)
		for i := range rows {
			rows[i] = emptyRow
		}
		rows[3] = "...."
		_, err := Deserialize(strings.Join(rows, "/"))
		require.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("unknown piece code", func(t *testing.T) {
		rows := make([]string, BoardHeight)
		for i := range rows {
			rows[i] = emptyRow
		}
		rows[0] = "X.........."
		_, err := Deserialize(strings.Join(rows, "/"))
		require.ErrorIs(t, err, ErrMalformedBoard)
	})
}
