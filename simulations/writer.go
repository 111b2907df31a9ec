package simulations

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"buffalo/engine"
	"buffalo/game"
)

// csvFields is the column layout of per-game move logs. Dataset loaders
// depend on this exact order.
var csvFields = []string{
	"move_number",
	"player",
	"piece_type",
	"from_x",
	"from_y",
	"to_x",
	"to_y",
	"board_before",
	"board_after",
	"captured",
	"captured_piece",
	"legal_moves",
	"move_made",
	"game_over",
	"winner",
	"game_over_reason",
}

// writeGameCSV writes one game's move records. A game stopped at the move
// cap gets a final sentinel row with no positional fields.
func writeGameCSV(path string, g *engine.Game, records []engine.MoveRecord, maxMoves int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game log: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(csvFields); err != nil {
		return fmt.Errorf("failed to write game log header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(recordRow(record)); err != nil {
			return fmt.Errorf("failed to write game log row: %w", err)
		}
	}

	if !g.Over() && g.Board().MoveNumber() >= maxMoves {
		state := g.Board().Serialize()
		row := recordRow(engine.MoveRecord{
			MoveNumber:  g.Board().MoveNumber(),
			Side:        g.Board().CurrentSide(),
			BoardBefore: state,
			BoardAfter:  state,
			GameOver:    true,
			Reason:      ReasonMaxMoves,
		})
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game log row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game log: %w", err)
	}
	return nil
}

// recordRow flattens a move record into the csvFields layout. Absent
// optional fields become empty columns.
func recordRow(record engine.MoveRecord) []string {
	pieceType := ""
	if record.PieceKind != game.NoPiece {
		pieceType = string(record.PieceKind.Code())
	}
	fromX, fromY, toX, toY := "", "", "", ""
	if record.From != nil {
		fromX = strconv.Itoa(record.From.X)
		fromY = strconv.Itoa(record.From.Y)
	}
	if record.To != nil {
		toX = strconv.Itoa(record.To.X)
		toY = strconv.Itoa(record.To.Y)
	}
	capturedPiece := ""
	if record.Captured != game.NoPiece {
		capturedPiece = string(record.Captured.Code())
	}
	winner := ""
	if record.Winner != nil {
		winner = record.Winner.String()
	}

	return []string{
		strconv.Itoa(record.MoveNumber),
		record.Side.String(),
		pieceType,
		fromX,
		fromY,
		toX,
		toY,
		record.BoardBefore,
		record.BoardAfter,
		strconv.FormatBool(record.Captured != game.NoPiece),
		capturedPiece,
		strconv.Itoa(record.LegalMoves),
		strconv.FormatBool(record.MoveMade),
		strconv.FormatBool(record.GameOver),
		winner,
		record.Reason,
	}
}

// writeSummaryCSV writes the run-level per-game summary.
func writeSummaryCSV(path string, summaries []GameSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "winner", "reason", "moves", "captures", "millis"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for _, s := range summaries {
		row := []string{
			strconv.Itoa(int(s.Game)),
			s.Winner,
			s.Reason,
			strconv.Itoa(int(s.Moves)),
			strconv.Itoa(int(s.Captures)),
			strconv.FormatInt(s.Millis, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush summary file: %w", err)
	}
	return nil
}
