// Package render draws a game for a terminal. It only reads the game.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	crossColor  = "9"
	noughtColor = "12"
	emptyGlyph  = "."
)

type Renderer struct {
	output *termenv.Output
}

// New detects the color profile of w. Pass termenv.WithProfile(termenv.Ascii) for plain text.
func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{output: termenv.NewOutput(w, opts...)}
}

// Board writes the grid row by row, highlighting the last move when it is on the board.
func (that *Renderer) Board(game *entity.Game, last *entity.Move) error {
	var sb strings.Builder

	for row := 0; row < game.Size(); row++ {
		cells := make([]string, 0, game.Size())
		for col := 0; col < game.Size(); col++ {
			highlight := last != nil && *last == entity.NewMove(row, col)
			cells = append(cells, that.cell(tictactoe.GetPiece(game, row, col), highlight))
		}

		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(that.output, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Outcome writes a one-line summary of the position.
func (that *Renderer) Outcome(outcome tictactoe.Outcome) error {
	var line string

	switch outcome.Result {
	case tictactoe.Win:
		line = that.cell(outcome.Winner.Mark(), true) + " wins along " + lineString(outcome.Line)
	case tictactoe.Draw:
		line = "draw"
	default:
		line = "undecided"
	}

	if _, err := fmt.Fprintln(that.output, line); err != nil {
		return fmt.Errorf("failed to write outcome: %w", err)
	}

	return nil
}

func (that *Renderer) cell(piece string, highlight bool) string {
	var style termenv.Style

	switch piece {
	case entity.MarkX:
		style = that.output.String(piece).Foreground(that.output.Color(crossColor))
	case entity.MarkO:
		style = that.output.String(piece).Foreground(that.output.Color(noughtColor))
	default:
		return emptyGlyph
	}

	if highlight {
		style = style.Bold()
	}

	return style.String()
}

func lineString(line tictactoe.Line) string {
	cells := make([]string, 0, len(line))
	for _, move := range line {
		cells = append(cells, move.String())
	}

	return strings.Join(cells, " ")
}
