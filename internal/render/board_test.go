package render

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

func TestRenderer_Board(t *testing.T) {
	// Given: a plain-text renderer and a position
	var buf bytes.Buffer
	renderer := New(&buf, termenv.WithProfile(termenv.Ascii))

	game, err := entity.ParseBoard(entity.Cross, "XO.", "...", "..X")
	require.NoError(t, err)
	last := entity.NewMove(2, 2)

	// When: rendering the board
	require.NoError(t, renderer.Board(game, &last))

	// Then: every row is written with marks and empty glyphs
	assert.Equal(t, "X O .\n. . .\n. . X\n", buf.String())
}

func TestRenderer_Outcome(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected string
	}{
		{name: "win", rows: []string{"XXX", "OO.", "..."}, expected: "X wins along (0,0) (0,1) (0,2)\n"},
		{name: "draw", rows: []string{"XOX", "XOO", "OXX"}, expected: "draw\n"},
		{name: "undecided", rows: []string{"X..", "...", "..."}, expected: "undecided\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderer := New(&buf, termenv.WithProfile(termenv.Ascii))

			game, err := entity.ParseBoard(entity.Nought, tt.rows...)
			require.NoError(t, err)

			require.NoError(t, renderer.Outcome(tictactoe.GameOutcome(game)))

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
