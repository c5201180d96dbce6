package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

func TestNewGame(t *testing.T) {
	t.Run("Creates an empty board with the first player to move", func(t *testing.T) {
		// When: a new 3x3 game is created with Nought first
		game, err := NewGame(Nought, 3)

		// Then: the game is empty and Nought moves first
		require.NoError(t, err)
		assert.Equal(t, 3, game.Size())
		assert.Equal(t, Nought, game.Turn())
		assert.Equal(t, 0, game.Len())
		assert.False(t, game.IsFull())
	})

	t.Run("Rejects non-positive sizes", func(t *testing.T) {
		for _, size := range []int{0, -1} {
			game, err := NewGame(Cross, size)

			require.ErrorIs(t, err, apperror.ErrInvalidSize)
			assert.Nil(t, game)
		}
	})

	t.Run("Rejects an unknown player", func(t *testing.T) {
		_, err := NewGame(Player(0), 3)

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})
}

func TestGame_Place(t *testing.T) {
	t.Run("Records the move and flips the turn", func(t *testing.T) {
		// Given: a new game
		game, err := NewGame(Cross, 3)
		require.NoError(t, err)

		// When: Cross plays the center
		next, err := game.Place(NewMove(1, 1))
		require.NoError(t, err)

		// Then: the successor has one more move and Nought to play
		assert.Equal(t, 1, next.Len())
		assert.Equal(t, Nought, next.Turn())
		owner, ok := next.Owner(NewMove(1, 1))
		assert.True(t, ok)
		assert.Equal(t, Cross, owner)
	})

	t.Run("Leaves the original game untouched", func(t *testing.T) {
		// Given: a game with one move
		game, err := ParseBoard(Nought, "X..", "...", "...")
		require.NoError(t, err)
		before := game.Key()

		// When: two sibling successors are created
		first, err := game.Place(NewMove(0, 1))
		require.NoError(t, err)
		second, err := game.Place(NewMove(2, 2))
		require.NoError(t, err)

		// Then: neither sibling sees the other's move and the parent is unchanged
		assert.Equal(t, before, game.Key())
		assert.Equal(t, "", first.Piece(2, 2))
		assert.Equal(t, "", second.Piece(0, 1))
	})

	t.Run("Rejects out of range cells", func(t *testing.T) {
		game, err := NewGame(Cross, 3)
		require.NoError(t, err)

		for _, move := range []Move{NewMove(-1, 0), NewMove(0, 3), NewMove(3, 3)} {
			_, err = game.Place(move)

			require.ErrorIs(t, err, apperror.ErrCellOutOfRange)
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
		}
	})

	t.Run("Rejects occupied cells", func(t *testing.T) {
		game, err := ParseBoard(Nought, "X..", "...", "...")
		require.NoError(t, err)

		_, err = game.Place(NewMove(0, 0))

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

func TestGame_Piece(t *testing.T) {
	// Given: a board with both marks
	game, err := ParseBoard(Cross, "XO.", "...", "..O")
	require.NoError(t, err)

	// Then: pieces are reported by mark
	assert.Equal(t, MarkX, game.Piece(0, 0))
	assert.Equal(t, MarkO, game.Piece(0, 1))
	assert.Equal(t, EmptyCell, game.Piece(0, 2))
	assert.Equal(t, MarkO, game.Piece(2, 2))
	assert.Equal(t, EmptyCell, game.Piece(5, 5))
}

func TestGame_Key(t *testing.T) {
	t.Run("Encodes size, turn and cells", func(t *testing.T) {
		game, err := ParseBoard(Nought, "X..", ".O.", "..X")
		require.NoError(t, err)

		assert.Equal(t, "3:O:X...O...X", game.Key())
	})

	t.Run("Does not depend on move order", func(t *testing.T) {
		// Given: the same position reached in two different orders
		game, err := NewGame(Cross, 3)
		require.NoError(t, err)

		a := mustPlace(t, game, NewMove(0, 0), NewMove(1, 1), NewMove(2, 2), NewMove(0, 2))
		b := mustPlace(t, game, NewMove(2, 2), NewMove(0, 2), NewMove(0, 0), NewMove(1, 1))

		// Then: the keys are identical
		assert.Equal(t, a.Key(), b.Key())
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Rejects ragged rows", func(t *testing.T) {
		_, err := ParseBoard(Cross, "X..", "..", "...")

		require.ErrorIs(t, err, apperror.ErrInvalidSize)
	})

	t.Run("Rejects unknown glyphs", func(t *testing.T) {
		_, err := ParseBoard(Cross, "X..", ".#.", "...")

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})

	t.Run("Full board", func(t *testing.T) {
		game, err := ParseBoard(Cross, "XOX", "XOO", "OXX")

		require.NoError(t, err)
		assert.True(t, game.IsFull())
		assert.Equal(t, 9, game.Len())
	})
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, Nought, Cross.Other())
	assert.Equal(t, Cross, Nought.Other())
	assert.Equal(t, "X", Cross.Mark())
	assert.Equal(t, "O", Nought.Mark())
	assert.False(t, Player(0).Valid())

	for input, want := range map[string]Player{"X": Cross, "o": Nought, "cross": Cross, " Nought ": Nought} {
		got, err := ParsePlayer(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParsePlayer("Z")
	require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
}

func mustPlace(t *testing.T, game *Game, moves ...Move) *Game {
	t.Helper()

	var err error
	for _, move := range moves {
		game, err = game.Place(move)
		require.NoError(t, err)
	}

	return game
}
