package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func TestGameStart(t *testing.T) {
	t.Run("Starts an empty game", func(t *testing.T) {
		// When: starting a 4x4 game with Cross first
		game, err := GameStart(entity.Cross, 4)

		// Then: the board is empty and Cross is to move
		require.NoError(t, err)
		assert.Equal(t, 4, game.Size())
		assert.Equal(t, entity.Cross, Turn(game))
		assert.Len(t, PossibleMoves(game), 16)
	})

	t.Run("Rejects a non-positive size", func(t *testing.T) {
		_, err := GameStart(entity.Cross, 0)

		require.ErrorIs(t, err, apperror.ErrInvalidSize)
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Places a piece and flips the turn", func(t *testing.T) {
		// Given: a new game
		game, err := GameStart(entity.Cross, 3)
		require.NoError(t, err)

		// When: Cross plays (0,0)
		next, err := ApplyMove(game, CreateMove(0, 0))
		require.NoError(t, err)

		// Then: the successor reflects the move and the turn change
		assert.Equal(t, entity.MarkX, GetPiece(next, 0, 0))
		assert.Equal(t, entity.Nought, Turn(next))
		assert.Equal(t, game.Len()+1, next.Len())

		// Then: the original game is unchanged
		assert.Equal(t, entity.EmptyCell, GetPiece(game, 0, 0))
		assert.Equal(t, entity.Cross, Turn(game))
	})

	t.Run("Every legal move adds exactly one piece", func(t *testing.T) {
		game := board(t, entity.Nought, "X..", ".X.", "O..")

		for _, move := range PossibleMoves(game) {
			next, err := ApplyMove(game, move)
			require.NoError(t, err)

			assert.Equal(t, game.Len()+1, next.Len())
			assert.Equal(t, game.Turn().Other(), next.Turn())
		}
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where (0,0) is taken
		game := board(t, entity.Nought, "X..", "...", "...")

		// When: Nought tries to play the same square
		next, err := ApplyMove(game, CreateMove(0, 0))

		// Then: an invalid move error is returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Nil(t, next)
	})

	t.Run("Invalid cell", func(t *testing.T) {
		game, err := GameStart(entity.Cross, 3)
		require.NoError(t, err)

		_, err = ApplyMove(game, CreateMove(3, 0))
		require.ErrorIs(t, err, apperror.ErrCellOutOfRange)

		_, err = ApplyMove(game, CreateMove(0, -1))
		require.ErrorIs(t, err, apperror.ErrCellOutOfRange)
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a game Cross has already won
		game := board(t, entity.Nought, "XXX", "OO.", "...")

		// When: Nought tries to play on
		_, err := ApplyMove(game, CreateMove(1, 2))

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestPossibleMoves(t *testing.T) {
	t.Run("Lists empty cells in row-major order", func(t *testing.T) {
		game := board(t, entity.Cross, "X.O", ".X.", "O..")

		m := entity.NewMove
		assert.Equal(t, []entity.Move{m(0, 1), m(1, 0), m(1, 2), m(2, 1), m(2, 2)}, PossibleMoves(game))
	})

	t.Run("Empty on a full board", func(t *testing.T) {
		assert.Empty(t, PossibleMoves(board(t, entity.Cross, "XOX", "XOO", "OXX")))
	})
}
