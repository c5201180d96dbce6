package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// GameStart creates an empty size×size game with first to move.
func GameStart(first entity.Player, size int) (*entity.Game, error) {
	game, err := entity.NewGame(first, size)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return game, nil
}

func CreateMove(row, col int) entity.Move {
	return entity.NewMove(row, col)
}

// ApplyMove returns the successor of game after the side to move plays move.
// The input game is not modified, so callers can explore sibling moves from it.
func ApplyMove(game *entity.Game, move entity.Move) (*entity.Game, error) {
	if GameOver(game) {
		return nil, apperror.ErrGameFinished
	}

	next, err := game.Place(move)
	if err != nil {
		return nil, fmt.Errorf("invalid turn: %w", err)
	}

	return next, nil
}

// PossibleMoves lists the empty cells in row-major order.
func PossibleMoves(game *entity.Game) []entity.Move {
	size := game.Size()
	moves := make([]entity.Move, 0, size*size-game.Len())

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			move := entity.NewMove(row, col)
			if _, ok := game.Owner(move); !ok {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

func Turn(game *entity.Game) entity.Player {
	return game.Turn()
}

func GetPiece(game *entity.Game, row, col int) string {
	return game.Piece(row, col)
}
