package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const emptyKeyCell = '.'

// Game is an N×N board, the side to move and the placed moves.
// A Game is never modified after construction; Place returns a successor.
type Game struct {
	size  int
	turn  Player
	board map[Move]Player
}

func NewGame(first Player, size int) (*Game, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	if !first.Valid() {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidPlayer, first)
	}

	return &Game{
		size:  size,
		turn:  first,
		board: make(map[Move]Player, size*size),
	}, nil
}

// ParseBoard builds a position from rows of 'X', 'O' and '.' with turn to move.
func ParseBoard(turn Player, rows ...string) (*Game, error) {
	game, err := NewGame(turn, len(rows))
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		if len(line) != game.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidSize, row, len(line), game.size)
		}

		for col, cell := range line {
			switch cell {
			case 'X', 'x':
				game.board[NewMove(row, col)] = Cross
			case 'O', 'o':
				game.board[NewMove(row, col)] = Nought
			case emptyKeyCell:
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", apperror.ErrInvalidPlayer, cell, row, col)
			}
		}
	}

	return game, nil
}

func (that *Game) Size() int {
	return that.size
}

// Turn returns the player to move next.
func (that *Game) Turn() Player {
	return that.turn
}

func (that *Game) Owner(move Move) (Player, bool) {
	player, ok := that.board[move]
	return player, ok
}

// Piece returns "X", "O" or "" for the cell, for rendering.
func (that *Game) Piece(row, col int) string {
	player, ok := that.board[NewMove(row, col)]
	if !ok {
		return EmptyCell
	}
	return player.Mark()
}

// Len returns the number of placed moves.
func (that *Game) Len() int {
	return len(that.board)
}

func (that *Game) IsFull() bool {
	return len(that.board) >= that.size*that.size
}

func (that *Game) Clone() *Game {
	board := make(map[Move]Player, that.size*that.size)
	for move, player := range that.board {
		board[move] = player
	}

	return &Game{
		size:  that.size,
		turn:  that.turn,
		board: board,
	}
}

// Place returns a successor with the move recorded for the side to move and the turn flipped.
// The receiver is left untouched.
func (that *Game) Place(move Move) (*Game, error) {
	if !move.Within(that.size) {
		return nil, fmt.Errorf("%w: %v on %dx%d board", apperror.ErrCellOutOfRange, move, that.size, that.size)
	}

	if _, ok := that.board[move]; ok {
		return nil, fmt.Errorf("%w: %v", apperror.ErrCellOccupied, move)
	}

	next := that.Clone()
	next.board[move] = that.turn
	next.turn = that.turn.Other()

	return next, nil
}

// Key encodes size, turn and occupancy as "<size>:<mark>:<cells>", cells in row-major order.
func (that *Game) Key() string {
	var sb strings.Builder
	sb.Grow(that.size*that.size + 8)

	sb.WriteString(strconv.Itoa(that.size))
	sb.WriteByte(':')
	sb.WriteString(that.turn.Mark())
	sb.WriteByte(':')

	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			player, ok := that.board[NewMove(row, col)]
			if !ok {
				sb.WriteByte(emptyKeyCell)
				continue
			}
			sb.WriteString(player.Mark())
		}
	}

	return sb.String()
}
