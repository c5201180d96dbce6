package tictactoe

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Line is one winning candidate: a row, a column or a diagonal.
type Line []entity.Move

// lineCache holds generated lines per size. Cached lines are shared and read-only.
var lineCache sync.Map

// Lines returns the 2N+2 winning lines of an N×N board: rows, then columns,
// then the main diagonal and the anti-diagonal.
func Lines(size int) ([]Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	if cached, ok := lineCache.Load(size); ok {
		return cached.([]Line), nil //nolint: forcetypeassert // only []Line is stored
	}

	lines := generateLines(size)
	actual, _ := lineCache.LoadOrStore(size, lines)

	return actual.([]Line), nil //nolint: forcetypeassert // only []Line is stored
}

func generateLines(size int) []Line {
	lines := make([]Line, 0, 2*size+2)

	for row := 0; row < size; row++ {
		line := make(Line, 0, size)
		for col := 0; col < size; col++ {
			line = append(line, entity.NewMove(row, col))
		}
		lines = append(lines, line)
	}

	for col := 0; col < size; col++ {
		line := make(Line, 0, size)
		for row := 0; row < size; row++ {
			line = append(line, entity.NewMove(row, col))
		}
		lines = append(lines, line)
	}

	diagonal := make(Line, 0, size)
	antiDiagonal := make(Line, 0, size)
	for i := 0; i < size; i++ {
		diagonal = append(diagonal, entity.NewMove(i, i))
		antiDiagonal = append(antiDiagonal, entity.NewMove(size-1-i, i))
	}

	return append(lines, diagonal, antiDiagonal)
}
