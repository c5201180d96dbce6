package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Result int

const (
	Undecided Result = iota
	Win
	Draw
)

func (that Result) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "undecided"
	}
}

// Outcome of a position. Winner and Line are set only when Result is Win.
type Outcome struct {
	Result Result
	Winner entity.Player
	Line   Line
}

func (that Outcome) IsWin() bool {
	return that.Result == Win
}

func (that Outcome) IsDraw() bool {
	return that.Result == Draw
}

func (that Outcome) IsUndecided() bool {
	return that.Result == Undecided
}

func (that Outcome) String() string {
	if that.Result != Win {
		return that.Result.String()
	}

	cells := make([]string, 0, len(that.Line))
	for _, move := range that.Line {
		cells = append(cells, move.String())
	}

	return fmt.Sprintf("win %s [%s]", that.Winner.Mark(), strings.Join(cells, " "))
}

// GameOutcome scans the lines in generator order and reports the first one
// fully owned by a single player. Without a win the game is a draw when the
// board is full and undecided otherwise.
func GameOutcome(game *entity.Game) Outcome {
	lines, err := Lines(game.Size())
	if err != nil {
		// only a zero-value Game has no lines
		return Outcome{Result: Undecided}
	}

	for _, line := range lines {
		if winner, ok := lineOwner(game, line); ok {
			return Outcome{Result: Win, Winner: winner, Line: line}
		}
	}

	if game.IsFull() {
		return Outcome{Result: Draw}
	}

	return Outcome{Result: Undecided}
}

func lineOwner(game *entity.Game, line Line) (entity.Player, bool) {
	owner, ok := game.Owner(line[0])
	if !ok {
		return 0, false
	}

	for _, move := range line[1:] {
		if player, ok := game.Owner(move); !ok || player != owner {
			return 0, false
		}
	}

	return owner, true
}

// GameOver reports whether the board is full or somebody has won.
func GameOver(game *entity.Game) bool {
	if game.IsFull() {
		return true
	}

	return GameOutcome(game).IsWin()
}

// HeuristicScore is +1 when player won, -1 when the opponent won and 0 otherwise.
func HeuristicScore(game *entity.Game, player entity.Player) int {
	outcome := GameOutcome(game)
	if !outcome.IsWin() {
		return 0
	}

	if outcome.Winner == player {
		return 1
	}

	return -1
}
