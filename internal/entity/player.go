package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	MarkX = "X"
	MarkO = "O"

	EmptyCell = ""
)

// Player is the side that owns a cell. The zero value is not a player.
type Player uint8

const (
	Cross Player = iota + 1
	Nought
)

func (that Player) Valid() bool {
	return that == Cross || that == Nought
}

// Other returns the opponent.
func (that Player) Other() Player {
	if that == Cross {
		return Nought
	}
	return Cross
}

// Mark returns the board glyph of the player.
func (that Player) Mark() string {
	switch that {
	case Cross:
		return MarkX
	case Nought:
		return MarkO
	default:
		return EmptyCell
	}
}

func (that Player) String() string {
	switch that {
	case Cross:
		return "Cross"
	case Nought:
		return "Nought"
	default:
		return fmt.Sprintf("Player(%d)", uint8(that))
	}
}

// ParsePlayer accepts a mark ("X", "O") or a side name ("cross", "nought").
func ParsePlayer(value string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "x", "cross":
		return Cross, nil
	case "o", "nought":
		return Nought, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, value)
	}
}
