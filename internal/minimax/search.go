// Package minimax selects optimal moves by exhaustive game-tree search.
//
// The search has no depth limit: it explores every continuation until the
// game ends, so the worst case visits on the order of (empty cells)! positions
// before pruning. Callers bound the board size.
package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	winScore = 1

	// strictly outside the score range, so negating it never overflows
	infinity = winScore + 1
)

// Result is the outcome of a root search.
type Result struct {
	Move entity.Move
	// Value is the game-theoretic value for the side to move: +1 win, 0 draw, -1 loss.
	Value int
	Stats Stats
}

type Stats struct {
	Nodes   int
	Cutoffs int
}

type Searcher struct {
	pruning bool
}

type Option func(*Searcher)

// WithPruning toggles alpha-beta pruning. Without it the search is plain minimax.
func WithPruning(enabled bool) Option {
	return func(searcher *Searcher) {
		searcher.pruning = enabled
	}
}

func New(opts ...Option) *Searcher {
	searcher := &Searcher{pruning: true}
	for _, opt := range opts {
		opt(searcher)
	}

	return searcher
}

// FindBestMove runs the default alpha-beta searcher.
func FindBestMove(game *entity.Game) (entity.Move, error) {
	result, err := New().FindBestMove(game)
	if err != nil {
		return entity.Move{}, err
	}

	return result.Move, nil
}

// FindBestMove returns the first move in row-major order that achieves the best
// value for the side to move. It fails with apperror.ErrGameFinished when the
// game is already over.
func (that *Searcher) FindBestMove(game *entity.Game) (Result, error) {
	if tictactoe.GameOver(game) {
		return Result{}, fmt.Errorf("no move to search: %w", apperror.ErrGameFinished)
	}

	var stats Stats
	stats.Nodes++

	alpha, beta := -infinity, infinity
	best := Result{Value: -infinity}

	for _, move := range tictactoe.PossibleMoves(game) {
		next, err := tictactoe.ApplyMove(game, move)
		if err != nil {
			return Result{}, fmt.Errorf("failed to apply %v: %w", move, err)
		}

		childValue, err := that.value(next, -beta, -alpha, &stats)
		if err != nil {
			return Result{}, err
		}

		value := -childValue

		// later ties never replace the earlier move
		if value > best.Value {
			best.Move = move
			best.Value = value
		}

		if that.pruning {
			alpha = max(alpha, value)
			if value == winScore {
				stats.Cutoffs++
				break
			}
		}
	}

	best.Stats = stats

	return best, nil
}

// value is the negamax score of game for its side to move, searched within (alpha, beta).
func (that *Searcher) value(game *entity.Game, alpha, beta int, stats *Stats) (int, error) {
	stats.Nodes++

	if tictactoe.GameOver(game) {
		return tictactoe.HeuristicScore(game, game.Turn()), nil
	}

	best := -infinity
	for _, move := range tictactoe.PossibleMoves(game) {
		next, err := game.Place(move)
		if err != nil {
			return 0, fmt.Errorf("failed to apply %v: %w", move, err)
		}

		childValue, err := that.value(next, -beta, -alpha, stats)
		if err != nil {
			return 0, err
		}

		best = max(best, -childValue)

		if !that.pruning {
			continue
		}

		alpha = max(alpha, best)
		if alpha >= beta {
			stats.Cutoffs++
			break
		}
	}

	return best, nil
}
