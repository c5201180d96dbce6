package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type solutionRepoDep interface {
	CreateOrUpdate(ctx context.Context, solution *entity.Solution) error
	GetByKey(ctx context.Context, key string) (*entity.Solution, error)
}

type searcherDep interface {
	FindBestMove(game *entity.Game) (minimax.Result, error)
}

// Solver answers best-move queries, serving repeated positions from the solution cache.
type Solver struct {
	logger *slog.Logger

	solutionRepo  solutionRepoDep
	searcher      searcherDep
	maxEmptyCells int
}

// NewSolver builds a solver. solutionRepo may be nil to disable caching;
// maxEmptyCells <= 0 disables the size guard.
func NewSolver(logger *slog.Logger, solutionRepo solutionRepoDep, searcher searcherDep, maxEmptyCells int) *Solver {
	return &Solver{
		logger: logger.With("component", "solver"),

		solutionRepo:  solutionRepo,
		searcher:      searcher,
		maxEmptyCells: maxEmptyCells,
	}
}

func (that *Solver) BestMove(ctx context.Context, game *entity.Game) (*entity.Solution, error) {
	log := that.logger.With("method", "BestMove", "position", game.Key())

	if tictactoe.GameOver(game) {
		return nil, apperror.ErrGameFinished
	}

	emptyCells := game.Size()*game.Size() - game.Len()
	if that.maxEmptyCells > 0 && emptyCells > that.maxEmptyCells {
		return nil, fmt.Errorf("%w: %d empty cells, limit %d", apperror.ErrSearchTooLarge, emptyCells, that.maxEmptyCells)
	}

	if solution, ok := that.cachedSolution(ctx, log, game); ok {
		return solution, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("search canceled: %w", err)
	}

	result, err := that.searcher.FindBestMove(game)
	if err != nil {
		return nil, fmt.Errorf("failed to search best move: %w", err)
	}

	solution := entity.NewSolution(game, result.Move, result.Value, result.Stats.Nodes)
	log.Debug("position solved", "move", result.Move.String(), "value", result.Value,
		"nodes", result.Stats.Nodes, "cutoffs", result.Stats.Cutoffs)

	that.storeSolution(ctx, log, solution)

	return solution, nil
}

// cachedSolution never fails: cache errors are logged and treated as a miss.
func (that *Solver) cachedSolution(ctx context.Context, log *slog.Logger, game *entity.Game) (*entity.Solution, bool) {
	if that.solutionRepo == nil {
		return nil, false
	}

	solution, err := that.solutionRepo.GetByKey(ctx, game.Key())
	if errors.Is(err, repository.ErrSolutionNotFound) {
		return nil, false
	}

	if err != nil {
		log.Error("failed to read solution cache", "error", err)
		return nil, false
	}

	// a stale or foreign entry must not produce an illegal move
	if _, occupied := game.Owner(solution.Move()); occupied || !solution.Move().Within(game.Size()) {
		log.Warn("ignoring invalid cached solution", "move", solution.Move().String())
		return nil, false
	}

	log.Debug("solution cache hit", "move", solution.Move().String(), "value", solution.Value)

	return solution, true
}

func (that *Solver) storeSolution(ctx context.Context, log *slog.Logger, solution *entity.Solution) {
	if that.solutionRepo == nil {
		return
	}

	if err := that.solutionRepo.CreateOrUpdate(ctx, solution); err != nil {
		log.Error("failed to store solution", "error", err)
	}
}
