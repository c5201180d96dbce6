package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (*entity.Game, entity.Move, error)
	Play(ctx context.Context, game *entity.Game, onTurn func(*entity.Game, entity.Move)) (*entity.Game, error)
}

type moveSelectorDep interface {
	BestMove(ctx context.Context, game *entity.Game) (*entity.Solution, error)
}

type botService struct {
	logger   *slog.Logger
	selector moveSelectorDep
}

func NewBotService(logger *slog.Logger, selector moveSelectorDep) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		selector: selector,
	}
}

// MakeTurn plays the best move for the side to move and returns the successor.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (*entity.Game, entity.Move, error) {
	solution, err := that.selector.BestMove(ctx, game)
	if err != nil {
		return nil, entity.Move{}, fmt.Errorf("bot failed to choose a move: %w", err)
	}

	move := solution.Move()

	next, err := tictactoe.ApplyMove(game, move)
	if err != nil {
		return nil, entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("turn played", "player", game.Turn().Mark(), "move", move.String(), "value", solution.Value)

	return next, move, nil
}

// Play makes turns for both sides until the game is over. onTurn may be nil.
func (that *botService) Play(ctx context.Context, game *entity.Game, onTurn func(*entity.Game, entity.Move)) (*entity.Game, error) {
	for !tictactoe.GameOver(game) {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("play interrupted: %w", err)
		}

		next, move, err := that.MakeTurn(ctx, game)
		if err != nil {
			return game, err
		}

		game = next
		if onTurn != nil {
			onTurn(game, move)
		}
	}

	that.logger.Info("game over", "outcome", tictactoe.GameOutcome(game).String(), "moves", game.Len())

	return game, nil
}
