package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/render"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var (
	ErrAddrNotFound       = errors.New("redis address string is empty")
	ErrUnknownCacheDriver = errors.New("unknown cache driver")
)

// RunApp - runs a self-play game with the configured board and prints every position.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	solutionRepo, closeCache, err := openSolutionCache(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeCache(); err != nil {
			log.Error("could not close solution cache", "error", err)
		}
	}()

	first, err := entity.ParsePlayer(conf.Game.FirstPlayer)
	if err != nil {
		return fmt.Errorf("invalid first player: %w", err)
	}

	game, err := tictactoe.GameStart(first, conf.Game.Size)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	solver := usecase.NewSolver(logger, solutionRepo, minimax.New(), conf.Search.MaxEmptyCells)
	bot := service.NewBotService(logger, solver)

	return play(ctx, log, bot, game, render.New(os.Stdout))
}

func play(ctx context.Context, log *slog.Logger, bot service.BotService, game *entity.Game, renderer *render.Renderer) error {
	log.Info("Starting self-play", "size", game.Size(), "first", game.Turn().Mark(), "cache_key", game.Key())

	final, err := bot.Play(ctx, game, func(next *entity.Game, move entity.Move) {
		if renderErr := renderer.Board(next, &move); renderErr != nil {
			log.Error("could not render board", "error", renderErr)
		}
	})
	if err != nil {
		return fmt.Errorf("self-play failed: %w", err)
	}

	if err = renderer.Outcome(tictactoe.GameOutcome(final)); err != nil {
		return fmt.Errorf("could not render outcome: %w", err)
	}

	return nil
}

// openSolutionCache returns a nil repository when caching is disabled.
func openSolutionCache(ctx context.Context, conf *config.Config) (repository.SolutionRepository, func() error, error) {
	noop := func() error { return nil }

	switch conf.Cache.Driver {
	case config.CacheDriverNone, "":
		return nil, noop, nil

	case config.CacheDriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, noop, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, noop, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewSolutionRepository(redisStorage.Connection, conf.Cache.TTL), redisStorage.Close, nil

	case config.CacheDriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, noop, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, noop, errors.Join(fmt.Errorf("could not init sqlite storage: %w", err), sqliteStorage.Close())
		}

		return repository.NewSQLiteSolutionRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownCacheDriver, conf.Cache.Driver)
	}
}
