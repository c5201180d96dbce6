package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrSolutionNotFound = errors.New("solution not found")

// SolutionRepository caches search results by position key.
type SolutionRepository interface {
	CreateOrUpdate(ctx context.Context, solution *entity.Solution) error
	GetByKey(ctx context.Context, key string) (*entity.Solution, error)
}

type dbSolution struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSolutionRepository stores solutions in Redis. A zero ttl keeps them forever.
func NewSolutionRepository(client *redis.Client, ttl time.Duration) SolutionRepository {
	return &dbSolution{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSolution) CreateOrUpdate(ctx context.Context, solution *entity.Solution) error {
	solutionJSON, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("could not marshal solution: %w", err)
	}

	err = that.client.Set(ctx, solutionKey(solution.Key), solutionJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}

	return nil
}

func (that *dbSolution) GetByKey(ctx context.Context, key string) (*entity.Solution, error) {
	response, err := that.client.Get(ctx, solutionKey(key)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrSolutionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get solution by key: %w", err)
	}

	var solution entity.Solution
	if err = json.Unmarshal([]byte(response), &solution); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution: %w", err)
	}

	return &solution, nil
}

func solutionKey(key string) string {
	return "solution:" + key
}
