package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

func TestSolutionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	solutionRepo := NewSolutionRepository(st.Redis, 0)

	// Given: a solution for the opening position
	solution := &entity.Solution{Key: "3:X:.........", Row: 0, Col: 0, Value: 0, Nodes: 18297}

	// When: CreateOrUpdate is called
	err := solutionRepo.CreateOrUpdate(ctx, solution)

	// Then: no error should be returned, and the solution is stored
	require.NoError(t, err)
}

func TestSolutionRepository_GetByKey(t *testing.T) {
	t.Run("GetByKey_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		solutionRepo := NewSolutionRepository(st.Redis, time.Minute)

		// Given: a stored solution
		solution := &entity.Solution{Key: "3:X:XX.OO....", Row: 0, Col: 2, Value: 1, Nodes: 2}

		err := solutionRepo.CreateOrUpdate(ctx, solution)
		require.NoError(t, err)

		// When: GetByKey is called with the same key
		retrieved, err := solutionRepo.GetByKey(ctx, solution.Key)

		// Then: the retrieved solution matches the saved one
		require.NoError(t, err)
		assert.Equal(t, solution, retrieved)
		assert.Equal(t, entity.NewMove(0, 2), retrieved.Move())
	})

	t.Run("GetByKey_Overwrite", func(t *testing.T) {
		ctx, st := suite.New(t)

		solutionRepo := NewSolutionRepository(st.Redis, 0)

		// Given: a solution stored twice under one key
		require.NoError(t, solutionRepo.CreateOrUpdate(ctx, &entity.Solution{Key: "k", Row: 1, Col: 1}))
		require.NoError(t, solutionRepo.CreateOrUpdate(ctx, &entity.Solution{Key: "k", Row: 2, Col: 2, Value: -1}))

		// When: reading it back
		retrieved, err := solutionRepo.GetByKey(ctx, "k")

		// Then: the latest write wins
		require.NoError(t, err)
		assert.Equal(t, &entity.Solution{Key: "k", Row: 2, Col: 2, Value: -1}, retrieved)
	})

	t.Run("GetByKey_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		solutionRepo := NewSolutionRepository(st.Redis, 0)

		// When: GetByKey is called with an unknown key
		retrieved, err := solutionRepo.GetByKey(ctx, "9:X:unknown")

		// Then: an ErrSolutionNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrSolutionNotFound, err)
		assert.Nil(t, retrieved)
	})
}
