package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rural-itinerary/internal/usecase"
)

func TestLoadDataset(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &MockDatasetRepository{}
		repo.On("LoadReviews", mock.Anything).Return(sampleReviews(), nil).Once()
		repo.On("LoadActivities", mock.Anything).Return(sampleActivities(), nil).Once()

		ds, err := usecase.LoadDataset(ctx, repo, zap.NewNop())
		require.NoError(t, err)

		assert.Len(t, ds.Reviews, 4)
		assert.Len(t, ds.Activities, 5)
		assert.Equal(t, "mock", ds.Source)
		assert.False(t, ds.LoadedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("reviews error", func(t *testing.T) {
		repo := &MockDatasetRepository{}
		repo.On("LoadReviews", mock.Anything).Return(nil, errors.New("file not found")).Once()

		_, err := usecase.LoadDataset(ctx, repo, zap.NewNop())
		assert.ErrorContains(t, err, "load reviews from mock")
		repo.AssertNotCalled(t, "LoadActivities", mock.Anything)
	})

	t.Run("activities error", func(t *testing.T) {
		repo := &MockDatasetRepository{}
		repo.On("LoadReviews", mock.Anything).Return(sampleReviews(), nil).Once()
		repo.On("LoadActivities", mock.Anything).Return(nil, errors.New("bad header")).Once()

		_, err := usecase.LoadDataset(ctx, repo, zap.NewNop())
		assert.ErrorContains(t, err, "bad header")
	})
}
