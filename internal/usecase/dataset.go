package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/domain/repository"
	"go.uber.org/zap"
)

// LoadDataset загружает обе таблицы один раз при старте и строит набор данных сессии
func LoadDataset(ctx context.Context, repo repository.DatasetRepository, logger *zap.Logger) (*domain.Dataset, error) {
	start := time.Now()

	reviews, err := repo.LoadReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews from %s: %w", repo.Name(), err)
	}

	activities, err := repo.LoadActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load activities from %s: %w", repo.Name(), err)
	}

	ds := domain.NewDataset(reviews, activities, repo.Name())
	bounds := ds.CostBounds()

	logger.Info("Dataset loaded",
		zap.String("source", ds.Source),
		zap.Int("reviews", len(ds.Reviews)),
		zap.Int("activities", len(ds.Activities)),
		zap.Strings("categories", ds.Categories()),
		zap.Bool("budget_filter", !bounds.Degenerate()),
		zap.Duration("took", time.Since(start)))

	return ds, nil
}
