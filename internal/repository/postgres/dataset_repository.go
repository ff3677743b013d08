package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/domain/repository"
	"go.uber.org/zap"
)

type datasetRepository struct {
	db *DB
}

// NewDatasetRepository - источник таблиц отзывов и активностей в PostgreSQL (только чтение)
func NewDatasetRepository(db *DB) repository.DatasetRepository {
	return &datasetRepository{db: db}
}

func (r *datasetRepository) Name() string {
	return "postgres"
}

type reviewRow struct {
	Review      string          `db:"review"`
	Sentiment   string          `db:"sentiment"`
	AreaType    string          `db:"area_type"`
	District    string          `db:"district"`
	Destination string          `db:"destination"`
	Latitude    sql.NullFloat64 `db:"latitude"`
	Longitude   sql.NullFloat64 `db:"longitude"`
}

type activityRow struct {
	District      string          `db:"district"`
	Destination   string          `db:"destination"`
	ActivityType  string          `db:"activity_type"`
	Description   string          `db:"description"`
	EstimatedCost sql.NullFloat64 `db:"estimated_cost"`
	Coordinates   sql.NullString  `db:"coordinates"`
}

func (r *datasetRepository) LoadReviews(ctx context.Context) ([]domain.Review, error) {
	query := `
		SELECT review, sentiment, area_type, district, destination, latitude, longitude
		FROM reviews
		ORDER BY id
	`

	var rows []reviewRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.db.logger.Error("Failed to load reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	reviews := make([]domain.Review, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		sentiment, ok := domain.ParseSentiment(row.Sentiment)
		if !ok {
			skipped++
			continue
		}
		areaType, ok := domain.ParseAreaType(row.AreaType)
		if !ok {
			skipped++
			continue
		}

		review := domain.Review{
			Text:        row.Review,
			Sentiment:   sentiment,
			AreaType:    areaType,
			District:    domain.TitleCase(row.District),
			Destination: domain.TitleCase(row.Destination),
		}
		if row.Latitude.Valid && row.Longitude.Valid {
			if point, ok := domain.NewCoordinate(row.Longitude.Float64, row.Latitude.Float64); ok {
				review.Location = &point
			}
		}
		reviews = append(reviews, review)
	}

	if skipped > 0 {
		r.db.logger.Warn("Skipped review rows with unknown sentiment or area type",
			zap.Int("skipped", skipped))
	}
	r.db.logger.Info("Reviews loaded", zap.Int("count", len(reviews)))

	return reviews, nil
}

func (r *datasetRepository) LoadActivities(ctx context.Context) ([]domain.Activity, error) {
	query := `
		SELECT district, destination, activity_type, description, estimated_cost, coordinates
		FROM activities
		ORDER BY id
	`

	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.db.logger.Error("Failed to load activities", zap.Error(err))
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	activities := make([]domain.Activity, 0, len(rows))
	unmapped := 0
	for _, row := range rows {
		var cost *float64
		if row.EstimatedCost.Valid {
			v := row.EstimatedCost.Float64
			cost = &v
		}

		var loc *domain.Coordinate
		if row.Coordinates.Valid {
			if point, ok := domain.ParseCoordinates(row.Coordinates.String); ok {
				loc = &point
			}
		}

		a := domain.NewActivity(row.District, row.Destination, row.ActivityType, row.Description, cost, loc)
		if !a.HasCategory {
			unmapped++
		}
		activities = append(activities, a)
	}

	if unmapped > 0 {
		r.db.logger.Warn("Activities with unmapped subtypes", zap.Int("count", unmapped))
	}
	r.db.logger.Info("Activities loaded", zap.Int("count", len(activities)))

	return activities, nil
}
