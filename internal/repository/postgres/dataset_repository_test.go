package postgres_test

import (
	"context"
	"testing"

	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/repository/postgres"
	"github.com/rural-itinerary/internal/repository/postgres/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetRepository_LoadReviews(t *testing.T) {
	tdb := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	_, err := tdb.ExecContext(ctx, `
		INSERT INTO reviews (review, sentiment, area_type, district, destination, latitude, longitude) VALUES
			('Lovely tea estates', 'positive', 'rural', 'badulla', 'ella', 6.8667, 81.0466),
			('Crowded', 'Negative', 'Urban', 'Colombo', 'Pettah', NULL, NULL),
			('???', 'mixed', 'Rural', 'Kandy', 'Kandy', NULL, NULL),
			('Off the map', 'Neutral', 'Rural', 'Matale', 'Sigiriya', 123.0, 999.0)
	`)
	require.NoError(t, err)

	repo := postgres.NewDatasetRepository(tdb.DB)
	assert.Equal(t, "postgres", repo.Name())

	reviews, err := repo.LoadReviews(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	assert.Equal(t, domain.SentimentPositive, reviews[0].Sentiment)
	assert.Equal(t, domain.AreaTypeRural, reviews[0].AreaType)
	assert.Equal(t, "Badulla", reviews[0].District)
	assert.Equal(t, "Ella", reviews[0].Destination)
	require.NotNil(t, reviews[0].Location)
	assert.InDelta(t, 81.0466, reviews[0].Location.Lon, 1e-9)

	assert.Nil(t, reviews[1].Location)
	assert.Nil(t, reviews[2].Location, "out of range coordinates are dropped")
}

func TestDatasetRepository_LoadActivities(t *testing.T) {
	tdb := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	_, err := tdb.ExecContext(ctx, `
		INSERT INTO activities (district, destination, activity_type, description, estimated_cost, coordinates) VALUES
			('Badulla', 'Ella', 'hiking trail', 'Little Adams Peak', 1500, '(81.0466, 6.8667)'),
			('Matale', 'Sigiriya', 'Rock Climbing', 'Lion Rock', NULL, 'garbage'),
			('Galle', 'Unawatuna', 'Snorkelling', 'Reef', 4000, NULL)
	`)
	require.NoError(t, err)

	repo := postgres.NewDatasetRepository(tdb.DB)

	activities, err := repo.LoadActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 3)

	assert.Equal(t, "Hiking Trail", activities[0].Subtype)
	assert.Equal(t, domain.CategoryAdventure, activities[0].Category)
	require.NotNil(t, activities[0].EstimatedCost)
	assert.Equal(t, 1500.0, *activities[0].EstimatedCost)
	require.NotNil(t, activities[0].Location)

	assert.Nil(t, activities[1].EstimatedCost)
	assert.Nil(t, activities[1].Location)

	assert.False(t, activities[2].HasCategory)
}

func TestDB_MigrateIsIdempotent(t *testing.T) {
	tdb := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, tdb.Migrate(ctx))
	require.NoError(t, tdb.Health(ctx))

	var tables int
	require.NoError(t, tdb.GetContext(ctx, &tables, `
		SELECT count(*) FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name IN ('reviews', 'activities')`))
	assert.Equal(t, 2, tables)
}
