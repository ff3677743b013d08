package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rural-itinerary/internal/domain"
	apperrors "github.com/rural-itinerary/internal/pkg/errors"
	"github.com/rural-itinerary/internal/usecase"
	"github.com/rural-itinerary/internal/usecase/dto"
)

func newDashboard() *usecase.DashboardUseCase {
	reviews := sampleReviews()
	reviews[0].Location = &ella
	reviews = append(reviews, domain.Review{
		Text:        "The view from Ella rock was stunning, stunning sunrise!",
		Sentiment:   domain.SentimentPositive,
		AreaType:    domain.AreaTypeRural,
		District:    "Badulla",
		Destination: "Ella",
	})

	activities := append(sampleActivities(),
		activity("Badulla", "Ella", "Hiking Trail", floatPtr(1500), coord(81.0466, 6.8667)),
	)

	return usecase.NewDashboardUseCase(domain.NewDataset(reviews, activities, "test"), 10, zap.NewNop())
}

func TestDashboardUseCase_Metrics(t *testing.T) {
	m, err := newDashboard().Metrics()
	require.NoError(t, err)
	assert.Equal(t, 5, m.TotalReviews)
	assert.Equal(t, 3, m.RuralReviews)
	assert.Equal(t, 2, m.UrbanReviews)
}

func TestDashboardUseCase_Reviews(t *testing.T) {
	uc := newDashboard()

	t.Run("all", func(t *testing.T) {
		resp, err := uc.Reviews(dto.ReviewsQuery{})
		require.NoError(t, err)

		assert.Equal(t, dto.FilterModeAll, resp.Mode)
		assert.Equal(t, 5, resp.Total)
		assert.Equal(t, []dto.LabelCount{
			{Label: "Positive", Count: 3},
			{Label: "Neutral", Count: 1},
			{Label: "Negative", Count: 1},
		}, resp.SentimentDistribution)
		require.NotEmpty(t, resp.DestinationCounts)
		assert.Equal(t, dto.LabelCount{Label: "Ella", Count: 2}, resp.DestinationCounts[0])
		require.Len(t, resp.MapPoints, 1)
		assert.Equal(t, "Ella", resp.MapPoints[0].Destination)
		assert.Nil(t, resp.MatchedActivities)
	})

	t.Run("sentiment", func(t *testing.T) {
		resp, err := uc.Reviews(dto.ReviewsQuery{Mode: dto.FilterModeSentiment, Sentiment: "negative"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "Pettah", resp.Reviews[0].Destination)
	})

	t.Run("area type", func(t *testing.T) {
		resp, err := uc.Reviews(dto.ReviewsQuery{Mode: dto.FilterModeAreaType, AreaType: "Urban"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("category keeps reviews and adds activities", func(t *testing.T) {
		resp, err := uc.Reviews(dto.ReviewsQuery{Mode: dto.FilterModeCategory, Category: domain.CategoryAdventure})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Total)
		require.NotNil(t, resp.MatchedActivities)
		assert.Len(t, resp.MatchedActivities.Rows, 2)
	})

	t.Run("invalid sentiment", func(t *testing.T) {
		_, err := uc.Reviews(dto.ReviewsQuery{Mode: dto.FilterModeSentiment, Sentiment: "mixed"})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_REQUEST", appErr.Code)
		assert.Contains(t, appErr.Details, "sentiment")
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := uc.Reviews(dto.ReviewsQuery{Mode: "district"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidFilterMode)
	})
}

func TestDashboardUseCase_MatchedActivities(t *testing.T) {
	uc := newDashboard()

	t.Run("deduplicated and sorted", func(t *testing.T) {
		resp, err := uc.MatchedActivities(dto.ActivitiesQuery{Category: domain.CategoryAdventure})
		require.NoError(t, err)

		require.Len(t, resp.Rows, 2)
		assert.Equal(t, "Ella", resp.Rows[0].Destination)
		assert.Equal(t, "Haputale", resp.Rows[1].Destination)
		assert.Empty(t, resp.Notices)
	})

	t.Run("subtypes and budget", func(t *testing.T) {
		resp, err := uc.MatchedActivities(dto.ActivitiesQuery{
			Category:  domain.CategoryAdventure,
			Subtypes:  []string{"Hiking Trail", "Rock Climbing"},
			BudgetMin: floatPtr(1000),
			BudgetMax: floatPtr(2000),
		})
		require.NoError(t, err)
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "Ella", resp.Rows[0].Destination)
	})

	t.Run("no match notice", func(t *testing.T) {
		resp, err := uc.MatchedActivities(dto.ActivitiesQuery{Category: domain.CategoryWildlife})
		require.NoError(t, err)
		assert.Empty(t, resp.Rows)
		assert.Equal(t, []string{usecase.NoMatchingActivitiesNotice}, resp.Notices)
	})

	t.Run("category required", func(t *testing.T) {
		_, err := uc.MatchedActivities(dto.ActivitiesQuery{})
		assert.Error(t, err)
	})

	t.Run("blank category rejected", func(t *testing.T) {
		_, err := uc.MatchedActivities(dto.ActivitiesQuery{Category: " "})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.Code)
		assert.Equal(t, "notblank", appErr.Details["Category"])
	})
}

func TestDashboardUseCase_Options(t *testing.T) {
	opts, err := newDashboard().Options()
	require.NoError(t, err)

	assert.Equal(t, []string{domain.CategoryAdventure, domain.CategoryHistorical, domain.CategoryScenic}, opts.Categories)
	assert.Equal(t, []string{"Hiking Trail", "Rock Climbing"}, opts.SubtypesByCategory[domain.CategoryAdventure])
	assert.Equal(t, "Any", opts.Districts[0])
	assert.Contains(t, opts.Districts, "Kandy")
	assert.Equal(t, []string{"Eco Lodge", "Hotel", "Guesthouse"}, opts.AccommodationTypes)
	assert.True(t, opts.Budget.Enabled)
	assert.Equal(t, 800.0, opts.Budget.Min)
	assert.Equal(t, 5000.0, opts.Budget.Max)
	assert.Equal(t, dto.DaysOptions{Min: 1, Max: 10, Default: 3}, opts.Days)
	assert.Equal(t, []string{domain.CategoryAdventure}, opts.Defaults.Categories)
	assert.Equal(t, "Colombo", opts.Defaults.StartCity)
	assert.Equal(t, "Kandy", opts.Defaults.EndCity)
}

func TestDashboardUseCase_Options_DegenerateBudget(t *testing.T) {
	ds := domain.NewDataset(nil, []domain.Activity{
		activity("Badulla", "Ella", "Hiking Trail", floatPtr(2500), nil),
		activity("Matale", "Sigiriya", "Ancient Ruins", floatPtr(2500), nil),
	}, "test")

	opts, err := usecase.NewDashboardUseCase(ds, 10, zap.NewNop()).Options()
	require.NoError(t, err)
	assert.False(t, opts.Budget.Enabled)
	assert.Equal(t, "All activities priced at LKR 2500. Skipping budget filter.", opts.Budget.Notice)
}

func TestDashboardUseCase_WordFrequencies(t *testing.T) {
	uc := newDashboard()

	resp, err := uc.WordFrequencies(dto.ReviewsQuery{Mode: dto.FilterModeSentiment, Sentiment: "Positive"})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Reviews)
	require.NotEmpty(t, resp.Words)
	assert.Equal(t, dto.WordFrequency{Word: "stunning", Count: 2}, resp.Words[0])
	for _, w := range resp.Words {
		assert.NotEqual(t, "the", w.Word)
		assert.NotEqual(t, "it", w.Word)
	}

	limited, err := uc.WordFrequencies(dto.ReviewsQuery{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited.Words, 1)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"ella", "rock", "view", "stunning"},
		usecase.Tokenize("Ella's rock: the VIEW was stunning in 2023!"),
	)
}

func TestDashboardUseCase_DatasetUnavailable(t *testing.T) {
	uc := usecase.NewDashboardUseCase(nil, 10, zap.NewNop())

	_, err := uc.Metrics()
	assert.ErrorIs(t, err, apperrors.ErrDatasetUnavailable)
	_, err = uc.Options()
	assert.ErrorIs(t, err, apperrors.ErrDatasetUnavailable)
}
