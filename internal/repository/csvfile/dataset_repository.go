package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/domain/repository"
	"go.uber.org/zap"
)

// Column names
const (
	colReview        = "Review"
	colSentiment     = "Sentiment"
	colAreaType      = "Area Type"
	colDistrict      = "District"
	colDestination   = "Destination"
	colLatitude      = "Latitude"
	colLongitude     = "Longitude"
	colActivityType  = "Activity Type"
	colDescription   = "Description"
	colEstimatedCost = "Estimated Cost"
	colCoordinates   = "Coordinates"
)

type datasetRepository struct {
	reviewsPath    string
	activitiesPath string
	logger         *zap.Logger
}

// NewDatasetRepository - источник данных из двух CSV файлов
func NewDatasetRepository(reviewsPath, activitiesPath string, logger *zap.Logger) repository.DatasetRepository {
	return &datasetRepository{
		reviewsPath:    reviewsPath,
		activitiesPath: activitiesPath,
		logger:         logger,
	}
}

func (r *datasetRepository) Name() string {
	return "csv"
}

func (r *datasetRepository) LoadReviews(ctx context.Context) ([]domain.Review, error) {
	f, err := os.Open(r.reviewsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open reviews file: %w", err)
	}
	defer f.Close()

	reviews, skipped, err := ReadReviews(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	if skipped > 0 {
		r.logger.Warn("Skipped review rows with unknown sentiment or area type",
			zap.String("path", r.reviewsPath),
			zap.Int("skipped", skipped))
	}
	r.logger.Info("Reviews loaded",
		zap.String("path", r.reviewsPath),
		zap.Int("count", len(reviews)))

	return reviews, nil
}

func (r *datasetRepository) LoadActivities(ctx context.Context) ([]domain.Activity, error) {
	f, err := os.Open(r.activitiesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open activities file: %w", err)
	}
	defer f.Close()

	activities, stats, err := ReadActivities(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}

	if stats.Unmapped > 0 || stats.BadCoordinates > 0 || stats.BadCost > 0 {
		r.logger.Warn("Activity rows with unusable values",
			zap.String("path", r.activitiesPath),
			zap.Int("unmapped_subtypes", stats.Unmapped),
			zap.Int("bad_coordinates", stats.BadCoordinates),
			zap.Int("bad_cost", stats.BadCost))
	}
	r.logger.Info("Activities loaded",
		zap.String("path", r.activitiesPath),
		zap.Int("count", len(activities)))

	return activities, nil
}

// ActivityStats - счётчики проблемных значений при загрузке активностей
type ActivityStats struct {
	Unmapped       int
	BadCoordinates int
	BadCost        int
}

// ReadReviews читает таблицу отзывов. Возвращает число отброшенных строк.
func ReadReviews(ctx context.Context, src io.Reader) ([]domain.Review, int, error) {
	reader, header, err := open(src)
	if err != nil {
		return nil, 0, err
	}

	for _, col := range []string{colReview, colSentiment, colAreaType, colDistrict, colDestination} {
		if _, ok := header[col]; !ok {
			return nil, 0, fmt.Errorf("missing column %q", col)
		}
	}

	var (
		reviews []domain.Review
		skipped int
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		row := rowView{header: header, record: record}

		sentiment, ok := domain.ParseSentiment(row.get(colSentiment))
		if !ok {
			skipped++
			continue
		}
		areaType, ok := domain.ParseAreaType(row.get(colAreaType))
		if !ok {
			skipped++
			continue
		}

		review := domain.Review{
			Text:        row.get(colReview),
			Sentiment:   sentiment,
			AreaType:    areaType,
			District:    domain.TitleCase(row.get(colDistrict)),
			Destination: domain.TitleCase(row.get(colDestination)),
		}

		lat, latErr := strconv.ParseFloat(row.get(colLatitude), 64)
		lon, lonErr := strconv.ParseFloat(row.get(colLongitude), 64)
		if latErr == nil && lonErr == nil {
			if point, ok := domain.NewCoordinate(lon, lat); ok {
				review.Location = &point
			}
		}

		reviews = append(reviews, review)
	}

	return reviews, skipped, nil
}

// ReadActivities читает таблицу активностей. Столбцы Estimated Cost и
// Coordinates необязательны; битые значения пропускаются.
func ReadActivities(ctx context.Context, src io.Reader) ([]domain.Activity, ActivityStats, error) {
	var stats ActivityStats

	reader, header, err := open(src)
	if err != nil {
		return nil, stats, err
	}

	for _, col := range []string{colDistrict, colDestination, colActivityType} {
		if _, ok := header[col]; !ok {
			return nil, stats, fmt.Errorf("missing column %q", col)
		}
	}

	var activities []domain.Activity

	for {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, err
		}

		row := rowView{header: header, record: record}

		var cost *float64
		if raw := row.get(colEstimatedCost); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				stats.BadCost++
			} else {
				cost = &v
			}
		}

		var loc *domain.Coordinate
		if raw := row.get(colCoordinates); raw != "" {
			point, ok := domain.ParseCoordinates(raw)
			if !ok {
				stats.BadCoordinates++
			} else {
				loc = &point
			}
		}

		activity := domain.NewActivity(
			row.get(colDistrict),
			row.get(colDestination),
			row.get(colActivityType),
			row.get(colDescription),
			cost,
			loc,
		)
		if !activity.HasCategory {
			stats.Unmapped++
		}

		activities = append(activities, activity)
	}

	return activities, stats, nil
}

func open(src io.Reader) (*csv.Reader, map[string]int, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	names, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("empty file")
		}
		return nil, nil, err
	}

	header := make(map[string]int, len(names))
	for i, name := range names {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		header[name] = i
	}

	return reader, header, nil
}

type rowView struct {
	header map[string]int
	record []string
}

func (r rowView) get(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}
