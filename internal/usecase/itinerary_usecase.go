package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rural-itinerary/internal/config"
	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/pkg/errors"
	"github.com/rural-itinerary/internal/pkg/metrics"
	"github.com/rural-itinerary/internal/pkg/validator"
	"github.com/rural-itinerary/internal/usecase/dto"
	"go.uber.org/zap"
)

// NoDestinationsNotice - сообщение при пустом результате фильтра
const NoDestinationsNotice = "No destinations found matching your preferences."

// ItineraryUseCase - генерация маршрута: фильтр, раскладка по дням, оценка переездов
type ItineraryUseCase struct {
	dataset   *domain.Dataset
	annotator *RouteAnnotator
	policy    RemainderPolicy
	maxDays   int
	metrics   *metrics.Metrics
	logger    *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewItineraryUseCase(
	dataset *domain.Dataset,
	annotator *RouteAnnotator,
	cfg *config.ItineraryConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ItineraryUseCase {
	policy, ok := ParseRemainderPolicy(cfg.RemainderPolicy)
	if !ok {
		policy = RemainderDrop
	}
	if m == nil {
		m = metrics.NewNop()
	}

	return &ItineraryUseCase{
		dataset:   dataset,
		annotator: annotator,
		policy:    policy,
		maxDays:   cfg.MaxDays,
		metrics:   m,
		logger:    logger,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Generate строит маршрут по запросу. Ошибки внешних сервисов не возвращаются,
// а превращаются в отметки на сегментах и сообщения в Notices.
func (uc *ItineraryUseCase) Generate(ctx context.Context, req dto.ItineraryRequest) (*domain.Itinerary, error) {
	if uc.dataset == nil {
		return nil, errors.ErrDatasetUnavailable
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if uc.maxDays > 0 && req.Days > uc.maxDays {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"days": fmt.Sprintf("max=%d", uc.maxDays),
		})
	}

	bounds := uc.dataset.CostBounds()
	budget, err := budgetRange(req.BudgetMin, req.BudgetMax, bounds)
	if err != nil {
		return nil, err
	}

	candidates := FilterActivities(uc.dataset.Activities, ActivityFilter{
		Categories: req.Categories,
		Budget:     budget,
		District:   req.District,
	}, bounds)

	buckets, dropped := uc.partition(candidates, req.Days, req.Seed)

	accommodation := req.Accommodation
	if accommodation == "" {
		accommodation = domain.AccommodationTypes[0]
	}

	it := &domain.Itinerary{
		ID:            uuid.New(),
		Days:          make([]domain.DayPlan, len(buckets)),
		StartCity:     strings.TrimSpace(req.StartCity),
		EndCity:       strings.TrimSpace(req.EndCity),
		Accommodation: accommodation,
		Dropped:       dropped,
		GeneratedAt:   time.Now().UTC(),
	}
	for d, bucket := range buckets {
		stops := make([]domain.Stop, 0, len(bucket))
		for _, a := range bucket {
			stops = append(stops, domain.Stop{Activity: a, Accommodation: accommodation})
		}
		it.Days[d] = domain.DayPlan{Day: d + 1, Stops: stops}
	}

	if len(candidates) == 0 {
		it.NoDestinations = true
		it.AddNotice(NoDestinationsNotice)
		uc.metrics.ItineraryGenerations.WithLabelValues("no_destinations").Inc()
		uc.logger.Info("No destinations for itinerary request",
			zap.Strings("categories", req.Categories),
			zap.String("district", req.District),
			zap.Int("days", req.Days))
		return it, nil
	}

	if dropped > 0 {
		it.AddNotice(fmt.Sprintf("%d destination(s) did not fit evenly into %d day(s) and were left out.", dropped, req.Days))
	}

	uc.annotate(ctx, it)

	uc.metrics.ItineraryGenerations.WithLabelValues("ok").Inc()
	uc.logger.Info("Itinerary generated",
		zap.String("id", it.ID.String()),
		zap.Int("days", len(it.Days)),
		zap.Int("stops", len(it.Stops())),
		zap.Int("dropped", dropped))

	return it, nil
}

// partition - с seed используется свой источник, иначе общий под мьютексом
func (uc *ItineraryUseCase) partition(activities []domain.Activity, days int, seed *uint64) ([][]domain.Activity, int) {
	if seed != nil {
		return PartitionActivities(activities, days, rand.New(rand.NewPCG(*seed, *seed)), uc.policy)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return PartitionActivities(activities, days, uc.rng, uc.policy)
}

// annotate связывает точки по порядку: старт, остановки с координатами, финиш.
// Сегмент записывается в остановку, к которой он ведёт; последний, к финишу, в ClosingLeg.
func (uc *ItineraryUseCase) annotate(ctx context.Context, it *domain.Itinerary) {
	var (
		points []domain.Coordinate
		owners []*domain.Stop
	)

	if it.StartCity != "" {
		start, err := uc.annotator.ResolvePlace(ctx, it.StartCity)
		if err != nil {
			it.AddNotice(fmt.Sprintf("Could not locate start city %q (%s); travel from the start is unavailable.",
				it.StartCity, domain.FailureReasonOf(err)))
		} else {
			points = append(points, *start)
			owners = append(owners, nil)
		}
	}

	for d := range it.Days {
		for s := range it.Days[d].Stops {
			stop := &it.Days[d].Stops[s]
			if stop.Activity.Location == nil {
				continue
			}
			points = append(points, *stop.Activity.Location)
			owners = append(owners, stop)
		}
	}

	hasEnd := false
	if it.EndCity != "" {
		end, err := uc.annotator.ResolvePlace(ctx, it.EndCity)
		if err != nil {
			it.AddNotice(fmt.Sprintf("Could not locate end city %q (%s); travel to the end is unavailable.",
				it.EndCity, domain.FailureReasonOf(err)))
		} else {
			points = append(points, *end)
			owners = append(owners, nil)
			hasEnd = true
		}
	}

	segments := uc.annotator.Annotate(ctx, points)
	for i := range segments {
		if owner := owners[i+1]; owner != nil {
			owner.Leg = &segments[i]
		}
	}
	if hasEnd && len(segments) > 0 {
		it.ClosingLeg = &segments[len(segments)-1]
	}
}

// budgetRange - недостающая граница берётся из таблицы
func budgetRange(minCost, maxCost *float64, bounds domain.CostBounds) (*domain.CostRange, error) {
	if minCost == nil && maxCost == nil {
		return nil, nil
	}

	r := domain.CostRange{Min: bounds.Min, Max: bounds.Max}
	if minCost != nil {
		r.Min = *minCost
	}
	if maxCost != nil {
		r.Max = *maxCost
	}
	if r.Min > r.Max {
		return nil, errors.ErrInvalidBudgetRange
	}
	return &r, nil
}

// RenderText - маршрут в виде markdown текста по дням
func RenderText(it *domain.Itinerary) string {
	var b strings.Builder

	b.WriteString("# Your Travel Itinerary\n\n")
	if it.StartCity != "" || it.EndCity != "" {
		fmt.Fprintf(&b, "**From:** %s  **To:** %s\n\n", orDash(it.StartCity), orDash(it.EndCity))
	}
	for _, n := range it.Notices {
		fmt.Fprintf(&b, "> %s\n", n)
	}
	if len(it.Notices) > 0 {
		b.WriteString("\n")
	}

	for _, day := range it.Days {
		fmt.Fprintf(&b, "## Day %d\n\n", day.Day)
		if day.Empty() {
			b.WriteString("No activities planned for this day.\n\n---\n\n")
			continue
		}
		for _, stop := range day.Stops {
			a := stop.Activity
			fmt.Fprintf(&b, "- **Destination:** %s (%s)\n", a.Destination, a.District)
			fmt.Fprintf(&b, "- **Activity:** %s (%s)\n", a.Subtype, a.Category)
			fmt.Fprintf(&b, "- **Description:** %s\n", a.Description)
			fmt.Fprintf(&b, "- **Accommodation:** %s in %s\n", stop.Accommodation, a.District)
			if stop.Leg != nil {
				fmt.Fprintf(&b, "  - Travel: %s\n", travelText(*stop.Leg))
			}
			b.WriteString("\n")
		}
		b.WriteString("---\n\n")
	}

	if it.ClosingLeg != nil {
		fmt.Fprintf(&b, "## Return to %s\n\n  - Travel: %s\n", it.EndCity, travelText(*it.ClosingLeg))
	}

	return b.String()
}

func travelText(seg domain.RouteSegment) string {
	if !seg.Available() {
		reason := seg.Failure
		if reason == domain.RouteFailureNone {
			reason = domain.RouteFailureMalformedResponse
		}
		return fmt.Sprintf("travel estimate unavailable (%s)", reason)
	}
	return fmt.Sprintf("~%.1f km | ~%.0f minutes", *seg.DistanceKm, *seg.DurationMin)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
