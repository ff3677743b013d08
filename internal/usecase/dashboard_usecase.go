package usecase

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode"

	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/pkg/errors"
	"github.com/rural-itinerary/internal/pkg/validator"
	"github.com/rural-itinerary/internal/usecase/dto"
	"go.uber.org/zap"
)

// Значения формы маршрута по умолчанию
const (
	DefaultTripDays  = 3
	DefaultStartCity = "Colombo"
	DefaultEndCity   = "Kandy"
	DefaultWordLimit = 200
)

// NoMatchingActivitiesNotice - таблица активностей пуста
const NoMatchingActivitiesNotice = "No matching activities found."

// DashboardUseCase - данные для графиков и элементов управления дашборда
type DashboardUseCase struct {
	dataset *domain.Dataset
	maxDays int
	logger  *zap.Logger
}

func NewDashboardUseCase(dataset *domain.Dataset, maxDays int, logger *zap.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		dataset: dataset,
		maxDays: maxDays,
		logger:  logger,
	}
}

// Metrics - всего отзывов, сельских и городских
func (uc *DashboardUseCase) Metrics() (*dto.MetricsResponse, error) {
	if uc.dataset == nil {
		return nil, errors.ErrDatasetUnavailable
	}

	resp := &dto.MetricsResponse{TotalReviews: len(uc.dataset.Reviews)}
	for _, r := range uc.dataset.Reviews {
		switch r.AreaType {
		case domain.AreaTypeRural:
			resp.RuralReviews++
		case domain.AreaTypeUrban:
			resp.UrbanReviews++
		}
	}
	return resp, nil
}

// Reviews - отзывы по режиму фильтра и агрегаты для графиков.
// В режиме category отзывы не фильтруются, добавляется таблица активностей.
func (uc *DashboardUseCase) Reviews(q dto.ReviewsQuery) (*dto.ReviewsResponse, error) {
	if uc.dataset == nil {
		return nil, errors.ErrDatasetUnavailable
	}

	filter, mode, err := reviewFilter(q)
	if err != nil {
		return nil, err
	}

	reviews := FilterReviews(uc.dataset.Reviews, filter)

	resp := &dto.ReviewsResponse{
		Mode:                  mode,
		Total:                 len(reviews),
		Reviews:               make([]dto.ReviewItem, 0, len(reviews)),
		SentimentDistribution: sentimentDistribution(reviews),
		DestinationCounts:     destinationCounts(reviews),
		MapPoints:             make([]dto.MapPoint, 0),
	}

	for _, r := range reviews {
		resp.Reviews = append(resp.Reviews, dto.ReviewItem{
			Text:        r.Text,
			Sentiment:   r.Sentiment,
			AreaType:    r.AreaType,
			District:    r.District,
			Destination: r.Destination,
		})
		if r.Location != nil {
			resp.MapPoints = append(resp.MapPoints, dto.MapPoint{
				Destination: r.Destination,
				District:    r.District,
				Sentiment:   r.Sentiment,
				Lat:         r.Location.Lat,
				Lon:         r.Location.Lon,
			})
		}
	}

	if mode == dto.FilterModeCategory && strings.TrimSpace(q.Category) != "" {
		matched, err := uc.MatchedActivities(dto.ActivitiesQuery{
			Category: q.Category,
			Subtypes: q.Subtypes,
		})
		if err != nil {
			return nil, err
		}
		resp.MatchedActivities = matched
	}

	return resp, nil
}

// MatchedActivities - уникальные строки активностей категории, по району и направлению
func (uc *DashboardUseCase) MatchedActivities(q dto.ActivitiesQuery) (*dto.ActivitiesResponse, error) {
	if uc.dataset == nil {
		return nil, errors.ErrDatasetUnavailable
	}
	if err := validator.Validate(q); err != nil {
		return nil, err
	}

	bounds := uc.dataset.CostBounds()
	budget, err := budgetRange(q.BudgetMin, q.BudgetMax, bounds)
	if err != nil {
		return nil, err
	}

	activities := FilterActivities(uc.dataset.Activities, ActivityFilter{
		Categories: []string{q.Category},
		Subtypes:   q.Subtypes,
		Budget:     budget,
		District:   q.District,
	}, bounds)

	seen := make(map[dto.ActivityRow]struct{}, len(activities))
	rows := make([]dto.ActivityRow, 0, len(activities))
	for _, a := range activities {
		row := dto.ActivityRow{
			District:    a.District,
			Destination: a.Destination,
			Category:    a.Category,
			Subtype:     a.Subtype,
			Description: a.Description,
		}
		if _, ok := seen[row]; ok {
			continue
		}
		seen[row] = struct{}{}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].District != rows[j].District {
			return rows[i].District < rows[j].District
		}
		return rows[i].Destination < rows[j].Destination
	})

	resp := &dto.ActivitiesResponse{
		Category: q.Category,
		Subtypes: q.Subtypes,
		Rows:     rows,
	}
	if len(rows) == 0 {
		resp.Notices = append(resp.Notices, NoMatchingActivitiesNotice)
	}
	return resp, nil
}

// Options - значения селекторов, слайдеров и значения формы по умолчанию
func (uc *DashboardUseCase) Options() (*dto.OptionsResponse, error) {
	if uc.dataset == nil {
		return nil, errors.ErrDatasetUnavailable
	}

	categories := uc.dataset.Categories()
	subtypes := make(map[string][]string, len(categories))
	for _, c := range categories {
		subtypes[c] = uc.dataset.SubtypesOf(c)
	}

	bounds := uc.dataset.CostBounds()
	budget := dto.BudgetOptions{Min: bounds.Min, Max: bounds.Max, Enabled: !bounds.Degenerate()}
	switch {
	case !bounds.Known:
		budget.Notice = "No cost information available. Skipping budget filter."
	case bounds.Min == bounds.Max:
		budget.Notice = fmt.Sprintf("All activities priced at LKR %.0f. Skipping budget filter.", bounds.Min)
	}

	defaultCategories := []string{}
	if slices.Contains(categories, domain.CategoryAdventure) {
		defaultCategories = append(defaultCategories, domain.CategoryAdventure)
	}

	maxDays := uc.maxDays
	if maxDays <= 0 {
		maxDays = 10
	}

	return &dto.OptionsResponse{
		FilterModes:        dto.FilterModes,
		Sentiments:         domain.Sentiments,
		AreaTypes:          domain.AreaTypes,
		Categories:         categories,
		SubtypesByCategory: subtypes,
		Districts:          append([]string{domain.AnyDistrict}, uc.dataset.ReviewDistricts()...),
		AccommodationTypes: domain.AccommodationTypes,
		Budget:             budget,
		Days: dto.DaysOptions{
			Min:     1,
			Max:     maxDays,
			Default: min(DefaultTripDays, maxDays),
		},
		Defaults: dto.ItineraryDefaults{
			Categories:    defaultCategories,
			District:      domain.AnyDistrict,
			Accommodation: domain.AccommodationTypes[0],
			StartCity:     DefaultStartCity,
			EndCity:       DefaultEndCity,
		},
	}, nil
}

// WordFrequencies - частоты слов в тексте отфильтрованных отзывов для облака слов
func (uc *DashboardUseCase) WordFrequencies(q dto.ReviewsQuery) (*dto.WordsResponse, error) {
	if uc.dataset == nil {
		return nil, errors.ErrDatasetUnavailable
	}

	filter, _, err := reviewFilter(q)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultWordLimit
	}

	reviews := FilterReviews(uc.dataset.Reviews, filter)

	counts := make(map[string]int)
	for _, r := range reviews {
		for _, w := range Tokenize(r.Text) {
			counts[w]++
		}
	}

	words := make([]dto.WordFrequency, 0, len(counts))
	for w, c := range counts {
		words = append(words, dto.WordFrequency{Word: w, Count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > limit {
		words = words[:limit]
	}

	return &dto.WordsResponse{Words: words, Reviews: len(reviews)}, nil
}

// Tokenize - слова в нижнем регистре без стоп-слов, чисел и однобуквенных
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		f = strings.TrimSuffix(f, "'s")
		if len([]rune(f)) < 2 || isNumber(f) {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// reviewFilter переводит режим и параметры запроса в предикаты
func reviewFilter(q dto.ReviewsQuery) (ReviewFilter, string, error) {
	if err := validator.Validate(q); err != nil {
		return ReviewFilter{}, "", err
	}

	mode := q.Mode
	if mode == "" {
		mode = dto.FilterModeAll
	}

	filter := ReviewFilter{District: q.District}

	switch mode {
	case dto.FilterModeAll, dto.FilterModeCategory:
	case dto.FilterModeSentiment:
		s, ok := domain.ParseSentiment(q.Sentiment)
		if !ok {
			return ReviewFilter{}, "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"sentiment": "must be one of Positive, Neutral, Negative",
			})
		}
		filter.Sentiment = &s
	case dto.FilterModeAreaType:
		a, ok := domain.ParseAreaType(q.AreaType)
		if !ok {
			return ReviewFilter{}, "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"area_type": "must be one of Rural, Urban",
			})
		}
		filter.AreaType = &a
	default:
		return ReviewFilter{}, "", errors.ErrInvalidFilterMode
	}

	return filter, mode, nil
}

func sentimentDistribution(reviews []domain.Review) []dto.LabelCount {
	counts := make(map[domain.Sentiment]int, len(domain.Sentiments))
	for _, r := range reviews {
		counts[r.Sentiment]++
	}

	out := make([]dto.LabelCount, 0, len(domain.Sentiments))
	for _, s := range domain.Sentiments {
		if c := counts[s]; c > 0 {
			out = append(out, dto.LabelCount{Label: string(s), Count: c})
		}
	}
	return out
}

// destinationCounts - по убыванию числа отзывов, при равенстве по имени
func destinationCounts(reviews []domain.Review) []dto.LabelCount {
	counts := make(map[string]int)
	for _, r := range reviews {
		if r.Destination != "" {
			counts[r.Destination]++
		}
	}

	out := make([]dto.LabelCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, dto.LabelCount{Label: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
