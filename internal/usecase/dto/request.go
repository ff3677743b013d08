package dto

import "github.com/rural-itinerary/internal/domain"

// Режимы фильтра дашборда
const (
	FilterModeAll       = "all"
	FilterModeSentiment = "sentiment"
	FilterModeAreaType  = "area_type"
	FilterModeCategory  = "category"
)

// FilterModes - режимы в порядке отображения
var FilterModes = []string{FilterModeAll, FilterModeSentiment, FilterModeAreaType, FilterModeCategory}

// ReviewsQuery - параметры выборки отзывов для графиков дашборда
type ReviewsQuery struct {
	Mode      string   `query:"mode" validate:"omitempty,max=20"`
	Sentiment string   `query:"sentiment"`
	AreaType  string   `query:"area_type"`
	District  string   `query:"district" validate:"omitempty,max=100"`
	Category  string   `query:"category" validate:"omitempty,notblank,max=100"`
	Subtypes  []string `query:"subtype" validate:"omitempty,max=50,dive,max=100"`
	Limit     int      `query:"limit" validate:"omitempty,min=1,max=500"`
}

// ActivitiesQuery - запрос таблицы подходящих активностей
type ActivitiesQuery struct {
	Category  string   `query:"category" validate:"required,notblank,max=100"`
	Subtypes  []string `query:"subtype" validate:"omitempty,max=50,dive,max=100"`
	BudgetMin *float64 `query:"budget_min" validate:"omitempty,min=0"`
	BudgetMax *float64 `query:"budget_max" validate:"omitempty,min=0"`
	District  string   `query:"district" validate:"omitempty,max=100"`
}

// ItineraryRequest - параметры генерации маршрута
type ItineraryRequest struct {
	Days          int      `json:"days" validate:"required,min=1"`
	Categories    []string `json:"categories" validate:"required,min=1,dive,required,notblank,max=100"`
	District      string   `json:"district,omitempty" validate:"omitempty,max=100"`
	Accommodation string   `json:"accommodation,omitempty" validate:"omitempty,oneof='Eco Lodge' Hotel Guesthouse"`
	StartCity     string   `json:"start_city,omitempty" validate:"omitempty,max=100"`
	EndCity       string   `json:"end_city,omitempty" validate:"omitempty,max=100"`
	BudgetMin     *float64 `json:"budget_min,omitempty" validate:"omitempty,min=0"`
	BudgetMax     *float64 `json:"budget_max,omitempty" validate:"omitempty,min=0"`
	// Seed - детерминированная перестановка; без него порядок случайный
	Seed *uint64 `json:"seed,omitempty"`
}

// ItineraryRequestFromEvent - запрос из события стрима
func ItineraryRequestFromEvent(ev *domain.ItineraryRequestEvent) ItineraryRequest {
	return ItineraryRequest{
		Days:          ev.Days,
		Categories:    ev.Categories,
		District:      ev.District,
		Accommodation: ev.Accommodation,
		StartCity:     ev.StartCity,
		EndCity:       ev.EndCity,
		BudgetMin:     ev.BudgetMin,
		BudgetMax:     ev.BudgetMax,
		Seed:          ev.Seed,
	}
}
