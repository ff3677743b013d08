package dto

import "github.com/rural-itinerary/internal/domain"

// MetricsResponse - счётчики отзывов на главной
type MetricsResponse struct {
	TotalReviews int `json:"total_reviews"`
	RuralReviews int `json:"rural_reviews"`
	UrbanReviews int `json:"urban_reviews"`
}

// LabelCount - значение для круговой/столбчатой диаграммы
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MapPoint - точка отзыва на карте
type MapPoint struct {
	Destination string           `json:"destination"`
	District    string           `json:"district"`
	Sentiment   domain.Sentiment `json:"sentiment"`
	Lat         float64          `json:"lat"`
	Lon         float64          `json:"lon"`
}

// ReviewItem - отзыв в ответе
type ReviewItem struct {
	Text        string           `json:"text"`
	Sentiment   domain.Sentiment `json:"sentiment"`
	AreaType    domain.AreaType  `json:"area_type"`
	District    string           `json:"district"`
	Destination string           `json:"destination"`
}

// ReviewsResponse - данные графиков по отфильтрованным отзывам
type ReviewsResponse struct {
	Mode                  string              `json:"mode"`
	Total                 int                 `json:"total"`
	Reviews               []ReviewItem        `json:"reviews"`
	SentimentDistribution []LabelCount        `json:"sentiment_distribution"`
	DestinationCounts     []LabelCount        `json:"destination_counts"`
	MapPoints             []MapPoint          `json:"map_points"`
	MatchedActivities     *ActivitiesResponse `json:"matched_activities,omitempty"`
}

// ActivityRow - строка таблицы подходящих активностей
type ActivityRow struct {
	District    string `json:"district"`
	Destination string `json:"destination"`
	Category    string `json:"category"`
	Subtype     string `json:"subtype"`
	Description string `json:"description"`
}

type ActivitiesResponse struct {
	Category string        `json:"category"`
	Subtypes []string      `json:"subtypes,omitempty"`
	Rows     []ActivityRow `json:"rows"`
	Notices  []string      `json:"notices,omitempty"`
}

// WordFrequency - слово для облака слов
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type WordsResponse struct {
	Words   []WordFrequency `json:"words"`
	Reviews int             `json:"reviews"`
}

// BudgetOptions - границы слайдера бюджета; Enabled=false, если фильтр не применяется
type BudgetOptions struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Enabled bool    `json:"enabled"`
	Notice  string  `json:"notice,omitempty"`
}

type DaysOptions struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

type ItineraryDefaults struct {
	Categories    []string `json:"categories"`
	District      string   `json:"district"`
	Accommodation string   `json:"accommodation"`
	StartCity     string   `json:"start_city"`
	EndCity       string   `json:"end_city"`
}

// OptionsResponse - значения для элементов управления клиента
type OptionsResponse struct {
	FilterModes        []string            `json:"filter_modes"`
	Sentiments         []domain.Sentiment  `json:"sentiments"`
	AreaTypes          []domain.AreaType   `json:"area_types"`
	Categories         []string            `json:"categories"`
	SubtypesByCategory map[string][]string `json:"subtypes_by_category"`
	Districts          []string            `json:"districts"`
	AccommodationTypes []string            `json:"accommodation_types"`
	Budget             BudgetOptions       `json:"budget"`
	Days               DaysOptions         `json:"days"`
	Defaults           ItineraryDefaults   `json:"defaults"`
}
