package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamItineraryGenerate = "stream:itinerary:generate"
	StreamItineraryDone     = "stream:itinerary:done"
)

// StreamMessage - сообщение из Redis Stream (поле "data" с JSON)
type StreamMessage struct {
	ID   string
	Data string
}

// ItineraryRequestEvent - входящее событие на генерацию маршрута
type ItineraryRequestEvent struct {
	RequestID     uuid.UUID `json:"request_id"`
	Days          int       `json:"days"`
	Categories    []string  `json:"categories"`
	District      string    `json:"district,omitempty"`
	Accommodation string    `json:"accommodation,omitempty"`
	StartCity     string    `json:"start_city,omitempty"`
	EndCity       string    `json:"end_city,omitempty"`
	BudgetMin     *float64  `json:"budget_min,omitempty"`
	BudgetMax     *float64  `json:"budget_max,omitempty"`
	Seed          *uint64   `json:"seed,omitempty"`
}

// HasBudget - в событии указан полный диапазон бюджета
func (e *ItineraryRequestEvent) HasBudget() bool {
	return e.BudgetMin != nil && e.BudgetMax != nil
}

// ItineraryDoneEvent - результат генерации
type ItineraryDoneEvent struct {
	RequestID uuid.UUID  `json:"request_id"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
	Error     string     `json:"error,omitempty"`
}
