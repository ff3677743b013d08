package domain

import (
	"time"

	"github.com/google/uuid"
)

// Accommodation types offered in the itinerary form. Display only.
var AccommodationTypes = []string{"Eco Lodge", "Hotel", "Guesthouse"}

// AnyDistrict - значение "без фильтра по району"
const AnyDistrict = "Any"

// Stop - одно направление в дне маршрута.
// Leg - путь от предыдущей точки с координатами (или от города старта).
type Stop struct {
	Activity      Activity      `json:"activity"`
	Accommodation string        `json:"accommodation"`
	Leg           *RouteSegment `json:"leg,omitempty"`
}

// DayPlan - день маршрута; пустой день допустим
type DayPlan struct {
	Day   int    `json:"day"`
	Stops []Stop `json:"stops"`
}

// Empty - в этот день ничего не запланировано
func (d DayPlan) Empty() bool {
	return len(d.Stops) == 0
}

// Itinerary - сгенерированный маршрут. Пересчитывается на каждый запрос.
type Itinerary struct {
	ID             uuid.UUID     `json:"id"`
	Days           []DayPlan     `json:"days"`
	StartCity      string        `json:"start_city"`
	EndCity        string        `json:"end_city"`
	Accommodation  string        `json:"accommodation"`
	ClosingLeg     *RouteSegment `json:"closing_leg,omitempty"`
	NoDestinations bool          `json:"no_destinations"`
	Dropped        int           `json:"dropped"`
	Notices        []string      `json:"notices,omitempty"`
	GeneratedAt    time.Time     `json:"generated_at"`
}

// Stops - все остановки по порядку дней
func (it *Itinerary) Stops() []Stop {
	var out []Stop
	for _, d := range it.Days {
		out = append(out, d.Stops...)
	}
	return out
}

// AddNotice - добавить сообщение для пользователя
func (it *Itinerary) AddNotice(msg string) {
	it.Notices = append(it.Notices, msg)
}
