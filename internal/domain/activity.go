package domain

// Activity - сельская активность/направление из таблицы активностей.
// Category пустая, если подтип не найден в ActivitySubtypeToCategory.
type Activity struct {
	District      string      `json:"district"`
	Destination   string      `json:"destination"`
	Subtype       string      `json:"activity_subtype"`
	Category      string      `json:"activity_category,omitempty"`
	HasCategory   bool        `json:"-"`
	Description   string      `json:"description"`
	EstimatedCost *float64    `json:"estimated_cost,omitempty"`
	Location      *Coordinate `json:"coordinates,omitempty"`
}

// NewActivity собирает активность из сырых значений, нормализуя регистр и категорию
func NewActivity(district, destination, subtype, description string, cost *float64, loc *Coordinate) Activity {
	a := Activity{
		District:      TitleCase(district),
		Destination:   TitleCase(destination),
		Subtype:       TitleCase(subtype),
		Description:   description,
		EstimatedCost: cost,
		Location:      loc,
	}
	a.Category, a.HasCategory = NormalizeCategory(a.Subtype)
	return a
}

// CostBounds - минимальная и максимальная стоимость по всей таблице
type CostBounds struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Known bool    `json:"known"`
}

// Degenerate - фильтр бюджета не применяется: цен нет или все одинаковые
func (b CostBounds) Degenerate() bool {
	return !b.Known || b.Min == b.Max
}

// CostRange - выбранный пользователем диапазон бюджета, включительно
type CostRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains - включительная проверка диапазона
func (r CostRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
