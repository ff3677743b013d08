package domain

import (
	"sort"
	"time"
)

// Dataset - таблицы сессии. Создаётся один раз при старте и передаётся
// в use case явно; после загрузки не изменяется.
type Dataset struct {
	Reviews    []Review
	Activities []Activity
	Source     string
	LoadedAt   time.Time
}

// NewDataset - создание набора данных сессии
func NewDataset(reviews []Review, activities []Activity, source string) *Dataset {
	return &Dataset{
		Reviews:    reviews,
		Activities: activities,
		Source:     source,
		LoadedAt:   time.Now(),
	}
}

// CostBounds - границы стоимости по всей таблице активностей
func (d *Dataset) CostBounds() CostBounds {
	var b CostBounds
	for _, a := range d.Activities {
		if a.EstimatedCost == nil {
			continue
		}
		c := *a.EstimatedCost
		if !b.Known {
			b = CostBounds{Min: c, Max: c, Known: true}
			continue
		}
		if c < b.Min {
			b.Min = c
		}
		if c > b.Max {
			b.Max = c
		}
	}
	return b
}

// Categories - отсортированные категории, встречающиеся в таблице (без неопределённых)
func (d *Dataset) Categories() []string {
	seen := make(map[string]struct{})
	for _, a := range d.Activities {
		if a.HasCategory {
			seen[a.Category] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// SubtypesOf - подтипы, встречающиеся в таблице для категории
func (d *Dataset) SubtypesOf(category string) []string {
	seen := make(map[string]struct{})
	for _, a := range d.Activities {
		if a.HasCategory && a.Category == category && a.Subtype != "" {
			seen[a.Subtype] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// ReviewDistricts - районы из таблицы отзывов
func (d *Dataset) ReviewDistricts() []string {
	seen := make(map[string]struct{})
	for _, r := range d.Reviews {
		if r.District != "" {
			seen[r.District] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
