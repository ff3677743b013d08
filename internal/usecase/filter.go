package usecase

import (
	"strings"

	"github.com/rural-itinerary/internal/domain"
)

// ReviewFilter - предикаты по отзывам, объединяются через AND.
// Пустое поле означает отсутствие фильтра.
type ReviewFilter struct {
	Sentiment *domain.Sentiment
	AreaType  *domain.AreaType
	District  string
}

// ActivityFilter - предикаты по активностям.
// Subtypes учитываются только вместе с Categories.
type ActivityFilter struct {
	Categories []string
	Subtypes   []string
	Budget     *domain.CostRange
	District   string
}

// IsAnyDistrict - пустое значение или "Any" в любом регистре
func IsAnyDistrict(district string) bool {
	d := strings.TrimSpace(district)
	return d == "" || strings.EqualFold(d, domain.AnyDistrict)
}

// districtOf - значение запроса в той же форме, что и district в данных после загрузки
func districtOf(district string) string {
	if IsAnyDistrict(district) {
		return ""
	}
	return domain.TitleCase(district)
}

// FilterReviews возвращает новый срез; исходный не изменяется
func FilterReviews(reviews []domain.Review, f ReviewFilter) []domain.Review {
	district := districtOf(f.District)

	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if f.Sentiment != nil && r.Sentiment != *f.Sentiment {
			continue
		}
		if f.AreaType != nil && r.AreaType != *f.AreaType {
			continue
		}
		if district != "" && r.District != district {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterActivities применяет фильтр к активностям. Бюджет игнорируется, если
// у таблицы нет цен или min == max; иначе строки без цены отбрасываются.
// Категории, состоящие только из пробелов, ничему не соответствуют.
func FilterActivities(activities []domain.Activity, f ActivityFilter, bounds domain.CostBounds) []domain.Activity {
	categories := toSet(f.Categories)
	if len(f.Categories) > 0 && len(categories) == 0 {
		return []domain.Activity{}
	}
	var subtypes map[string]struct{}
	if len(categories) > 0 {
		subtypes = toSet(f.Subtypes)
	}
	applyBudget := f.Budget != nil && !bounds.Degenerate()
	district := districtOf(f.District)

	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if len(categories) > 0 {
			if !a.HasCategory {
				continue
			}
			if _, ok := categories[a.Category]; !ok {
				continue
			}
			if len(subtypes) > 0 {
				if _, ok := subtypes[a.Subtype]; !ok {
					continue
				}
			}
		}

		if applyBudget {
			if a.EstimatedCost == nil || !f.Budget.Contains(*a.EstimatedCost) {
				continue
			}
		}

		if district != "" && a.District != district {
			continue
		}

		out = append(out, a)
	}
	return out
}

// toSet - значения запроса в title case, как категории и подтипы после загрузки
func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = domain.TitleCase(v)
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
