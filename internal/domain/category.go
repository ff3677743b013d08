package domain

import "sort"

// Activity categories
const (
	CategoryAdventure      = "Adventure"
	CategoryNature         = "Nature"
	CategoryBathingNatural = "Bathing/Natural"
	CategoryCultural       = "Cultural"
	CategoryHistorical     = "Historical"
	CategoryReligious      = "Religious"
	CategoryScenic         = "Scenic"
	CategoryWildlife       = "Wildlife"
)

// ActivitySubtypeToCategory maps title-cased activity subtypes to categories
var ActivitySubtypeToCategory = map[string]string{
	"Hiking Trail":      CategoryAdventure,
	"Rock Climbing":     CategoryAdventure,
	"Zip-Lining":        CategoryAdventure,
	"Canoeing/Kayaking": CategoryAdventure,

	"Waterfall View":   CategoryNature,
	"Forest Reserve":   CategoryNature,
	"Botanical Garden": CategoryNature,

	"Natural Pool": CategoryBathingNatural,
	"Hot Springs":  CategoryBathingNatural,

	"Village Experience":     CategoryCultural,
	"Handicrafts Workshop":   CategoryCultural,
	"Traditional Dance Show": CategoryCultural,

	"Ancient Ruins":     CategoryHistorical,
	"Colonial Landmark": CategoryHistorical,

	"Temple Festival Site": CategoryReligious,
	"Pilgrimage Trail":     CategoryReligious,

	"Sunrise Viewpoint":   CategoryScenic,
	"Tea Plantation Walk": CategoryScenic,

	"Bird Watching Area": CategoryWildlife,
	"Safari Zone":        CategoryWildlife,
}

// NormalizeCategory returns the category of a subtype. Unmapped subtypes
// return ok=false and are never an error.
func NormalizeCategory(subtype string) (string, bool) {
	category, ok := ActivitySubtypeToCategory[TitleCase(subtype)]
	return category, ok
}

// AllCategories returns every category of the static map, sorted
func AllCategories() []string {
	seen := make(map[string]struct{})
	for _, c := range ActivitySubtypeToCategory {
		seen[c] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// IsKnownCategory reports whether c is one of the fixed categories
func IsKnownCategory(c string) bool {
	for _, v := range ActivitySubtypeToCategory {
		if v == c {
			return true
		}
	}
	return false
}
