package usecase

import (
	"math/rand/v2"

	"github.com/rural-itinerary/internal/domain"
)

// RemainderPolicy - что делать с активностями, не поместившимися ровно по дням
type RemainderPolicy string

const (
	// RemainderDrop - остаток отбрасывается
	RemainderDrop RemainderPolicy = "drop"
	// RemainderSpread - остаток раздаётся по одной в первые дни
	RemainderSpread RemainderPolicy = "spread"
)

// ParseRemainderPolicy - пустая строка даёт политику по умолчанию
func ParseRemainderPolicy(s string) (RemainderPolicy, bool) {
	switch RemainderPolicy(s) {
	case "", RemainderDrop:
		return RemainderDrop, true
	case RemainderSpread:
		return RemainderSpread, true
	}
	return "", false
}

// DeduplicateByDestination оставляет первую активность каждого направления
func DeduplicateByDestination(activities []domain.Activity) []domain.Activity {
	seen := make(map[string]struct{}, len(activities))
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if _, ok := seen[a.Destination]; ok {
			continue
		}
		seen[a.Destination] = struct{}{}
		out = append(out, a)
	}
	return out
}

// PartitionActivities раскладывает перемешанные уникальные направления по дням
// непрерывными срезами по max(1, n/days) штук. Всегда возвращает days корзин
// (пустые допустимы) и число отброшенных активностей.
func PartitionActivities(activities []domain.Activity, days int, rng *rand.Rand, policy RemainderPolicy) ([][]domain.Activity, int) {
	if days < 1 {
		days = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	items := DeduplicateByDestination(activities)
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	buckets := make([][]domain.Activity, days)
	n := len(items)
	if n == 0 {
		return buckets, 0
	}

	perDay := max(1, n/days)

	extra := 0
	if policy == RemainderSpread && n > perDay*days {
		extra = n - perDay*days
	}

	pos := 0
	for d := 0; d < days && pos < n; d++ {
		size := perDay
		if d < extra {
			size++
		}
		end := min(pos+size, n)
		buckets[d] = items[pos:end:end]
		pos = end
	}

	return buckets, n - pos
}
