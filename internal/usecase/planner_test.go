package usecase_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/usecase"
)

func generated(n int, duplicateEvery int) []domain.Activity {
	out := make([]domain.Activity, 0, n)
	for i := 0; i < n; i++ {
		dest := fmt.Sprintf("Destination %d", i)
		if duplicateEvery > 0 && i%duplicateEvery == 0 && i > 0 {
			dest = fmt.Sprintf("Destination %d", i-1)
		}
		out = append(out, activity("District", dest, "Hiking Trail", nil, nil))
	}
	return out
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestParseRemainderPolicy(t *testing.T) {
	p, ok := usecase.ParseRemainderPolicy("")
	assert.True(t, ok)
	assert.Equal(t, usecase.RemainderDrop, p)

	p, ok = usecase.ParseRemainderPolicy("spread")
	assert.True(t, ok)
	assert.Equal(t, usecase.RemainderSpread, p)

	_, ok = usecase.ParseRemainderPolicy("rotate")
	assert.False(t, ok)
}

func TestDeduplicateByDestination(t *testing.T) {
	in := []domain.Activity{
		activity("Badulla", "Ella", "Hiking Trail", nil, nil),
		activity("Badulla", "Ella", "Sunrise Viewpoint", nil, nil),
		activity("Matale", "Sigiriya", "Ancient Ruins", nil, nil),
	}

	out := usecase.DeduplicateByDestination(in)
	require.Len(t, out, 2)
	assert.Equal(t, "Hiking Trail", out[0].Subtype)
	assert.Equal(t, "Sigiriya", out[1].Destination)
	assert.Len(t, in, 3)
}

func TestPartitionActivities(t *testing.T) {
	t.Run("drop policy drops remainder", func(t *testing.T) {
		buckets, dropped := usecase.PartitionActivities(generated(7, 0), 3, seeded(1), usecase.RemainderDrop)
		require.Len(t, buckets, 3)
		for _, b := range buckets {
			assert.Len(t, b, 2)
		}
		assert.Equal(t, 1, dropped)
	})

	t.Run("spread policy keeps everything", func(t *testing.T) {
		buckets, dropped := usecase.PartitionActivities(generated(8, 0), 3, seeded(1), usecase.RemainderSpread)
		require.Len(t, buckets, 3)
		assert.Len(t, buckets[0], 3)
		assert.Len(t, buckets[1], 3)
		assert.Len(t, buckets[2], 2)
		assert.Zero(t, dropped)
	})

	t.Run("fewer activities than days", func(t *testing.T) {
		buckets, dropped := usecase.PartitionActivities(generated(2, 0), 5, seeded(1), usecase.RemainderDrop)
		require.Len(t, buckets, 5)
		assert.Len(t, buckets[0], 1)
		assert.Len(t, buckets[1], 1)
		for _, b := range buckets[2:] {
			assert.Empty(t, b)
		}
		assert.Zero(t, dropped)
	})

	t.Run("empty input", func(t *testing.T) {
		buckets, dropped := usecase.PartitionActivities(nil, 4, seeded(1), usecase.RemainderDrop)
		require.Len(t, buckets, 4)
		for _, b := range buckets {
			assert.Empty(t, b)
		}
		assert.Zero(t, dropped)
	})

	t.Run("days below one are clamped", func(t *testing.T) {
		assert.NotPanics(t, func() {
			buckets, _ := usecase.PartitionActivities(generated(3, 0), 0, nil, usecase.RemainderDrop)
			require.Len(t, buckets, 1)
			assert.Len(t, buckets[0], 3)
		})
	})

	t.Run("same seed same plan", func(t *testing.T) {
		a, _ := usecase.PartitionActivities(generated(20, 0), 4, seeded(42), usecase.RemainderDrop)
		b, _ := usecase.PartitionActivities(generated(20, 0), 4, seeded(42), usecase.RemainderDrop)
		assert.Equal(t, a, b)
	})

	t.Run("input is not reordered", func(t *testing.T) {
		in := generated(10, 0)
		before := append([]domain.Activity(nil), in...)
		usecase.PartitionActivities(in, 3, seeded(7), usecase.RemainderDrop)
		assert.Equal(t, before, in)
	})
}

func TestPartitionActivities_Properties(t *testing.T) {
	policies := []usecase.RemainderPolicy{usecase.RemainderDrop, usecase.RemainderSpread}

	for seed := uint64(0); seed < 20; seed++ {
		for _, n := range []int{0, 1, 2, 5, 9, 17, 30} {
			for days := 1; days <= 10; days++ {
				for _, policy := range policies {
					in := generated(n, 3)
					unique := usecase.DeduplicateByDestination(in)

					buckets, dropped := usecase.PartitionActivities(in, days, seeded(seed), policy)
					require.Len(t, buckets, days)

					seen := make(map[string]int)
					total := 0
					for _, b := range buckets {
						for _, a := range b {
							seen[a.Destination]++
							total++
						}
					}

					for dest, c := range seen {
						assert.Equal(t, 1, c, "destination %q planned twice", dest)
					}
					assert.Equal(t, len(unique), total+dropped)
					if policy == usecase.RemainderSpread {
						assert.Zero(t, dropped)
					}

					uniqueSet := make(map[string]struct{}, len(unique))
					for _, a := range unique {
						uniqueSet[a.Destination] = struct{}{}
					}
					for dest := range seen {
						assert.Contains(t, uniqueSet, dest)
					}
				}
			}
		}
	}
}
