package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestItineraryRequestEvent_HasBudget(t *testing.T) {
	tests := []struct {
		name     string
		event    ItineraryRequestEvent
		expected bool
	}{
		{
			name:     "no budget",
			event:    ItineraryRequestEvent{RequestID: uuid.New(), Days: 3},
			expected: false,
		},
		{
			name:     "only minimum",
			event:    ItineraryRequestEvent{RequestID: uuid.New(), Days: 3, BudgetMin: floatPtr(100)},
			expected: false,
		},
		{
			name:     "only maximum",
			event:    ItineraryRequestEvent{RequestID: uuid.New(), Days: 3, BudgetMax: floatPtr(500)},
			expected: false,
		},
		{
			name:     "full range",
			event:    ItineraryRequestEvent{RequestID: uuid.New(), Days: 3, BudgetMin: floatPtr(100), BudgetMax: floatPtr(500)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.HasBudget())
		})
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
