package selection_test

import (
	"testing"

	"slotwise/models"
	"slotwise/services/selection"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	existing := []models.DateRangeRecord{
		{StartDate: "2025-08-10", EndDate: "2025-08-12", Type: models.RangeHoliday},
		{StartDate: "2025-08-20", EndDate: "2025-08-20", Type: models.RangePromo},
	}

	cases := []struct {
		name       string
		start, end models.CalendarDate
		want       bool
	}{
		{"fully inside", "2025-08-11", "2025-08-11", true},
		{"straddles the start", "2025-08-08", "2025-08-10", true},
		{"straddles the end", "2025-08-12", "2025-08-14", true},
		{"touching endpoint counts as overlap", "2025-08-12", "2025-08-12", true},
		{"covers an existing range", "2025-08-09", "2025-08-13", true},
		{"single-day record", "2025-08-20", "2025-08-25", true},
		{"gap before", "2025-08-01", "2025-08-09", false},
		{"gap between", "2025-08-13", "2025-08-19", false},
		{"gap after", "2025-08-21", "2025-08-30", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, selection.Overlaps(tc.start, tc.end, existing))
		})
	}

	t.Run("empty store never overlaps", func(t *testing.T) {
		assert.False(t, selection.Overlaps("2025-08-10", "2025-08-12", nil))
	})
}
