package schedule

import (
	"slotwise/models"
)

// Summarize counts the stored ranges overall and per tag. It is a pure
// group-by feeding the read-only summary display.
func Summarize(records []models.DateRangeRecord) models.RangeSummary {
	summary := models.RangeSummary{
		ByType: map[models.RangeType]int{
			models.RangeHoliday: 0,
			models.RangeSpecial: 0,
			models.RangePromo:   0,
		},
	}
	for _, rec := range records {
		summary.Total++
		summary.ByType[rec.Type]++
	}
	return summary
}
