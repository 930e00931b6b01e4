// Package selection implements the interactive range-selection state
// machines owned outside any rendering layer. A desktop session drives
// DragSelector through pointer events; a mobile session drives TapSelector
// through taps and an explicit confirm. Both commit candidate ranges through
// the same overlap check, and both drop rejected candidates silently.
package selection

import (
	"slotwise/models"
)

// Overlaps reports whether the candidate interval intersects any existing
// record. Intervals are closed on both ends, so touching endpoints count as
// overlap. The first match vetoes the whole candidate; no attempt is made to
// report which record conflicts.
func Overlaps(start, end models.CalendarDate, existing []models.DateRangeRecord) bool {
	for _, rec := range existing {
		if !start.After(rec.EndDate) && !end.Before(rec.StartDate) {
			return true
		}
	}
	return false
}
