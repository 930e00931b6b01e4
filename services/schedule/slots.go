package schedule

import (
	"slotwise/models"
)

// GenerateSlots derives the ordered list of bookable slots for one weekday's
// schedule. Starting at the opening time it emits back-to-back slots of the
// schedule's duration while a whole slot still fits before closing; a trailing
// partial slot is never emitted. The function is deterministic and stateless.
func GenerateSlots(day models.Weekday, sched models.DaySchedule) []models.Slot {
	open := sched.Open.Minutes()
	close := sched.Close.Minutes()
	duration := sched.EffectiveSlotDuration()
	if open < 0 || close < 0 || duration <= 0 {
		return nil
	}

	var slots []models.Slot
	for t := open; t+duration <= close; t += duration {
		slots = append(slots, models.Slot{
			Weekday: day,
			Start:   models.TimeOfDayFromMinutes(t),
			End:     models.TimeOfDayFromMinutes(t + duration),
		})
	}
	return slots
}

// SlotsForDate resolves the bookable slots for a concrete calendar date:
// the date's weekday schedule drives generation, and a holiday-typed range
// covering the date suppresses all slots. Special and promo ranges do not
// affect slot generation.
func SlotsForDate(doc *models.ShopSchedule, date models.CalendarDate) []models.Slot {
	if doc == nil {
		return nil
	}
	if doc.SpecialDates.HolidayOn(date) {
		return nil
	}
	day := date.Weekday()
	sched := doc.Availability.Day(day)
	if sched == nil {
		return nil
	}
	return GenerateSlots(day, *sched)
}
