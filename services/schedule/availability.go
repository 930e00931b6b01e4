package schedule

import (
	"slotwise/models"
)

// SetDay sets or clears one weekday's schedule. A nil schedule marks the day
// closed. Values are stored as supplied; the pickers only offer ordered
// open/close pairs, so no further validation happens here.
func SetDay(av models.WeeklyAvailability, day models.Weekday, sched *models.DaySchedule) {
	if sched == nil {
		delete(av, day)
		return
	}
	copied := *sched
	av[day] = &copied
}

// ApplyPreset overwrites the day's open and close times, preserving any slot
// duration already configured for that day.
func ApplyPreset(av models.WeeklyAvailability, day models.Weekday, open, close models.TimeOfDay) {
	existing := av[day]
	sched := &models.DaySchedule{Open: open, Close: close}
	if existing != nil {
		sched.SlotDuration = existing.SlotDuration
	}
	av[day] = sched
}

// SetSlotDuration updates the slot length for a day that already has a
// schedule. Days without a schedule are left closed.
func SetSlotDuration(av models.WeeklyAvailability, day models.Weekday, minutes int) {
	existing := av[day]
	if existing == nil {
		return
	}
	existing.SlotDuration = minutes
}

// CopyToAllDays applies the source day's open and close times to every day of
// the week. Each day keeps its own slot duration if it has one; otherwise it
// inherits the source day's duration (which itself defaults when unset).
func CopyToAllDays(av models.WeeklyAvailability, source models.Weekday) {
	src := av[source]
	if src == nil {
		return
	}
	for _, day := range models.AllWeekdays {
		sched := &models.DaySchedule{Open: src.Open, Close: src.Close, SlotDuration: src.SlotDuration}
		if existing := av[day]; existing != nil && existing.SlotDuration != 0 {
			sched.SlotDuration = existing.SlotDuration
		}
		av[day] = sched
	}
}
