package models

import (
	"fmt"
	"time"
)

// Weekday identifies one day of the flat weekly template.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists the week in display order, Monday first.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ValidWeekdays is the canonical set of accepted weekday strings.
var ValidWeekdays = map[Weekday]bool{
	Monday: true, Tuesday: true, Wednesday: true, Thursday: true,
	Friday: true, Saturday: true, Sunday: true,
}

// WeekdayOf maps a time.Weekday onto our weekday enum.
func WeekdayOf(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// TimeOfDay is a shop-local wall-clock time in "HH:MM" form, minute granularity.
type TimeOfDay string

// Minutes returns the value as minutes from midnight (e.g. 420 for "07:00").
// Returns -1 when the value does not parse.
func (t TimeOfDay) Minutes() int {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// Valid reports whether the value is a well-formed HH:MM time.
func (t TimeOfDay) Valid() bool {
	return t.Minutes() >= 0
}

// TimeOfDayFromMinutes converts minutes from midnight back to "HH:MM".
func TimeOfDayFromMinutes(m int) TimeOfDay {
	return TimeOfDay(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// DefaultSlotDuration is applied whenever a schedule has no duration set.
const DefaultSlotDuration = 30

// ValidSlotDurations is the set of slot lengths the pickers offer.
var ValidSlotDurations = map[int]bool{15: true, 30: true, 45: true, 60: true}

// DaySchedule holds one weekday's opening window and slot length.
// A zero SlotDuration means "unset" and resolves to DefaultSlotDuration.
type DaySchedule struct {
	Open         TimeOfDay `bson:"open" json:"open"`
	Close        TimeOfDay `bson:"close" json:"close"`
	SlotDuration int       `bson:"slotDuration,omitempty" json:"slotDuration,omitempty"`
}

// EffectiveSlotDuration resolves the unset-duration default.
func (d DaySchedule) EffectiveSlotDuration() int {
	if d.SlotDuration == 0 {
		return DefaultSlotDuration
	}
	return d.SlotDuration
}

// WeeklyAvailability maps each weekday to its schedule; an absent or nil
// entry means the shop is closed that day. A new shop starts with no entries.
type WeeklyAvailability map[Weekday]*DaySchedule

// Day returns the schedule for the given weekday, or nil when closed.
func (w WeeklyAvailability) Day(day Weekday) *DaySchedule {
	if w == nil {
		return nil
	}
	return w[day]
}
