package models

import (
	"sort"
	"time"
)

const calendarDateLayout = "2006-01-02"

// CalendarDate is a timezone-less calendar day in ISO "YYYY-MM-DD" form.
// The canonical form orders lexically, so string comparison is date order.
type CalendarDate string

// Valid reports whether the value is a well-formed ISO date.
func (d CalendarDate) Valid() bool {
	_, err := time.Parse(calendarDateLayout, string(d))
	return err == nil
}

// Before reports whether d falls before other.
func (d CalendarDate) Before(other CalendarDate) bool { return d < other }

// After reports whether d falls after other.
func (d CalendarDate) After(other CalendarDate) bool { return d > other }

// Weekday returns the weekday the date falls on. Invalid dates return Sunday.
func (d CalendarDate) Weekday() Weekday {
	parsed, err := time.Parse(calendarDateLayout, string(d))
	if err != nil {
		return Sunday
	}
	return WeekdayOf(parsed.Weekday())
}

// Today returns the current calendar date in local time.
func Today() CalendarDate {
	return CalendarDate(time.Now().Format(calendarDateLayout))
}

// RangeType tags a special date range.
type RangeType string

const (
	RangeHoliday RangeType = "holiday"
	RangeSpecial RangeType = "special"
	RangePromo   RangeType = "promo"
)

// ValidRangeTypes is the canonical set of persistable range tags.
var ValidRangeTypes = map[RangeType]bool{
	RangeHoliday: true, RangeSpecial: true, RangePromo: true,
}

// EditMode is the tag armed for the next committed selection. ModeRegular is
// a UI marker only and is never persisted as a range tag.
type EditMode string

const (
	ModeRegular EditMode = "regular"
	ModeHoliday EditMode = EditMode(RangeHoliday)
	ModeSpecial EditMode = EditMode(RangeSpecial)
	ModePromo   EditMode = EditMode(RangePromo)
)

// ValidEditModes is the set of accepted edit-mode strings.
var ValidEditModes = map[EditMode]bool{
	ModeRegular: true, ModeHoliday: true, ModeSpecial: true, ModePromo: true,
}

// DateRangeRecord is a tagged, inclusive date interval overriding normal
// availability.
type DateRangeRecord struct {
	StartDate CalendarDate `json:"startDate"`
	EndDate   CalendarDate `json:"endDate"`
	Type      RangeType    `json:"type"`
}

// Normalized returns the record with start and end swapped into order.
func (r DateRangeRecord) Normalized() DateRangeRecord {
	if r.EndDate.Before(r.StartDate) {
		r.StartDate, r.EndDate = r.EndDate, r.StartDate
	}
	return r
}

// Covers reports whether the date lies inside the inclusive interval.
func (r DateRangeRecord) Covers(date CalendarDate) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}

// SpecialDateEntry is the persisted value of one range, keyed by its start date.
type SpecialDateEntry struct {
	Type    RangeType    `bson:"type" json:"type"`
	EndDate CalendarDate `bson:"endDate" json:"endDate"`
}

// SpecialDates is the store of tagged ranges, keyed by each range's start
// date. One record per distinct start date: putting a second record with the
// same start date overwrites the first. Overlap checking is not done here;
// the selection controller validates before committing.
type SpecialDates map[CalendarDate]SpecialDateEntry

// List returns all records ordered by start date.
func (s SpecialDates) List() []DateRangeRecord {
	records := make([]DateRangeRecord, 0, len(s))
	for start, entry := range s {
		records = append(records, DateRangeRecord{
			StartDate: start,
			EndDate:   entry.EndDate,
			Type:      entry.Type,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].StartDate.Before(records[j].StartDate)
	})
	return records
}

// Get looks up the record starting on the given date.
func (s SpecialDates) Get(start CalendarDate) (DateRangeRecord, bool) {
	entry, ok := s[start]
	if !ok {
		return DateRangeRecord{}, false
	}
	return DateRangeRecord{StartDate: start, EndDate: entry.EndDate, Type: entry.Type}, true
}

// Put stores the record under its start date, overwriting any record that
// already starts there.
func (s SpecialDates) Put(rec DateRangeRecord) {
	rec = rec.Normalized()
	s[rec.StartDate] = SpecialDateEntry{Type: rec.Type, EndDate: rec.EndDate}
}

// Remove deletes the record starting on the given date, reporting whether
// one existed.
func (s SpecialDates) Remove(start CalendarDate) bool {
	_, ok := s[start]
	delete(s, start)
	return ok
}

// Clear drops every stored range.
func (s SpecialDates) Clear() {
	for start := range s {
		delete(s, start)
	}
}

// HolidayOn reports whether a holiday-typed range covers the date.
func (s SpecialDates) HolidayOn(date CalendarDate) bool {
	for start, entry := range s {
		if entry.Type != RangeHoliday {
			continue
		}
		rec := DateRangeRecord{StartDate: start, EndDate: entry.EndDate}
		if rec.Covers(date) {
			return true
		}
	}
	return false
}

// RangeSummary is the read-only count/group-by fed to the summary display.
type RangeSummary struct {
	Total  int               `json:"total"`
	ByType map[RangeType]int `json:"byType"`
}
