package models

import "time"

// Slot is a discrete bookable time interval derived from a DaySchedule.
// Slots are never persisted; they are regenerated on demand.
type Slot struct {
	Weekday Weekday   `json:"weekday"`
	Start   TimeOfDay `json:"start"`
	End     TimeOfDay `json:"end"`
}

// ShopSchedule is the persisted scheduling document for one shop: the weekly
// availability template plus the tagged special date ranges.
type ShopSchedule struct {
	ShopID       string             `bson:"shopId" json:"shopId"`
	Availability WeeklyAvailability `bson:"availability" json:"availability"`
	SpecialDates SpecialDates       `bson:"specialDates" json:"specialDates"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewShopSchedule returns an empty schedule: all days closed, no ranges.
func NewShopSchedule(shopID string) *ShopSchedule {
	return &ShopSchedule{
		ShopID:       shopID,
		Availability: WeeklyAvailability{},
		SpecialDates: SpecialDates{},
	}
}

// Labels is an opaque display-name lookup for weekday and range-type keys.
// The engine performs no logic with it beyond lookup-with-fallback.
type Labels map[string]string

// For returns the label for key, falling back to the key itself.
func (l Labels) For(key string) string {
	if l == nil {
		return key
	}
	if label, ok := l[key]; ok {
		return label
	}
	return key
}
