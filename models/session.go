package models

import "time"

// DeviceClass selects the selection input modality for an editing session.
// It is chosen once when the session starts and not re-evaluated mid-session.
type DeviceClass string

const (
	DeviceDesktop DeviceClass = "desktop"
	DeviceMobile  DeviceClass = "mobile"
)

// ValidDeviceClasses is the set of accepted device class strings.
var ValidDeviceClasses = map[DeviceClass]bool{
	DeviceDesktop: true, DeviceMobile: true,
}

// DragState is the desktop drag-selection state. Empty dates stand for the
// unset anchor/cursor of the idle state.
type DragState struct {
	Dragging bool         `json:"dragging"`
	Anchor   CalendarDate `json:"anchor,omitempty"`
	Cursor   CalendarDate `json:"cursor,omitempty"`
}

// TapState is the mobile two-tap selection state.
type TapState struct {
	Start           CalendarDate `json:"start,omitempty"`
	End             CalendarDate `json:"end,omitempty"`
	AwaitingConfirm bool         `json:"awaitingConfirm"`
}

// EditSession holds one owner's editing context between requests: in-memory
// copies of both persisted models plus the ephemeral selection state. Nothing
// here touches the shop's stored schedule until Save.
type EditSession struct {
	SessionID    string             `json:"sessionId"`
	ShopID       string             `json:"shopId"`
	Device       DeviceClass        `json:"device"`
	EditMode     EditMode           `json:"editMode"`
	Availability WeeklyAvailability `json:"availability"`
	SpecialDates SpecialDates       `json:"specialDates"`
	Drag         DragState          `json:"drag"`
	Tap          TapState           `json:"tap"`
	StartedAt    time.Time          `json:"startedAt"`
}
