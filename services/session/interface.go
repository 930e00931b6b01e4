// Package session orchestrates one owner's editing session: in-memory copies
// of the weekly availability and special date ranges, the armed edit mode,
// and the ephemeral selection state, parked in a session store between
// requests. Nothing reaches the shop repository until an explicit Save.
package session

import (
	"context"

	shopRepo "slotwise/database/repository/shop"
	"slotwise/models"
)

// EditSessionService is the engine's owner-facing surface.
type EditSessionService interface {
	Start(ctx context.Context, shopID string, device models.DeviceClass) (*models.EditSession, error)
	Get(ctx context.Context, sessionID string) (*models.EditSession, error)
	End(ctx context.Context, sessionID string) error

	// Weekly availability edits.
	SetDay(ctx context.Context, sessionID string, day models.Weekday, sched *models.DaySchedule) (*models.EditSession, error)
	ApplyPreset(ctx context.Context, sessionID string, day models.Weekday, open, close models.TimeOfDay) (*models.EditSession, error)
	SetSlotDuration(ctx context.Context, sessionID string, day models.Weekday, minutes int) (*models.EditSession, error)
	CopyToAllDays(ctx context.Context, sessionID string, source models.Weekday) (*models.EditSession, error)

	// Range selection.
	SetEditMode(ctx context.Context, sessionID string, mode models.EditMode) (*models.EditSession, error)
	PointerDown(ctx context.Context, sessionID string, date models.CalendarDate) (*models.EditSession, error)
	PointerMove(ctx context.Context, sessionID string, date models.CalendarDate) (*models.EditSession, error)
	PointerUp(ctx context.Context, sessionID string) (*models.EditSession, error)
	Tap(ctx context.Context, sessionID string, date models.CalendarDate) (*models.EditSession, error)
	ConfirmSelection(ctx context.Context, sessionID string) (*models.EditSession, error)
	RemoveRange(ctx context.Context, sessionID string, start models.CalendarDate) (*models.EditSession, error)
	ClearRanges(ctx context.Context, sessionID string) (*models.EditSession, error)

	Summary(ctx context.Context, sessionID string) (models.RangeSummary, error)
	Save(ctx context.Context, sessionID string) error
}

// DefaultEditSessionService wires the session store, the shop repository,
// and the selection machines together. Today is injectable for tests and
// defaults to the local calendar date. OnChange, when set, observes the
// session after every committed mutation.
type DefaultEditSessionService struct {
	Repo     shopRepo.ShopScheduleRepository
	Store    SessionStore
	Today    func() models.CalendarDate
	OnChange func(*models.EditSession)
}

func (s *DefaultEditSessionService) today() models.CalendarDate {
	if s.Today != nil {
		return s.Today()
	}
	return models.Today()
}
