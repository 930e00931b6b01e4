package session

import (
	"context"

	"slotwise/models"
	"slotwise/services/schedule"
	"slotwise/services/selection"
)

// SetDay sets or clears one weekday's schedule in the session's working copy.
func (s *DefaultEditSessionService) SetDay(ctx context.Context, sessionID string, day models.Weekday, sched *models.DaySchedule) (*models.EditSession, error) {
	if !models.ValidWeekdays[day] {
		return nil, ErrUnknownWeekday
	}
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		schedule.SetDay(sess.Availability, day, sched)
		return nil
	})
}

// ApplyPreset overwrites the day's open/close pair, keeping its slot duration.
func (s *DefaultEditSessionService) ApplyPreset(ctx context.Context, sessionID string, day models.Weekday, open, close models.TimeOfDay) (*models.EditSession, error) {
	if !models.ValidWeekdays[day] {
		return nil, ErrUnknownWeekday
	}
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		schedule.ApplyPreset(sess.Availability, day, open, close)
		return nil
	})
}

// SetSlotDuration updates the slot length for one day.
func (s *DefaultEditSessionService) SetSlotDuration(ctx context.Context, sessionID string, day models.Weekday, minutes int) (*models.EditSession, error) {
	if !models.ValidWeekdays[day] {
		return nil, ErrUnknownWeekday
	}
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		schedule.SetSlotDuration(sess.Availability, day, minutes)
		return nil
	})
}

// CopyToAllDays spreads the source day's open/close across the whole week.
func (s *DefaultEditSessionService) CopyToAllDays(ctx context.Context, sessionID string, source models.Weekday) (*models.EditSession, error) {
	if !models.ValidWeekdays[source] {
		return nil, ErrUnknownWeekday
	}
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		schedule.CopyToAllDays(sess.Availability, source)
		return nil
	})
}

// SetEditMode arms the tag used for the next committed selection.
func (s *DefaultEditSessionService) SetEditMode(ctx context.Context, sessionID string, mode models.EditMode) (*models.EditSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		sess.EditMode = mode
		return nil
	})
}

// selectionEnv binds the selection machines to the session's working copy.
func (s *DefaultEditSessionService) selectionEnv(sess *models.EditSession) selection.Env {
	return selection.Env{
		Today:    s.today,
		Mode:     func() models.EditMode { return sess.EditMode },
		Existing: sess.SpecialDates.List,
		OnCommit: sess.SpecialDates.Put,
	}
}

// PointerDown forwards a desktop pointer-down to the drag machine.
func (s *DefaultEditSessionService) PointerDown(ctx context.Context, sessionID string, date models.CalendarDate) (*models.EditSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		if sess.Device != models.DeviceDesktop {
			return ErrWrongDevice
		}
		sel := selection.DragSelector{State: &sess.Drag, Env: s.selectionEnv(sess)}
		sel.HandlePointerDown(date)
		return nil
	})
}

// PointerMove forwards a desktop pointer-move to the drag machine.
func (s *DefaultEditSessionService) PointerMove(ctx context.Context, sessionID string, date models.CalendarDate) (*models.EditSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		if sess.Device != models.DeviceDesktop {
			return ErrWrongDevice
		}
		sel := selection.DragSelector{State: &sess.Drag, Env: s.selectionEnv(sess)}
		sel.HandlePointerMove(date)
		return nil
	})
}

// PointerUp resolves the drag; the UI wires it to pointer-up anywhere,
// including leaving the calendar grid.
func (s *DefaultEditSessionService) PointerUp(ctx context.Context, sessionID string) (*models.EditSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		if sess.Device != models.DeviceDesktop {
			return ErrWrongDevice
		}
		sel := selection.DragSelector{State: &sess.Drag, Env: s.selectionEnv(sess)}
		sel.HandlePointerUp()
		return nil
	})
}

// Tap forwards a mobile tap to the two-tap machine.
func (s *DefaultEditSessionService) Tap(ctx context.Context, sessionID string, date models.CalendarDate) (*models.EditSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		if sess.Device != models.DeviceMobile {
			return ErrWrongDevice
		}
		sel := selection.TapSelector{State: &sess.Tap, Env: s.selectionEnv(sess)}
		sel.HandleTap(date)
		return nil
	})
}

// ConfirmSelection confirms the pending mobile tap pair.
func (s *DefaultEditSessionService) ConfirmSelection(ctx context.Context, sessionID string) (*models.EditSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		if sess.Device != models.DeviceMobile {
			return ErrWrongDevice
		}
		sel := selection.TapSelector{State: &sess.Tap, Env: s.selectionEnv(sess)}
		sel.Confirm()
		return nil
	})
}

// RemoveRange deletes the range starting on the given date. Removal never
// reopens any selection state.
func (s *DefaultEditSessionService) RemoveRange(ctx context.Context, sessionID string, start models.CalendarDate) (*models.EditSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		sess.SpecialDates.Remove(start)
		return nil
	})
}

// ClearRanges drops every range in the working copy.
func (s *DefaultEditSessionService) ClearRanges(ctx context.Context, sessionID string) (*models.EditSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.EditSession) error {
		sess.SpecialDates.Clear()
		return nil
	})
}
