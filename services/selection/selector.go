package selection

import (
	"slotwise/models"
)

// Env supplies a selector with everything outside its own state: the clock,
// the armed edit mode, the records to validate against, and the observer
// hooks. OnCommit receives each committed record; OnChange fires after every
// state transition so the owner can re-serialize or re-render.
type Env struct {
	Today    func() models.CalendarDate
	Mode     func() models.EditMode
	Existing func() []models.DateRangeRecord
	OnCommit func(models.DateRangeRecord)
	OnChange func()
}

func (e Env) today() models.CalendarDate {
	if e.Today != nil {
		return e.Today()
	}
	return models.Today()
}

func (e Env) changed() {
	if e.OnChange != nil {
		e.OnChange()
	}
}

// commit normalizes the candidate and pushes it through the overlap check.
// Overlapping candidates are discarded silently: no record, no error
// surfaced. The regular edit mode is a UI marker, never persisted as a tag,
// so a selection committed under it is dropped as well.
func (e Env) commit(a, b models.CalendarDate) {
	rec := models.DateRangeRecord{StartDate: a, EndDate: b}.Normalized()

	mode := models.ModeRegular
	if e.Mode != nil {
		mode = e.Mode()
	}
	if !models.ValidRangeTypes[models.RangeType(mode)] {
		return
	}
	rec.Type = models.RangeType(mode)

	var existing []models.DateRangeRecord
	if e.Existing != nil {
		existing = e.Existing()
	}
	if Overlaps(rec.StartDate, rec.EndDate, existing) {
		return
	}
	if e.OnCommit != nil {
		e.OnCommit(rec)
	}
}

// DragSelector is the desktop drag-select machine: Idle -> Dragging -> Idle.
type DragSelector struct {
	State *models.DragState
	Env   Env
}

// HandlePointerDown starts a drag anchored at date. Past dates are ignored
// with no state change; they are unreachable, not errors.
func (s *DragSelector) HandlePointerDown(date models.CalendarDate) {
	if date.Before(s.Env.today()) {
		return
	}
	s.State.Dragging = true
	s.State.Anchor = date
	s.State.Cursor = date
	s.Env.changed()
}

// HandlePointerMove updates the drag cursor. No validation happens during a
// drag; the visual range is [min(anchor,cursor), max(anchor,cursor)].
func (s *DragSelector) HandlePointerMove(date models.CalendarDate) {
	if !s.State.Dragging {
		return
	}
	s.State.Cursor = date
	s.Env.changed()
}

// HandlePointerUp ends the drag and tries to commit the normalized range.
// The caller wires this to pointer-up anywhere, including a global listener
// and the pointer leaving the calendar container, so a drag ending outside
// the grid still resolves. Anchor and cursor are cleared either way.
func (s *DragSelector) HandlePointerUp() {
	if !s.State.Dragging {
		return
	}
	anchor, cursor := s.State.Anchor, s.State.Cursor
	s.State.Dragging = false
	s.State.Anchor = ""
	s.State.Cursor = ""
	s.Env.commit(anchor, cursor)
	s.Env.changed()
}

// TapSelector is the mobile two-tap machine:
// WaitingStart -> WaitingEnd -> AwaitingConfirm -> WaitingStart.
type TapSelector struct {
	State *models.TapState
	Env   Env
}

// HandleTap advances the machine one tap. The first tap sets the start (past
// dates ignored), the second sets the end with a swap when it precedes the
// start, and a third tap before confirm abandons the pending pair and
// restarts with the tapped date as the new start.
func (s *TapSelector) HandleTap(date models.CalendarDate) {
	switch {
	case s.State.AwaitingConfirm:
		s.State.Start = date
		s.State.End = ""
		s.State.AwaitingConfirm = false
	case s.State.Start == "":
		if date.Before(s.Env.today()) {
			return
		}
		s.State.Start = date
	default:
		if date.Before(s.State.Start) {
			s.State.End = s.State.Start
			s.State.Start = date
		} else {
			s.State.End = date
		}
		s.State.AwaitingConfirm = true
	}
	s.Env.changed()
}

// Confirm tries to commit the pending pair and resets to WaitingStart
// whether or not the commit survived validation. Confirm outside the
// AwaitingConfirm state is ignored.
func (s *TapSelector) Confirm() {
	if !s.State.AwaitingConfirm {
		return
	}
	start, end := s.State.Start, s.State.End
	s.State.Start = ""
	s.State.End = ""
	s.State.AwaitingConfirm = false
	s.Env.commit(start, end)
	s.Env.changed()
}
