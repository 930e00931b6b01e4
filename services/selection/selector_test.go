package selection_test

import (
	"testing"

	"slotwise/models"
	"slotwise/services/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv wires a selector to an in-memory store with a fixed clock.
type testEnv struct {
	store   models.SpecialDates
	mode    models.EditMode
	today   models.CalendarDate
	changes int
}

func newTestEnv(mode models.EditMode) *testEnv {
	return &testEnv{
		store: models.SpecialDates{},
		mode:  mode,
		today: "2025-07-01",
	}
}

func (e *testEnv) env() selection.Env {
	return selection.Env{
		Today:    func() models.CalendarDate { return e.today },
		Mode:     func() models.EditMode { return e.mode },
		Existing: e.store.List,
		OnCommit: e.store.Put,
		OnChange: func() { e.changes++ },
	}
}

func TestDragSelector(t *testing.T) {
	t.Run("drag commits normalized range with armed mode", func(t *testing.T) {
		env := newTestEnv(models.ModePromo)
		sel := selection.DragSelector{State: &models.DragState{}, Env: env.env()}

		sel.HandlePointerDown("2025-07-01")
		assert.True(t, sel.State.Dragging)
		sel.HandlePointerMove("2025-07-03")
		sel.HandlePointerMove("2025-07-05")
		sel.HandlePointerUp()

		assert.False(t, sel.State.Dragging)
		assert.Empty(t, sel.State.Anchor)
		assert.Empty(t, sel.State.Cursor)

		rec, ok := env.store.Get("2025-07-01")
		require.True(t, ok)
		assert.Equal(t, models.CalendarDate("2025-07-05"), rec.EndDate)
		assert.Equal(t, models.RangePromo, rec.Type)
	})

	t.Run("backwards drag is normalized", func(t *testing.T) {
		env := newTestEnv(models.ModeHoliday)
		sel := selection.DragSelector{State: &models.DragState{}, Env: env.env()}

		sel.HandlePointerDown("2025-07-10")
		sel.HandlePointerMove("2025-07-06")
		sel.HandlePointerUp()

		rec, ok := env.store.Get("2025-07-06")
		require.True(t, ok)
		assert.Equal(t, models.CalendarDate("2025-07-10"), rec.EndDate)
	})

	t.Run("past start date is ignored with no state change", func(t *testing.T) {
		env := newTestEnv(models.ModeHoliday)
		sel := selection.DragSelector{State: &models.DragState{}, Env: env.env()}

		sel.HandlePointerDown("2025-06-30")
		assert.False(t, sel.State.Dragging)
		assert.Equal(t, 0, env.changes)

		// Moves and ups outside a drag are ignored too.
		sel.HandlePointerMove("2025-07-05")
		sel.HandlePointerUp()
		assert.Empty(t, env.store)
	})

	t.Run("overlapping selection is a true no-op", func(t *testing.T) {
		env := newTestEnv(models.ModeHoliday)
		env.store.Put(models.DateRangeRecord{
			StartDate: "2025-08-10", EndDate: "2025-08-12", Type: models.RangeHoliday,
		})
		env.mode = models.ModePromo
		sel := selection.DragSelector{State: &models.DragState{}, Env: env.env()}

		sel.HandlePointerDown("2025-08-11")
		sel.HandlePointerMove("2025-08-13")
		sel.HandlePointerUp()

		// Rejection is silent: store contents unchanged, drag state cleared.
		require.Len(t, env.store, 1)
		rec, ok := env.store.Get("2025-08-10")
		require.True(t, ok)
		assert.Equal(t, models.RangeHoliday, rec.Type)
		assert.False(t, sel.State.Dragging)
	})

	t.Run("single click commits a one-day range", func(t *testing.T) {
		env := newTestEnv(models.ModeSpecial)
		sel := selection.DragSelector{State: &models.DragState{}, Env: env.env()}

		sel.HandlePointerDown("2025-07-04")
		sel.HandlePointerUp()

		rec, ok := env.store.Get("2025-07-04")
		require.True(t, ok)
		assert.Equal(t, rec.StartDate, rec.EndDate)
	})

	t.Run("regular mode never persists a tag", func(t *testing.T) {
		env := newTestEnv(models.ModeRegular)
		sel := selection.DragSelector{State: &models.DragState{}, Env: env.env()}

		sel.HandlePointerDown("2025-07-01")
		sel.HandlePointerUp()

		assert.Empty(t, env.store)
	})
}

func TestTapSelector(t *testing.T) {
	t.Run("tap tap confirm commits normalized pair", func(t *testing.T) {
		env := newTestEnv(models.ModeHoliday)
		sel := selection.TapSelector{State: &models.TapState{}, Env: env.env()}

		sel.HandleTap("2025-08-05")
		assert.Equal(t, models.CalendarDate("2025-08-05"), sel.State.Start)
		assert.False(t, sel.State.AwaitingConfirm)

		// Second tap before the start swaps the pair.
		sel.HandleTap("2025-08-03")
		assert.Equal(t, models.CalendarDate("2025-08-03"), sel.State.Start)
		assert.Equal(t, models.CalendarDate("2025-08-05"), sel.State.End)
		assert.True(t, sel.State.AwaitingConfirm)

		sel.Confirm()
		assert.False(t, sel.State.AwaitingConfirm)
		assert.Empty(t, sel.State.Start)

		require.Len(t, env.store, 1)
		rec, ok := env.store.Get("2025-08-03")
		require.True(t, ok)
		assert.Equal(t, models.CalendarDate("2025-08-05"), rec.EndDate)
		assert.Equal(t, models.RangeHoliday, rec.Type)
	})

	t.Run("third tap abandons the pending pair", func(t *testing.T) {
		env := newTestEnv(models.ModePromo)
		sel := selection.TapSelector{State: &models.TapState{}, Env: env.env()}

		sel.HandleTap("2025-08-05")
		sel.HandleTap("2025-08-07")
		require.True(t, sel.State.AwaitingConfirm)

		sel.HandleTap("2025-08-09")
		assert.False(t, sel.State.AwaitingConfirm)
		assert.Equal(t, models.CalendarDate("2025-08-09"), sel.State.Start)
		assert.Empty(t, sel.State.End)
		assert.Empty(t, env.store, "the abandoned pair must never be committed")

		sel.HandleTap("2025-08-10")
		sel.Confirm()
		rec, ok := env.store.Get("2025-08-09")
		require.True(t, ok)
		assert.Equal(t, models.CalendarDate("2025-08-10"), rec.EndDate)
	})

	t.Run("first tap in the past is ignored", func(t *testing.T) {
		env := newTestEnv(models.ModeHoliday)
		sel := selection.TapSelector{State: &models.TapState{}, Env: env.env()}

		sel.HandleTap("2025-06-15")
		assert.Empty(t, sel.State.Start)
		assert.Equal(t, 0, env.changes)
	})

	t.Run("overlapping confirm is silently discarded and resets", func(t *testing.T) {
		env := newTestEnv(models.ModeSpecial)
		env.store.Put(models.DateRangeRecord{
			StartDate: "2025-08-10", EndDate: "2025-08-12", Type: models.RangeHoliday,
		})
		sel := selection.TapSelector{State: &models.TapState{}, Env: env.env()}

		sel.HandleTap("2025-08-11")
		sel.HandleTap("2025-08-13")
		sel.Confirm()

		assert.Len(t, env.store, 1)
		assert.False(t, sel.State.AwaitingConfirm)
		assert.Empty(t, sel.State.Start)
	})

	t.Run("confirm outside awaiting state is ignored", func(t *testing.T) {
		env := newTestEnv(models.ModeHoliday)
		sel := selection.TapSelector{State: &models.TapState{}, Env: env.env()}

		sel.Confirm()
		assert.Empty(t, env.store)
		assert.Equal(t, 0, env.changes)
	})
}
