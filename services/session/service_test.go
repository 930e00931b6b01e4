package session_test

import (
	"context"
	"errors"
	"testing"

	"slotwise/models"
	"slotwise/services/session"

	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockShopScheduleRepo is a mock implementation of ShopScheduleRepository.
type MockShopScheduleRepo struct {
	testifymock.Mock
}

func (m *MockShopScheduleRepo) GetSchedule(ctx context.Context, shopID string) (*models.ShopSchedule, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).(*models.ShopSchedule), args.Error(1)
}

func (m *MockShopScheduleRepo) SaveSchedule(ctx context.Context, doc *models.ShopSchedule) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockShopScheduleRepo) DeleteSchedule(ctx context.Context, shopID string) error {
	args := m.Called(ctx, shopID)
	return args.Error(0)
}

// memorySessionStore keeps sessions in a map for tests.
type memorySessionStore struct {
	sessions map[string]*models.EditSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]*models.EditSession)}
}

func (m *memorySessionStore) Get(ctx context.Context, sessionID string) (*models.EditSession, error) {
	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return sess, nil
}

func (m *memorySessionStore) Put(ctx context.Context, sess *models.EditSession) error {
	m.sessions[sess.SessionID] = sess
	return nil
}

func (m *memorySessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func newService(t *testing.T, device models.DeviceClass) (*session.DefaultEditSessionService, *MockShopScheduleRepo, string) {
	t.Helper()

	repo := new(MockShopScheduleRepo)
	repo.On("GetSchedule", testifymock.Anything, "shop-1").Return(models.NewShopSchedule("shop-1"), nil)

	svc := &session.DefaultEditSessionService{
		Repo:  repo,
		Store: newMemorySessionStore(),
		Today: func() models.CalendarDate { return "2025-07-01" },
	}

	sess, err := svc.Start(context.Background(), "shop-1", device)
	require.NoError(t, err)
	require.NotEmpty(t, sess.SessionID)
	return svc, repo, sess.SessionID
}

func TestEditSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newService(t, models.DeviceDesktop)

	t.Run("fresh session starts regular with empty models", func(t *testing.T) {
		sess, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.ModeRegular, sess.EditMode)
		assert.Empty(t, sess.Availability)
		assert.Empty(t, sess.SpecialDates)
	})

	t.Run("unknown session yields not-found", func(t *testing.T) {
		_, err := svc.Get(ctx, "nope")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("end discards the session", func(t *testing.T) {
		require.NoError(t, svc.End(ctx, id))
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestEditSessionWeeklyEdits(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newService(t, models.DeviceDesktop)

	t.Run("set day and copy to all days", func(t *testing.T) {
		sess, err := svc.SetDay(ctx, id, models.Monday, &models.DaySchedule{Open: "10:00", Close: "18:00", SlotDuration: 45})
		require.NoError(t, err)
		require.NotNil(t, sess.Availability[models.Monday])

		_, err = svc.SetSlotDuration(ctx, id, models.Monday, 15)
		require.NoError(t, err)

		sess, err = svc.CopyToAllDays(ctx, id, models.Monday)
		require.NoError(t, err)
		for _, day := range models.AllWeekdays {
			require.NotNil(t, sess.Availability[day])
			assert.Equal(t, models.TimeOfDay("10:00"), sess.Availability[day].Open)
		}
	})

	t.Run("preset keeps the day's duration", func(t *testing.T) {
		sess, err := svc.ApplyPreset(ctx, id, models.Monday, "08:00", "12:00")
		require.NoError(t, err)
		assert.Equal(t, 15, sess.Availability[models.Monday].SlotDuration)
	})

	t.Run("unknown weekday is rejected", func(t *testing.T) {
		_, err := svc.SetDay(ctx, id, "noday", nil)
		assert.ErrorIs(t, err, session.ErrUnknownWeekday)
	})
}

func TestEditSessionDesktopSelection(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newService(t, models.DeviceDesktop)

	_, err := svc.SetEditMode(ctx, id, models.ModePromo)
	require.NoError(t, err)

	t.Run("drag commits a range", func(t *testing.T) {
		_, err := svc.PointerDown(ctx, id, "2025-07-01")
		require.NoError(t, err)
		_, err = svc.PointerMove(ctx, id, "2025-07-05")
		require.NoError(t, err)
		sess, err := svc.PointerUp(ctx, id)
		require.NoError(t, err)

		rec, ok := sess.SpecialDates.Get("2025-07-01")
		require.True(t, ok)
		assert.Equal(t, models.CalendarDate("2025-07-05"), rec.EndDate)
		assert.Equal(t, models.RangePromo, rec.Type)
	})

	t.Run("overlapping drag leaves the store untouched", func(t *testing.T) {
		_, err := svc.PointerDown(ctx, id, "2025-07-03")
		require.NoError(t, err)
		sess, err := svc.PointerUp(ctx, id)
		require.NoError(t, err)

		assert.Len(t, sess.SpecialDates, 1)
	})

	t.Run("tap on a desktop session is rejected", func(t *testing.T) {
		_, err := svc.Tap(ctx, id, "2025-07-10")
		assert.ErrorIs(t, err, session.ErrWrongDevice)
	})
}

func TestEditSessionMobileSelection(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newService(t, models.DeviceMobile)

	_, err := svc.SetEditMode(ctx, id, models.ModeHoliday)
	require.NoError(t, err)

	t.Run("tap tap confirm commits", func(t *testing.T) {
		_, err := svc.Tap(ctx, id, "2025-08-05")
		require.NoError(t, err)
		_, err = svc.Tap(ctx, id, "2025-08-03")
		require.NoError(t, err)
		sess, err := svc.ConfirmSelection(ctx, id)
		require.NoError(t, err)

		rec, ok := sess.SpecialDates.Get("2025-08-03")
		require.True(t, ok)
		assert.Equal(t, models.CalendarDate("2025-08-05"), rec.EndDate)
		assert.Equal(t, models.RangeHoliday, rec.Type)
	})

	t.Run("pointer events on a mobile session are rejected", func(t *testing.T) {
		_, err := svc.PointerDown(ctx, id, "2025-08-10")
		assert.ErrorIs(t, err, session.ErrWrongDevice)
	})

	t.Run("remove and summary work on the working copy", func(t *testing.T) {
		summary, err := svc.Summary(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Total)
		assert.Equal(t, 1, summary.ByType[models.RangeHoliday])

		sess, err := svc.RemoveRange(ctx, id, "2025-08-03")
		require.NoError(t, err)
		assert.Empty(t, sess.SpecialDates)
	})
}

func TestEditSessionSaveFailurePropagates(t *testing.T) {
	ctx := context.Background()
	svc, repo, id := newService(t, models.DeviceDesktop)

	backendDown := errors.New("backend unavailable")
	repo.On("SaveSchedule", testifymock.Anything, testifymock.Anything).Return(backendDown)

	err := svc.Save(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, backendDown)

	// The session survives a failed save so the owner can retry manually.
	_, err = svc.Get(ctx, id)
	assert.NoError(t, err)
}

func TestEditSessionObserver(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newService(t, models.DeviceDesktop)

	var observed int
	svc.OnChange = func(*models.EditSession) { observed++ }

	_, err := svc.SetEditMode(ctx, id, models.ModeSpecial)
	require.NoError(t, err)
	_, err = svc.PointerDown(ctx, id, "2025-07-02")
	require.NoError(t, err)

	assert.Equal(t, 2, observed)
}
