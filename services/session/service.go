package session

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"
	"slotwise/services/schedule"
	"slotwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start loads the shop's persisted schedule into a fresh editing session and
// parks it in the session store under a new session ID. The session owns
// in-memory copies; the stored schedule is untouched until Save.
func (s *DefaultEditSessionService) Start(ctx context.Context, shopID string, device models.DeviceClass) (*models.EditSession, error) {
	doc, err := s.Repo.GetSchedule(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule for editing: %w", err)
	}

	sess := &models.EditSession{
		SessionID:    uuid.New().String(),
		ShopID:       shopID,
		Device:       device,
		EditMode:     models.ModeRegular,
		Availability: doc.Availability,
		SpecialDates: doc.SpecialDates,
		StartedAt:    time.Now(),
	}
	if err := s.Store.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the current session state.
func (s *DefaultEditSessionService) Get(ctx context.Context, sessionID string) (*models.EditSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// End discards the session. A drag or pending tap pair in flight is simply
// abandoned; nothing was committed to the store mid-selection.
func (s *DefaultEditSessionService) End(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// Summary aggregates the session's working copy of the range store.
func (s *DefaultEditSessionService) Summary(ctx context.Context, sessionID string) (models.RangeSummary, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return models.RangeSummary{}, err
	}
	return schedule.Summarize(sess.SpecialDates.List()), nil
}

// Save hands the session's snapshot to the shop repository. Persistence
// failures propagate to the caller, which owns messaging and manual retry.
// There is no in-flight guard: a second save may start before the first
// completes, matching the original contract. The schedule read-cache is
// invalidated after a successful save. The session stays open so the owner
// can keep editing.
func (s *DefaultEditSessionService) Save(ctx context.Context, sessionID string) error {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	doc := &models.ShopSchedule{
		ShopID:       sess.ShopID,
		Availability: sess.Availability,
		SpecialDates: sess.SpecialDates,
	}
	if err := s.Repo.SaveSchedule(ctx, doc); err != nil {
		return fmt.Errorf("failed to save shop schedule: %w", err)
	}

	schedule.InvalidateSchedule(ctx, sess.ShopID)
	utils.GetLogger().Info("shop schedule saved",
		zap.String("shopID", sess.ShopID),
		zap.String("sessionID", sess.SessionID))
	return nil
}

// mutate loads the session, applies fn, and writes the result back. The
// write-back doubles as the observer notification: every committed mutation
// re-serializes the session, and the OnChange hook fires afterwards.
func (s *DefaultEditSessionService) mutate(ctx context.Context, sessionID string, fn func(*models.EditSession) error) (*models.EditSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.Store.Put(ctx, sess); err != nil {
		return nil, err
	}
	if s.OnChange != nil {
		s.OnChange(sess)
	}
	return sess, nil
}
