// Package schedule holds the derivation side of the engine: the weekly
// availability operations, the slot generator, and the range analytics, plus
// the read service the downstream booking consumer calls.
package schedule

import (
	"context"

	shopRepo "slotwise/database/repository/shop"
	"slotwise/models"
)

// ScheduleService is the consumer surface over persisted schedules.
type ScheduleService interface {
	GetSchedule(ctx context.Context, shopID string) (*models.ShopSchedule, error)
	GetSlotsFor(ctx context.Context, shopID string, date models.CalendarDate) ([]models.Slot, error)
	Summary(ctx context.Context, shopID string) (models.RangeSummary, error)
}

// DefaultScheduleService reads through the shop repository with a Redis
// cache in front; the editing session invalidates the cache on save.
type DefaultScheduleService struct {
	Repo shopRepo.ShopScheduleRepository
}
