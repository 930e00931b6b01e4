package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotwise/config"
	"slotwise/models"
	"slotwise/utils"

	"go.uber.org/zap"
)

func cacheKey(shopID string) string {
	return "schedule:" + shopID
}

func cacheTTL() time.Duration {
	return time.Duration(config.AppConfig.ScheduleCacheTTLSec) * time.Second
}

// InvalidateSchedule drops a shop's cached schedule. Called after every save
// so consumers never serve slots from a stale template.
func InvalidateSchedule(ctx context.Context, shopID string) {
	if err := utils.GetScheduleCacheClient().Del(ctx, cacheKey(shopID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate schedule cache",
			zap.String("shopID", shopID), zap.Error(err))
	}
}

// GetSchedule returns the shop's persisted schedule, cache-aside.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, shopID string) (*models.ShopSchedule, error) {
	cacheClient := utils.GetScheduleCacheClient()

	if cached, err := cacheClient.Get(ctx, cacheKey(shopID)).Result(); err == nil {
		var doc models.ShopSchedule
		if err := json.Unmarshal([]byte(cached), &doc); err == nil {
			return &doc, nil
		}
	}

	doc, err := s.Repo.GetSchedule(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop schedule: %w", err)
	}

	if data, err := json.Marshal(doc); err == nil {
		if err := cacheClient.Set(ctx, cacheKey(shopID), data, cacheTTL()).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache schedule",
				zap.String("shopID", shopID), zap.Error(err))
		}
	}
	return doc, nil
}

// GetSlotsFor computes the bookable slots for one calendar date. Dates
// covered by a holiday range yield no slots; special and promo ranges leave
// the weekday template in force.
func (s *DefaultScheduleService) GetSlotsFor(ctx context.Context, shopID string, date models.CalendarDate) ([]models.Slot, error) {
	doc, err := s.GetSchedule(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return SlotsForDate(doc, date), nil
}

// Summary aggregates the shop's persisted special date ranges.
func (s *DefaultScheduleService) Summary(ctx context.Context, shopID string) (models.RangeSummary, error) {
	doc, err := s.GetSchedule(ctx, shopID)
	if err != nil {
		return models.RangeSummary{}, err
	}
	return Summarize(doc.SpecialDates.List()), nil
}
