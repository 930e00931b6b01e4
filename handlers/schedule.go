package handlers

import (
	"net/http"

	"slotwise/models"
	"slotwise/services/schedule"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the read-only consumer surface used by the booking
// flow. Labels is an opaque display-name lookup supplied by the caller.
type ScheduleHandler struct {
	Service schedule.ScheduleService
	Labels  models.Labels
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(svc schedule.ScheduleService, labels models.Labels) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Labels: labels}
}

// GetScheduleHandler returns the shop's persisted weekly availability and
// special date ranges.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	shopID := c.Param("shopID")
	doc, err := h.Service.GetSchedule(c.Request.Context(), shopID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch schedule", zap.String("shopID", shopID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": doc})
}

// GetSlotsHandler returns the bookable slots for one calendar date.
func (h *ScheduleHandler) GetSlotsHandler(c *gin.Context) {
	shopID := c.Param("shopID")
	date := models.CalendarDate(c.Query("date"))
	if !date.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter must be YYYY-MM-DD"})
		return
	}

	slots, err := h.Service.GetSlotsFor(c.Request.Context(), shopID, date)
	if err != nil {
		utils.GetLogger().Error("failed to compute slots",
			zap.String("shopID", shopID), zap.String("date", string(date)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute slots", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"day":   h.Labels.For(string(date.Weekday())),
		"slots": slots,
	})
}

// ShopSummaryHandler returns range counts with display labels applied.
func (h *ScheduleHandler) ShopSummaryHandler(c *gin.Context) {
	shopID := c.Param("shopID")
	summary, err := h.Service.Summary(c.Request.Context(), shopID)
	if err != nil {
		utils.GetLogger().Error("failed to summarize ranges", zap.String("shopID", shopID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize ranges", "message": err.Error()})
		return
	}

	labeled := make(map[string]int, len(summary.ByType))
	for rangeType, count := range summary.ByType {
		labeled[h.Labels.For(string(rangeType))] = count
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "byLabel": labeled})
}
