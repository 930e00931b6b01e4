package handlers

import (
	"errors"
	"net/http"

	"slotwise/models"
	"slotwise/services/session"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EditSessionHandler exposes the owner-facing editing surface.
type EditSessionHandler struct {
	Service session.EditSessionService
}

// NewEditSessionHandler constructs the handler.
func NewEditSessionHandler(svc session.EditSessionService) *EditSessionHandler {
	return &EditSessionHandler{Service: svc}
}

type startSessionRequest struct {
	ShopID string             `json:"shopId" binding:"required"`
	Device models.DeviceClass `json:"device" binding:"required"`
}

type dayScheduleRequest struct {
	Closed       bool             `json:"closed"`
	Open         models.TimeOfDay `json:"open"`
	Close        models.TimeOfDay `json:"close"`
	SlotDuration int              `json:"slotDuration"`
}

type presetRequest struct {
	Open  models.TimeOfDay `json:"open" binding:"required"`
	Close models.TimeOfDay `json:"close" binding:"required"`
}

type slotDurationRequest struct {
	Minutes int `json:"minutes" binding:"required,oneof=15 30 45 60"`
}

type editModeRequest struct {
	Mode models.EditMode `json:"mode" binding:"required"`
}

type pointerEventRequest struct {
	Event string              `json:"event" binding:"required,oneof=down move up"`
	Date  models.CalendarDate `json:"date"`
}

type tapRequest struct {
	Date models.CalendarDate `json:"date" binding:"required"`
}

// respondSessionError maps service errors onto HTTP statuses.
func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrWrongDevice), errors.Is(err, session.ErrUnknownWeekday):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("editing session request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
	}
}

// StartSessionHandler opens an editing session for a shop.
func (h *EditSessionHandler) StartSessionHandler(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if !models.ValidDeviceClasses[req.Device] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "device must be desktop or mobile"})
		return
	}

	sess, err := h.Service.Start(c.Request.Context(), req.ShopID, req.Device)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": sess})
}

// GetSessionHandler returns the current session state.
func (h *EditSessionHandler) GetSessionHandler(c *gin.Context) {
	sess, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// EndSessionHandler discards the session without saving.
func (h *EditSessionHandler) EndSessionHandler(c *gin.Context) {
	if err := h.Service.End(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Editing session discarded"})
}

func weekdayParam(c *gin.Context) (models.Weekday, bool) {
	day := models.Weekday(c.Param("day"))
	if !models.ValidWeekdays[day] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown weekday in path"})
		return "", false
	}
	return day, true
}

// SetDayHandler sets or clears one weekday's opening window.
func (h *EditSessionHandler) SetDayHandler(c *gin.Context) {
	day, ok := weekdayParam(c)
	if !ok {
		return
	}

	var req dayScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	var sched *models.DaySchedule
	if !req.Closed {
		if !req.Open.Valid() || !req.Close.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "open and close must be HH:MM times"})
			return
		}
		sched = &models.DaySchedule{Open: req.Open, Close: req.Close, SlotDuration: req.SlotDuration}
	}

	sess, err := h.Service.SetDay(c.Request.Context(), c.Param("sessionID"), day, sched)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": sess.Availability})
}

// ApplyPresetHandler overwrites a day's open/close pair from a preset.
func (h *EditSessionHandler) ApplyPresetHandler(c *gin.Context) {
	day, ok := weekdayParam(c)
	if !ok {
		return
	}

	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if !req.Open.Valid() || !req.Close.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "open and close must be HH:MM times"})
		return
	}

	sess, err := h.Service.ApplyPreset(c.Request.Context(), c.Param("sessionID"), day, req.Open, req.Close)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": sess.Availability})
}

// SetSlotDurationHandler updates a day's slot length.
func (h *EditSessionHandler) SetSlotDurationHandler(c *gin.Context) {
	day, ok := weekdayParam(c)
	if !ok {
		return
	}

	var req slotDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot duration must be 15, 30, 45 or 60", "message": err.Error()})
		return
	}

	sess, err := h.Service.SetSlotDuration(c.Request.Context(), c.Param("sessionID"), day, req.Minutes)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": sess.Availability})
}

// CopyToAllDaysHandler spreads one day's hours across the week.
func (h *EditSessionHandler) CopyToAllDaysHandler(c *gin.Context) {
	day, ok := weekdayParam(c)
	if !ok {
		return
	}

	sess, err := h.Service.CopyToAllDays(c.Request.Context(), c.Param("sessionID"), day)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": sess.Availability})
}

// SetEditModeHandler arms the tag for the next committed selection.
func (h *EditSessionHandler) SetEditModeHandler(c *gin.Context) {
	var req editModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if !models.ValidEditModes[req.Mode] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be regular, holiday, special or promo"})
		return
	}

	sess, err := h.Service.SetEditMode(c.Request.Context(), c.Param("sessionID"), req.Mode)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"editMode": sess.EditMode})
}

// PointerEventHandler forwards desktop pointer events to the drag machine.
// A rejected or overlapping selection is a silent no-op, so the response is
// always the resulting session state.
func (h *EditSessionHandler) PointerEventHandler(c *gin.Context) {
	var req pointerEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	sessionID := c.Param("sessionID")
	ctx := c.Request.Context()

	var (
		sess *models.EditSession
		err  error
	)
	switch req.Event {
	case "down", "move":
		if !req.Date.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		if req.Event == "down" {
			sess, err = h.Service.PointerDown(ctx, sessionID, req.Date)
		} else {
			sess, err = h.Service.PointerMove(ctx, sessionID, req.Date)
		}
	case "up":
		sess, err = h.Service.PointerUp(ctx, sessionID)
	}
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drag": sess.Drag, "specialDates": sess.SpecialDates})
}

// TapHandler forwards a mobile tap to the two-tap machine.
func (h *EditSessionHandler) TapHandler(c *gin.Context) {
	var req tapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if !req.Date.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	sess, err := h.Service.Tap(c.Request.Context(), c.Param("sessionID"), req.Date)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tap": sess.Tap, "specialDates": sess.SpecialDates})
}

// ConfirmSelectionHandler confirms the pending mobile tap pair.
func (h *EditSessionHandler) ConfirmSelectionHandler(c *gin.Context) {
	sess, err := h.Service.ConfirmSelection(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tap": sess.Tap, "specialDates": sess.SpecialDates})
}

// RemoveRangeHandler deletes the range starting on the path date.
func (h *EditSessionHandler) RemoveRangeHandler(c *gin.Context) {
	start := models.CalendarDate(c.Param("startDate"))
	if !start.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
		return
	}

	sess, err := h.Service.RemoveRange(c.Request.Context(), c.Param("sessionID"), start)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialDates": sess.SpecialDates})
}

// ClearRangesHandler drops every range in the working copy.
func (h *EditSessionHandler) ClearRangesHandler(c *gin.Context) {
	sess, err := h.Service.ClearRanges(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialDates": sess.SpecialDates})
}

// SessionSummaryHandler returns counts over the session's working copy.
func (h *EditSessionHandler) SessionSummaryHandler(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// SaveSessionHandler persists the session snapshot. Failures surface here;
// the owner retries manually.
func (h *EditSessionHandler) SaveSessionHandler(c *gin.Context) {
	if err := h.Service.Save(c.Request.Context(), c.Param("sessionID")); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			respondSessionError(c, err)
			return
		}
		utils.GetLogger().Error("failed to save schedule", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save schedule", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved"})
}
