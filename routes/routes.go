package routes

import (
	"net/http"
	"time"

	"slotwise/handlers"
	"slotwise/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes sets up the owner-facing editing endpoints.
func RegisterSessionRoutes(r *gin.Engine, sh *handlers.EditSessionHandler) {
	api := r.Group("/api/sessions")
	{
		api.POST("", sh.StartSessionHandler)
		api.GET("/:sessionID", sh.GetSessionHandler)
		api.DELETE("/:sessionID", sh.EndSessionHandler)

		// Weekly availability edits.
		api.PUT("/:sessionID/availability/:day", sh.SetDayHandler)
		api.POST("/:sessionID/availability/:day/preset", sh.ApplyPresetHandler)
		api.PUT("/:sessionID/availability/:day/slot-duration", sh.SetSlotDurationHandler)
		api.POST("/:sessionID/availability/:day/copy", sh.CopyToAllDaysHandler)

		// Range selection.
		api.PUT("/:sessionID/edit-mode", sh.SetEditModeHandler)
		api.POST("/:sessionID/pointer", sh.PointerEventHandler)
		api.POST("/:sessionID/tap", sh.TapHandler)
		api.POST("/:sessionID/confirm", sh.ConfirmSelectionHandler)
		api.DELETE("/:sessionID/ranges/:startDate", sh.RemoveRangeHandler)
		api.DELETE("/:sessionID/ranges", sh.ClearRangesHandler)

		api.GET("/:sessionID/summary", sh.SessionSummaryHandler)
		api.POST("/:sessionID/save", sh.SaveSessionHandler)
	}
}

// RegisterShopRoutes sets up the read-only consumer endpoints.
func RegisterShopRoutes(r *gin.Engine, sch *handlers.ScheduleHandler) {
	api := r.Group("/api/shops")
	{
		api.GET("/:shopID/schedule", sch.GetScheduleHandler)
		api.GET("/:shopID/slots", sch.GetSlotsHandler)
		api.GET("/:shopID/summary", sch.ShopSummaryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.EditSessionHandler, sch *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSessionRoutes(r, sh)
	RegisterShopRoutes(r, sch)
}
