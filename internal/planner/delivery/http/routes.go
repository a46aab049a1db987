package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The group is
// expected to carry the user-scope and rate-limit middleware already.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/week", h.Week)
	rg.POST("/week/reload", h.Reload)

	events := rg.Group("/events")
	{
		events.POST("", h.SaveEvent)
		events.DELETE("/:id", h.RemoveEvent)
	}

	gestures := rg.Group("/gestures")
	{
		gestures.POST("/drag", h.BeginDrag)
		gestures.POST("/preview", h.PreviewDrop)
		gestures.POST("/drop", h.Drop)
		gestures.POST("/unassign", h.DropOnUnassigned)
		gestures.POST("/cancel", h.CancelDrag)
		gestures.POST("/click", h.ClickSlot)
		gestures.POST("/resize/start", h.BeginResize)
		gestures.POST("/resize/step", h.Resize)
		gestures.POST("/resize/end", h.EndResize)
	}

	rg.POST("/assist", h.Assist)

	sync := rg.Group("/sync")
	{
		sync.POST("/down", h.SyncDown)
		sync.POST("/up", h.SyncUp)
	}

	rules := rg.Group("/rules")
	{
		rules.POST("", h.AddRule)
		rules.DELETE("/:id", h.RemoveRule)
	}

	routines := rg.Group("/routines")
	{
		routines.POST("", h.AddRoutine)
		routines.DELETE("/:id", h.RemoveRoutine)
		routines.POST("/import", h.ImportRoutines)
	}

	rg.GET("/export", h.ExportWeek)
}
