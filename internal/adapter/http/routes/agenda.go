package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathEvents  = "/events"
	PathRosters = "/rosters"
)

func addAgendaRoutes(rg *gin.RouterGroup, h *handlerSet) {
	events := rg.Group(PathEvents)
	{
		events.GET("", h.events.ListEvents)
		events.GET("/stats", h.events.EventStats)
		events.GET("/calendar", h.events.Calendar)
		events.GET("/draft", h.events.DraftEvent)
		events.POST("", h.events.CreateEvent)
		events.GET("/:id", h.events.GetEvent)
		events.GET("/:id/draft", h.events.DraftEvent)
		events.PUT("/:id", h.events.UpdateEvent)
		events.DELETE("/:id", h.events.DeleteEvent)

		events.GET("/blocks", h.events.ListBlockedDates)
		events.POST("/blocks", h.events.BlockDate)
		events.DELETE("/blocks/:id", h.events.UnblockDate)
	}

	rosters := rg.Group(PathRosters)
	{
		rosters.GET("", h.rosters.ListRosters)
		rosters.GET("/stats", h.rosters.RosterStats)
		rosters.GET("/draft", h.rosters.DraftRoster)
		rosters.POST("", h.rosters.CreateRoster)
		rosters.GET("/:id", h.rosters.GetRoster)
		rosters.GET("/:id/draft", h.rosters.DraftRoster)
		rosters.PUT("/:id", h.rosters.UpdateRoster)
		rosters.DELETE("/:id", h.rosters.DeleteRoster)
		rosters.POST("/:id/notify", h.rosters.NotifyRoster)
	}
}
