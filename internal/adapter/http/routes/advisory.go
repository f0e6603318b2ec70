package routes

import (
	"gestao_igreja/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdvisory = "/advisory"

func addAdvisoryRoutes(rg *gin.RouterGroup, h *handlers.AdvisoryHandler) {
	advisory := rg.Group(PathAdvisory)
	{
		advisory.GET("", h.ListInsights)
		advisory.GET("/:topic", h.GetInsight)
		advisory.POST("/:topic", h.GenerateInsight)
	}
}
