package routes

import (
	"gestao_igreja/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSocial = "/social"

func addSocialRoutes(rg *gin.RouterGroup, h *handlers.SocialHandler) {
	social := rg.Group(PathSocial)
	social.GET("/stats", h.SocialStats)
	social.POST("/assistances", h.Distribute)

	beneficiaries := social.Group("/beneficiaries")
	{
		beneficiaries.GET("", h.ListBeneficiaries)
		beneficiaries.POST("", h.CreateBeneficiary)
		beneficiaries.GET("/:id", h.GetBeneficiary)
		beneficiaries.PUT("/:id", h.UpdateBeneficiary)
		beneficiaries.DELETE("/:id", h.DeleteBeneficiary)
	}

	resources := social.Group("/resources")
	{
		resources.GET("", h.ListResources)
		resources.POST("", h.CreateResource)
		resources.GET("/:id", h.GetResource)
		resources.PUT("/:id", h.UpdateResource)
		resources.DELETE("/:id", h.DeleteResource)
	}
}
