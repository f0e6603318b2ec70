package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathFinance   = "/finance"
	PathAssets    = "/assets"
	PathDashboard = "/dashboard"
)

func addFinanceRoutes(rg *gin.RouterGroup, h *handlerSet) {
	finance := rg.Group(PathFinance)
	{
		finance.GET("/stats", h.finance.FinanceStats)
		finance.GET("/monthly-flow", h.finance.MonthlyFlow)

		tx := finance.Group("/transactions")
		tx.GET("", h.finance.ListTransactions)
		tx.GET("/draft", h.finance.DraftTransaction)
		tx.POST("", h.finance.CreateTransaction)
		tx.GET("/:id", h.finance.GetTransaction)
		tx.GET("/:id/draft", h.finance.DraftTransaction)
		tx.PUT("/:id", h.finance.UpdateTransaction)
		tx.DELETE("/:id", h.finance.DeleteTransaction)
	}

	assets := rg.Group(PathAssets)
	{
		assets.GET("", h.assets.ListAssets)
		assets.GET("/stats", h.assets.AssetStats)
		assets.GET("/draft", h.assets.DraftAsset)
		assets.POST("", h.assets.CreateAsset)
		assets.GET("/:id", h.assets.GetAsset)
		assets.GET("/:id/draft", h.assets.DraftAsset)
		assets.PUT("/:id", h.assets.UpdateAsset)
		assets.DELETE("/:id", h.assets.DeleteAsset)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("", h.dashboard.Snapshot)
		dashboard.GET("/transactions", h.dashboard.RecentTransactions)
	}
}
