package handlers

import (
	"net/http"

	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeDashboard = "dashboard"

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Snapshot(c *gin.Context) {
	snap, err := h.usecase.Snapshot(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeDashboard, "snapshot", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

type recentQuery struct {
	Limit int `form:"limit,default=5" binding:"omitempty,min=1,max=50"`
}

func (h *DashboardHandler) RecentTransactions(c *gin.Context) {
	var q recentQuery
	if !bindQuery(c, scopeDashboard, &q) {
		return
	}
	txs, err := h.usecase.RecentTransactions(c.Request.Context(), q.Limit)
	if err != nil {
		abortWithError(c, scopeDashboard, "recent-transactions", err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(txs, response.FromTransaction))
}
