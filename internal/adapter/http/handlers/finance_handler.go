package handlers

import (
	"net/http"

	request "gestao_igreja/internal/adapter/http/dto/request"
	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeFinance = "finance"

// FinanceHandler serves transactions (entradas and saídas).
type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	var q request.TransactionListQuery
	if !bindQuery(c, scopeFinance, &q) {
		return
	}
	txs, err := h.usecase.List(c.Request.Context(), q.ToUseCase())
	if err != nil {
		abortWithError(c, scopeFinance, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(txs, response.FromTransaction))
}

func (h *FinanceHandler) GetTransaction(c *gin.Context) {
	id, ok := bindID(c, scopeFinance)
	if !ok {
		return
	}
	tx, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeFinance, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func (h *FinanceHandler) DraftTransaction(c *gin.Context) {
	id, ok := optionalID(c, scopeFinance)
	if !ok {
		return
	}
	form, err := h.usecase.Draft(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeFinance, "draft", err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	h.save(c, 0)
}

func (h *FinanceHandler) UpdateTransaction(c *gin.Context) {
	if id, ok := bindID(c, scopeFinance); ok {
		h.save(c, id)
	}
}

func (h *FinanceHandler) save(c *gin.Context, id int64) {
	var form usecase.TransactionForm
	if !bindJSON(c, scopeFinance, &form) {
		return
	}
	tx, err := h.usecase.Save(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeFinance, "save", err)
		return
	}
	writeSaved(c, id, response.FromTransaction(tx))
}

func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	id, ok := bindID(c, scopeFinance)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeFinance, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FinanceStats returns totals as decimal strings.
func (h *FinanceHandler) FinanceStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeFinance, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *FinanceHandler) MonthlyFlow(c *gin.Context) {
	flow, err := h.usecase.MonthlyFlow(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeFinance, "monthly-flow", err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(flow))
}
