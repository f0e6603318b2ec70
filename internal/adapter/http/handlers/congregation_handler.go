package handlers

import (
	"net/http"

	request "gestao_igreja/internal/adapter/http/dto/request"
	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeCongregation = "congregations"

// CongregationHandler serves the congregations (filiais).
type CongregationHandler struct {
	usecase usecase.ICongregationUseCase
}

func NewCongregationHandler(uc usecase.ICongregationUseCase) *CongregationHandler {
	return &CongregationHandler{usecase: uc}
}

func (h *CongregationHandler) ListCongregations(c *gin.Context) {
	var q request.SearchQuery
	if !bindQuery(c, scopeCongregation, &q) {
		return
	}
	congregations, err := h.usecase.List(c.Request.Context(), q.Q)
	if err != nil {
		abortWithError(c, scopeCongregation, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.NewList[entities.Congregation](congregations))
}

func (h *CongregationHandler) GetCongregation(c *gin.Context) {
	id, ok := bindID(c, scopeCongregation)
	if !ok {
		return
	}
	cg, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeCongregation, "get", err)
		return
	}
	c.JSON(http.StatusOK, cg)
}

func (h *CongregationHandler) DraftCongregation(c *gin.Context) {
	id, ok := optionalID(c, scopeCongregation)
	if !ok {
		return
	}
	form, err := h.usecase.Draft(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeCongregation, "draft", err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *CongregationHandler) CreateCongregation(c *gin.Context) {
	h.save(c, 0)
}

func (h *CongregationHandler) UpdateCongregation(c *gin.Context) {
	if id, ok := bindID(c, scopeCongregation); ok {
		h.save(c, id)
	}
}

func (h *CongregationHandler) save(c *gin.Context, id int64) {
	var form usecase.CongregationForm
	if !bindJSON(c, scopeCongregation, &form) {
		return
	}
	cg, err := h.usecase.Save(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeCongregation, "save", err)
		return
	}
	writeSaved(c, id, cg)
}

func (h *CongregationHandler) DeleteCongregation(c *gin.Context) {
	id, ok := bindID(c, scopeCongregation)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeCongregation, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CongregationHandler) CongregationStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeCongregation, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
