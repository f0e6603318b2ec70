package handlers

import (
	"net/http"

	request "gestao_igreja/internal/adapter/http/dto/request"
	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeGroup = "groups"

// GroupHandler serves células.
type GroupHandler struct {
	usecase usecase.IGroupUseCase
}

func NewGroupHandler(uc usecase.IGroupUseCase) *GroupHandler {
	return &GroupHandler{usecase: uc}
}

func (h *GroupHandler) ListGroups(c *gin.Context) {
	var q request.SearchQuery
	if !bindQuery(c, scopeGroup, &q) {
		return
	}
	groups, err := h.usecase.List(c.Request.Context(), q.Q)
	if err != nil {
		abortWithError(c, scopeGroup, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.NewList[entities.Group](groups))
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := bindID(c, scopeGroup)
	if !ok {
		return
	}
	g, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeGroup, "get", err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *GroupHandler) DraftGroup(c *gin.Context) {
	id, ok := optionalID(c, scopeGroup)
	if !ok {
		return
	}
	form, err := h.usecase.Draft(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeGroup, "draft", err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	h.save(c, 0)
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	if id, ok := bindID(c, scopeGroup); ok {
		h.save(c, id)
	}
}

func (h *GroupHandler) save(c *gin.Context, id int64) {
	var form usecase.GroupForm
	if !bindJSON(c, scopeGroup, &form) {
		return
	}
	g, err := h.usecase.Save(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeGroup, "save", err)
		return
	}
	writeSaved(c, id, g)
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := bindID(c, scopeGroup)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeGroup, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) GroupStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeGroup, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
