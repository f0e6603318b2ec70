package handlers

import (
	"log"
	"net/http"

	request "gestao_igreja/internal/adapter/http/dto/request"
	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeRoster = "rosters"

// RosterHandler serves escalas de serviço and their e-mail notification.
type RosterHandler struct {
	usecase usecase.IRosterUseCase
}

func NewRosterHandler(uc usecase.IRosterUseCase) *RosterHandler {
	return &RosterHandler{usecase: uc}
}

func (h *RosterHandler) ListRosters(c *gin.Context) {
	var q request.RosterListQuery
	if !bindQuery(c, scopeRoster, &q) {
		return
	}
	rosters, err := h.usecase.List(c.Request.Context(), q.ToUseCase())
	if err != nil {
		abortWithError(c, scopeRoster, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(rosters, response.FromRoster))
}

func (h *RosterHandler) GetRoster(c *gin.Context) {
	id, ok := bindID(c, scopeRoster)
	if !ok {
		return
	}
	r, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeRoster, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRoster(r))
}

func (h *RosterHandler) DraftRoster(c *gin.Context) {
	id, ok := optionalID(c, scopeRoster)
	if !ok {
		return
	}
	form, err := h.usecase.Draft(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeRoster, "draft", err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *RosterHandler) CreateRoster(c *gin.Context) {
	h.save(c, 0)
}

func (h *RosterHandler) UpdateRoster(c *gin.Context) {
	if id, ok := bindID(c, scopeRoster); ok {
		h.save(c, id)
	}
}

func (h *RosterHandler) save(c *gin.Context, id int64) {
	var form usecase.RosterForm
	if !bindJSON(c, scopeRoster, &form) {
		return
	}
	r, err := h.usecase.Save(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeRoster, "save", err)
		return
	}
	writeSaved(c, id, response.FromRoster(r))
}

func (h *RosterHandler) DeleteRoster(c *gin.Context) {
	id, ok := bindID(c, scopeRoster)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeRoster, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RosterHandler) RosterStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeRoster, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// NotifyRoster e-mails the team. A provider failure is a 502.
func (h *RosterHandler) NotifyRoster(c *gin.Context) {
	id, ok := bindID(c, scopeRoster)
	if !ok {
		return
	}
	log.Printf("[rosters][handler] notify start id=%d", id)
	result, err := h.usecase.Notify(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeRoster, "notify", err)
		return
	}
	log.Printf("[rosters][handler] notify success id=%d sent=%d skipped=%d", id, len(result.Sent), len(result.Skipped))
	c.JSON(http.StatusOK, result)
}
