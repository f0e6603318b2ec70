package handlers

import (
	"log"
	"net/http"

	request "gestao_igreja/internal/adapter/http/dto/request"
	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeEvent = "events"

// EventHandler serves the agenda: events, blocked dates and the month calendar.
type EventHandler struct {
	usecase usecase.IEventUseCase
}

func NewEventHandler(uc usecase.IEventUseCase) *EventHandler {
	return &EventHandler{usecase: uc}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	var q request.EventListQuery
	if !bindQuery(c, scopeEvent, &q) {
		return
	}
	events, err := h.usecase.List(c.Request.Context(), q.ToUseCase())
	if err != nil {
		abortWithError(c, scopeEvent, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(events, response.FromEvent))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := bindID(c, scopeEvent)
	if !ok {
		return
	}
	e, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeEvent, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromEvent(e))
}

func (h *EventHandler) DraftEvent(c *gin.Context) {
	id, ok := optionalID(c, scopeEvent)
	if !ok {
		return
	}
	form, err := h.usecase.Draft(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeEvent, "draft", err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	h.save(c, 0)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	if id, ok := bindID(c, scopeEvent); ok {
		h.save(c, id)
	}
}

// save answers 409 when the date is blocked or the slot is taken.
func (h *EventHandler) save(c *gin.Context, id int64) {
	var form usecase.EventForm
	if !bindJSON(c, scopeEvent, &form) {
		return
	}
	e, err := h.usecase.Save(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeEvent, "save", err)
		return
	}
	log.Printf("[events][handler] save success id=%d date=%s time=%s", e.ID, e.Date.ISO(), e.Time)
	writeSaved(c, id, response.FromEvent(e))
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := bindID(c, scopeEvent)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeEvent, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) EventStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeEvent, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *EventHandler) ListBlockedDates(c *gin.Context) {
	blocks, err := h.usecase.ListBlocks(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeEvent, "list-blocks", err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(blocks, response.FromBlockedDate))
}

func (h *EventHandler) BlockDate(c *gin.Context) {
	var form usecase.BlockForm
	if !bindJSON(c, scopeEvent, &form) {
		return
	}
	b, err := h.usecase.Block(c.Request.Context(), form)
	if err != nil {
		abortWithError(c, scopeEvent, "block", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBlockedDate(b))
}

func (h *EventHandler) UnblockDate(c *gin.Context) {
	id, ok := bindID(c, scopeEvent)
	if !ok {
		return
	}
	if err := h.usecase.Unblock(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeEvent, "unblock", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Calendar returns the month grid; without year/month it is the current month.
func (h *EventHandler) Calendar(c *gin.Context) {
	var q request.CalendarQuery
	if !bindQuery(c, scopeEvent, &q) {
		return
	}
	month, err := h.usecase.Calendar(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		abortWithError(c, scopeEvent, "calendar", err)
		return
	}
	c.JSON(http.StatusOK, month)
}
