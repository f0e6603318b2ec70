package handlers

import (
	"log"
	"net/http"

	request "gestao_igreja/internal/adapter/http/dto/request"
	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeMember = "members"

// MemberHandler handles HTTP requests for church members.
type MemberHandler struct {
	usecase usecase.IMemberUseCase
}

func NewMemberHandler(uc usecase.IMemberUseCase) *MemberHandler {
	return &MemberHandler{usecase: uc}
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	var q request.MemberListQuery
	if !bindQuery(c, scopeMember, &q) {
		return
	}

	page, err := h.usecase.List(c.Request.Context(), q.ToUseCase())
	if err != nil {
		abortWithError(c, scopeMember, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMemberPage(page))
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := bindID(c, scopeMember)
	if !ok {
		return
	}
	m, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeMember, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMember(m))
}

// DraftMember returns the form defaults, or the edit seed when an id is in the path.
func (h *MemberHandler) DraftMember(c *gin.Context) {
	id, ok := optionalID(c, scopeMember)
	if !ok {
		return
	}
	form, err := h.usecase.Draft(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeMember, "draft", err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	h.save(c, 0)
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := bindID(c, scopeMember)
	if !ok {
		return
	}
	h.save(c, id)
}

func (h *MemberHandler) save(c *gin.Context, id int64) {
	var form usecase.MemberForm
	if !bindJSON(c, scopeMember, &form) {
		return
	}
	m, err := h.usecase.Save(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeMember, "save", err)
		return
	}
	log.Printf("[members][handler] save success id=%d", m.ID)
	writeSaved(c, id, response.FromMember(m))
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := bindID(c, scopeMember)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeMember, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MemberHandler) MemberStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeMember, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
