package handlers

import (
	"log"
	"net/http"

	request "gestao_igreja/internal/adapter/http/dto/request"
	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeSocial = "social"

// SocialHandler serves ação social: beneficiaries, stock and distributions.
type SocialHandler struct {
	usecase usecase.ISocialUseCase
}

func NewSocialHandler(uc usecase.ISocialUseCase) *SocialHandler {
	return &SocialHandler{usecase: uc}
}

func (h *SocialHandler) ListBeneficiaries(c *gin.Context) {
	var q request.SearchQuery
	if !bindQuery(c, scopeSocial, &q) {
		return
	}
	items, err := h.usecase.ListBeneficiaries(c.Request.Context(), q.Q)
	if err != nil {
		abortWithError(c, scopeSocial, "list-beneficiaries", err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(items, response.FromBeneficiary))
}

func (h *SocialHandler) GetBeneficiary(c *gin.Context) {
	id, ok := bindID(c, scopeSocial)
	if !ok {
		return
	}
	b, err := h.usecase.GetBeneficiary(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeSocial, "get-beneficiary", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBeneficiary(b))
}

func (h *SocialHandler) CreateBeneficiary(c *gin.Context) {
	h.saveBeneficiary(c, 0)
}

func (h *SocialHandler) UpdateBeneficiary(c *gin.Context) {
	if id, ok := bindID(c, scopeSocial); ok {
		h.saveBeneficiary(c, id)
	}
}

func (h *SocialHandler) saveBeneficiary(c *gin.Context, id int64) {
	var form usecase.BeneficiaryForm
	if !bindJSON(c, scopeSocial, &form) {
		return
	}
	b, err := h.usecase.SaveBeneficiary(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeSocial, "save-beneficiary", err)
		return
	}
	writeSaved(c, id, response.FromBeneficiary(b))
}

func (h *SocialHandler) DeleteBeneficiary(c *gin.Context) {
	id, ok := bindID(c, scopeSocial)
	if !ok {
		return
	}
	if err := h.usecase.DeleteBeneficiary(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeSocial, "delete-beneficiary", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SocialHandler) ListResources(c *gin.Context) {
	var q request.SearchQuery
	if !bindQuery(c, scopeSocial, &q) {
		return
	}
	items, err := h.usecase.ListResources(c.Request.Context(), q.Q)
	if err != nil {
		abortWithError(c, scopeSocial, "list-resources", err)
		return
	}
	c.JSON(http.StatusOK, response.NewList[entities.Resource](items))
}

func (h *SocialHandler) GetResource(c *gin.Context) {
	id, ok := bindID(c, scopeSocial)
	if !ok {
		return
	}
	r, err := h.usecase.GetResource(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeSocial, "get-resource", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *SocialHandler) CreateResource(c *gin.Context) {
	h.saveResource(c, 0)
}

func (h *SocialHandler) UpdateResource(c *gin.Context) {
	if id, ok := bindID(c, scopeSocial); ok {
		h.saveResource(c, id)
	}
}

func (h *SocialHandler) saveResource(c *gin.Context, id int64) {
	var form usecase.ResourceForm
	if !bindJSON(c, scopeSocial, &form) {
		return
	}
	r, err := h.usecase.SaveResource(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeSocial, "save-resource", err)
		return
	}
	writeSaved(c, id, r)
}

func (h *SocialHandler) DeleteResource(c *gin.Context) {
	id, ok := bindID(c, scopeSocial)
	if !ok {
		return
	}
	if err := h.usecase.DeleteResource(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeSocial, "delete-resource", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Distribute hands out stock to a beneficiary.
func (h *SocialHandler) Distribute(c *gin.Context) {
	var form usecase.AssistanceForm
	if !bindJSON(c, scopeSocial, &form) {
		return
	}
	a, err := h.usecase.Distribute(c.Request.Context(), form)
	if err != nil {
		abortWithError(c, scopeSocial, "distribute", err)
		return
	}
	log.Printf("[social][handler] distribute success beneficiary_id=%d resource_id=%d quantity=%d remaining=%d",
		a.Beneficiary.ID, a.Resource.ID, a.Quantity, a.Resource.Quantity)
	c.JSON(http.StatusCreated, response.FromAssistance(a))
}

func (h *SocialHandler) SocialStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeSocial, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
