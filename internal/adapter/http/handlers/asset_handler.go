package handlers

import (
	"net/http"

	request "gestao_igreja/internal/adapter/http/dto/request"
	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeAsset = "assets"

// AssetHandler serves the patrimônio inventory.
type AssetHandler struct {
	usecase usecase.IAssetUseCase
}

func NewAssetHandler(uc usecase.IAssetUseCase) *AssetHandler {
	return &AssetHandler{usecase: uc}
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	var q request.AssetListQuery
	if !bindQuery(c, scopeAsset, &q) {
		return
	}
	assets, err := h.usecase.List(c.Request.Context(), q.ToUseCase())
	if err != nil {
		abortWithError(c, scopeAsset, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(assets, response.FromAsset))
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, ok := bindID(c, scopeAsset)
	if !ok {
		return
	}
	a, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeAsset, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAsset(a))
}

func (h *AssetHandler) DraftAsset(c *gin.Context) {
	id, ok := optionalID(c, scopeAsset)
	if !ok {
		return
	}
	form, err := h.usecase.Draft(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeAsset, "draft", err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	h.save(c, 0)
}

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	if id, ok := bindID(c, scopeAsset); ok {
		h.save(c, id)
	}
}

func (h *AssetHandler) save(c *gin.Context, id int64) {
	var form usecase.AssetForm
	if !bindJSON(c, scopeAsset, &form) {
		return
	}
	a, err := h.usecase.Save(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeAsset, "save", err)
		return
	}
	writeSaved(c, id, response.FromAsset(a))
}

func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, ok := bindID(c, scopeAsset)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeAsset, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AssetHandler) AssetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeAsset, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
