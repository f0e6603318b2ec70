package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeAdvisory = "advisory"

// Renderer turns advisory markdown into HTML.
type Renderer interface {
	Render(source string) (string, error)
}

// AdvisoryHandler serves the AI insights. Generation failures are not HTTP errors:
// the insight comes back with status failed and the fallback message.
type AdvisoryHandler struct {
	usecase  usecase.IAdvisoryUseCase
	renderer Renderer
}

func NewAdvisoryHandler(uc usecase.IAdvisoryUseCase, renderer Renderer) *AdvisoryHandler {
	return &AdvisoryHandler{usecase: uc, renderer: renderer}
}

func (h *AdvisoryHandler) toResponse(i entities.Insight) response.InsightResponse {
	if h.renderer == nil {
		return response.FromInsight(i, nil)
	}
	return response.FromInsight(i, h.renderer.Render)
}

func (h *AdvisoryHandler) ListInsights(c *gin.Context) {
	insights, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeAdvisory, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(insights, h.toResponse))
}

func (h *AdvisoryHandler) GetInsight(c *gin.Context) {
	topic := entities.AdvisoryTopic(c.Param("topic"))
	insight, err := h.usecase.Get(c.Request.Context(), topic)
	if err != nil {
		abortWithError(c, scopeAdvisory, "get", err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(insight))
}

// GenerateInsight runs one generation. The lessons topic needs a JSON body with
// class_profile and theme; the other topics take no body.
func (h *AdvisoryHandler) GenerateInsight(c *gin.Context) {
	topic := entities.AdvisoryTopic(c.Param("topic"))
	log.Printf("[advisory][handler] generate start topic=%s", topic)

	var lesson usecase.LessonRequest
	if topic == entities.AdvisoryTopicLessons {
		// An empty body falls through to validation (422).
		if err := c.ShouldBindJSON(&lesson); err != nil && !errors.Is(err, io.EOF) {
			log.Printf("[advisory][handler] invalid payload topic=%s err=%v", topic, err)
			abortWithAppError(c, errInvalidPayload)
			return
		}
	}

	insight, err := h.usecase.Generate(c.Request.Context(), topic, lesson)
	if err != nil {
		abortWithError(c, scopeAdvisory, "generate", err)
		return
	}
	log.Printf("[advisory][handler] generate done topic=%s status=%s", topic, insight.Status)
	c.JSON(http.StatusOK, h.toResponse(insight))
}
