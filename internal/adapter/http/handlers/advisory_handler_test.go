package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/adapter/http/handlers/mocks"
	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/infrastructure/markdown"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func advisoryRoutes(h *AdvisoryHandler) *gin.Engine {
	r := newTestRouter()
	r.GET("/v1/advisory", h.ListInsights)
	r.GET("/v1/advisory/:topic", h.GetInsight)
	r.POST("/v1/advisory/:topic", h.GenerateInsight)
	return r
}

func TestAdvisoryHandler_Generate(t *testing.T) {
	t.Run("ready insight is rendered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAdvisoryUseCase(ctrl)
		uc.EXPECT().Generate(gomock.Any(), entities.AdvisoryTopicDashboard, usecase.LessonRequest{}).Return(entities.Insight{
			Topic:     entities.AdvisoryTopicDashboard,
			Status:    entities.InsightStatusReady,
			Text:      "**Crescimento** de 10%",
			UpdatedAt: testNow,
		}, nil)

		w := serve(advisoryRoutes(NewAdvisoryHandler(uc, markdown.NewRenderer())), http.MethodPost, "/v1/advisory/dashboard", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		got := decode[response.InsightResponse](t, w)
		if got.Text != "**Crescimento** de 10%" || !strings.Contains(got.HTML, "<strong>Crescimento</strong>") {
			t.Fatalf("unexpected insight: %+v", got)
		}
		if got.UpdatedAt == nil || !got.UpdatedAt.Equal(testNow) {
			t.Fatalf("unexpected updated_at: %v", got.UpdatedAt)
		}
	})

	t.Run("failure is a fallback, not an http error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAdvisoryUseCase(ctrl)
		uc.EXPECT().Generate(gomock.Any(), entities.AdvisoryTopicFinancial, gomock.Any()).Return(entities.Insight{
			Topic:   entities.AdvisoryTopicFinancial,
			Status:  entities.InsightStatusFailed,
			Message: usecase.FallbackFinancial,
		}, nil)

		w := serve(advisoryRoutes(NewAdvisoryHandler(uc, nil)), http.MethodPost, "/v1/advisory/financial", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decode[response.InsightResponse](t, w); got.Display != usecase.FallbackFinancial {
			t.Fatalf("expected fallback display, got %+v", got)
		}
	})

	t.Run("busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAdvisoryUseCase(ctrl)
		uc.EXPECT().Generate(gomock.Any(), entities.AdvisoryTopicReport, gomock.Any()).Return(entities.Insight{}, usecase.ErrAdvisoryBusy)

		w := serve(advisoryRoutes(NewAdvisoryHandler(uc, nil)), http.MethodPost, "/v1/advisory/report", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("lessons body is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAdvisoryUseCase(ctrl)
		want := usecase.LessonRequest{ClassProfile: "Jovens de 18 a 25 anos", Theme: "Fé e trabalho"}
		uc.EXPECT().Generate(gomock.Any(), entities.AdvisoryTopicLessons, want).Return(entities.Insight{
			Topic:  entities.AdvisoryTopicLessons,
			Status: entities.InsightStatusReady,
			Text:   "1. Tema",
		}, nil)

		w := serve(advisoryRoutes(NewAdvisoryHandler(uc, nil)), http.MethodPost, "/v1/advisory/lessons",
			`{"class_profile":"Jovens de 18 a 25 anos","theme":"Fé e trabalho"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("lessons malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAdvisoryUseCase(ctrl)

		w := serve(advisoryRoutes(NewAdvisoryHandler(uc, nil)), http.MethodPost, "/v1/advisory/lessons", `{"theme":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdvisoryHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAdvisoryUseCase(ctrl)
	uc.EXPECT().Get(gomock.Any(), entities.AdvisoryTopic("weather")).Return(entities.Insight{}, usecase.ErrUnknownAdvisoryTopic)
	uc.EXPECT().List(gomock.Any()).Return([]entities.Insight{
		{Topic: entities.AdvisoryTopicDashboard, Status: entities.InsightStatusPending},
	}, nil)

	r := advisoryRoutes(NewAdvisoryHandler(uc, nil))

	if w := serve(r, http.MethodGet, "/v1/advisory/weather", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w := serve(r, http.MethodGet, "/v1/advisory", "")
	got := decode[response.ListResponse[response.InsightResponse]](t, w)
	if got.Count != 1 || !got.Data[0].Generating {
		t.Fatalf("expected pending insight to report generating, got %+v", got)
	}
}

// The real use case with no gateway configured degrades to the fallback.
func TestAdvisoryHandler_WithoutGateway(t *testing.T) {
	stores := seededStores(t)
	dashboard := usecase.NewDashboardUseCase(usecase.DashboardDeps{
		Members:       stores.Members,
		Transactions:  stores.Transactions,
		Events:        usecase.NewEventUseCase(stores.Events, stores.Blocks, testClock),
		Rosters:       usecase.NewRosterUseCase(stores.Rosters, stores.Members, nil),
		Groups:        usecase.NewGroupUseCase(stores.Groups),
		EBD:           usecase.NewEBDUseCase(stores.Classes, stores.Lessons, stores.Students),
		Congregations: usecase.NewCongregationUseCase(stores.Congregations, testClock),
		Assets:        usecase.NewAssetUseCase(stores.Assets),
		Social:        usecase.NewSocialUseCase(stores.Beneficiaries, stores.Resources),
	})
	uc := usecase.NewAdvisoryUseCase(nil, dashboard, func() time.Time { return testNow })
	r := advisoryRoutes(NewAdvisoryHandler(uc, markdown.NewRenderer()))

	w := serve(r, http.MethodPost, "/v1/advisory/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	got := decode[response.InsightResponse](t, w)
	if got.Status != string(entities.InsightStatusFailed) || got.Display != usecase.FallbackDashboard {
		t.Fatalf("unexpected insight: %+v", got)
	}

	w = serve(r, http.MethodPost, "/v1/advisory/lessons", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty lessons request, got %d", w.Code)
	}
}
