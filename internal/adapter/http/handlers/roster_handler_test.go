package handlers

import (
	"errors"
	"net/http"
	"testing"

	"gestao_igreja/internal/usecase"
	"gestao_igreja/internal/usecase/interfaces"
	mock_interfaces "gestao_igreja/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func rosterRoutes(t *testing.T, notifier interfaces.INotifier) *gin.Engine {
	t.Helper()
	stores := seededStores(t)
	h := NewRosterHandler(usecase.NewRosterUseCase(stores.Rosters, stores.Members, notifier))

	r := newTestRouter()
	r.GET("/v1/rosters", h.ListRosters)
	r.POST("/v1/rosters", h.CreateRoster)
	r.POST("/v1/rosters/:id/notify", h.NotifyRoster)
	return r
}

func TestRosterHandler_Notify(t *testing.T) {
	t.Run("sent and skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, n interfaces.Notification) (string, error) {
				if len(n.To) != 3 {
					t.Fatalf("expected 3 recipients, got %v", n.To)
				}
				return "msg-1", nil
			})

		w := serve(rosterRoutes(t, notifier), http.MethodPost, "/v1/rosters/1/notify", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		got := decode[usecase.NotifyResult](t, w)
		if got.MessageID != "msg-1" || got.Message != "Notificação enviada para a equipe de Louvor!" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("no resolvable member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mock_interfaces.NewMockINotifier(ctrl)

		w := serve(rosterRoutes(t, notifier), http.MethodPost, "/v1/rosters/3/notify", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))

		w := serve(rosterRoutes(t, notifier), http.MethodPost, "/v1/rosters/2/notify", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decode[errorBody](t, w); body.Message != "Erro ao enviar notificação." {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unknown roster", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := serve(rosterRoutes(t, mock_interfaces.NewMockINotifier(ctrl)), http.MethodPost, "/v1/rosters/99/notify", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRosterHandler_CreateSplitsMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := rosterRoutes(t, mock_interfaces.NewMockINotifier(ctrl))

	w := serve(r, http.MethodPost, "/v1/rosters", `{"event":"Culto de Domingo","date":"2024-03-17","team":"Louvor","members":" Ana Souza, ,Beatriz Lima "}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decode[struct {
		Members []string `json:"members"`
		Status  string   `json:"status"`
	}](t, w)
	if len(body.Members) != 2 || body.Members[1] != "Beatriz Lima" || body.Status != "Pendente" {
		t.Fatalf("unexpected roster: %+v", body)
	}
}
