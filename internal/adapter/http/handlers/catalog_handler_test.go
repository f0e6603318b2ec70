package handlers

import (
	"net/http"
	"testing"

	"gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase"
)

func TestAssetHandler(t *testing.T) {
	stores := seededStores(t)
	h := NewAssetHandler(usecase.NewAssetUseCase(stores.Assets))
	r := newTestRouter()
	r.GET("/v1/assets", h.ListAssets)
	r.GET("/v1/assets/draft", h.DraftAsset)
	r.POST("/v1/assets", h.CreateAsset)
	r.PUT("/v1/assets/:id", h.UpdateAsset)

	t.Run("filter by condition", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/assets?condition=Manuten%C3%A7%C3%A3o", "")
		got := decode[response.ListResponse[response.AssetResponse]](t, w)
		if got.Count != 1 || got.Data[0].Name != "Ar Condicionado 30.000 BTUs" {
			t.Fatalf("unexpected assets: %+v", got)
		}
	})

	t.Run("create applies defaults", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/assets", `{"name":"Microfone Shure","value":899.9}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		got := decode[response.AssetResponse](t, w)
		if got.Location != "Não especificado" || got.Value != "899.90" || got.PurchaseDateDisplay != "N/A" {
			t.Fatalf("unexpected asset: %+v", got)
		}
	})

	t.Run("update unknown id", func(t *testing.T) {
		w := serve(r, http.MethodPut, "/v1/assets/404", `{"name":"X","value":"1"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestGroupHandler(t *testing.T) {
	stores := seededStores(t)
	h := NewGroupHandler(usecase.NewGroupUseCase(stores.Groups))
	r := newTestRouter()
	r.GET("/v1/groups", h.ListGroups)
	r.POST("/v1/groups", h.CreateGroup)
	r.GET("/v1/groups/stats", h.GroupStats)

	w := serve(r, http.MethodGet, "/v1/groups?q=peniel", "")
	if got := decode[response.ListResponse[entities.Group]](t, w); got.Count != 1 {
		t.Fatalf("expected 1 group, got %d", got.Count)
	}

	w = serve(r, http.MethodPost, "/v1/groups", `{"name":"Célula Siloé","leader":"Ana Souza"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decode[entities.Group](t, w)
	if created.Members != 0 || created.Status != entities.GroupStatusAtivo || created.MeetingDay != "Quinta-feira" {
		t.Fatalf("unexpected group: %+v", created)
	}

	w = serve(r, http.MethodGet, "/v1/groups/stats", "")
	if got := decode[usecase.GroupStats](t, w); got.Total != 4 || got.TotalMembers != 35 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestCongregationHandler(t *testing.T) {
	stores := seededStores(t)
	h := NewCongregationHandler(usecase.NewCongregationUseCase(stores.Congregations, testClock))
	r := newTestRouter()
	r.POST("/v1/congregations", h.CreateCongregation)
	r.GET("/v1/congregations/:id", h.GetCongregation)

	w := serve(r, http.MethodPost, "/v1/congregations", `{"name":"Congregação Leste","address":"Rua A, 1","leader":"Pb. Lucas","email":"not-an-email"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	w = serve(r, http.MethodPost, "/v1/congregations", `{"name":"Congregação Leste","address":"Rua A, 1","leader":"Pb. Lucas"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if got := decode[entities.Congregation](t, w); got.Founded != "2024" || got.Members != 0 {
		t.Fatalf("unexpected congregation: %+v", got)
	}
}
