package handlers

import (
	"net/http"
	"testing"

	"gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

func eventRoutes(t *testing.T) *gin.Engine {
	t.Helper()
	stores := seededStores(t)
	h := NewEventHandler(usecase.NewEventUseCase(stores.Events, stores.Blocks, testClock))

	r := newTestRouter()
	r.GET("/v1/events", h.ListEvents)
	r.GET("/v1/events/calendar", h.Calendar)
	r.GET("/v1/events/blocks", h.ListBlockedDates)
	r.POST("/v1/events/blocks", h.BlockDate)
	r.DELETE("/v1/events/blocks/:id", h.UnblockDate)
	r.GET("/v1/events/:id", h.GetEvent)
	r.POST("/v1/events", h.CreateEvent)
	r.PUT("/v1/events/:id", h.UpdateEvent)
	return r
}

func TestEventHandler_Save(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{
			name:   "same slot and location conflicts",
			method: http.MethodPost,
			path:   "/v1/events",
			body:   `{"title":"Culto Extra","date":"2024-03-05","time":"18:00","location":"Templo Principal"}`,
			status: http.StatusConflict,
			code:   "EVENT_CONFLICT",
		},
		{
			name:   "editing an event keeps its own slot",
			method: http.MethodPut,
			path:   "/v1/events/1",
			body:   `{"title":"Culto da Família","date":"2024-03-05","time":"18:00","location":"Templo Principal"}`,
			status: http.StatusOK,
		},
		{
			name:   "missing time",
			method: http.MethodPost,
			path:   "/v1/events",
			body:   `{"title":"Vigília","date":"2024-03-22"}`,
			status: http.StatusUnprocessableEntity,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "created",
			method: http.MethodPost,
			path:   "/v1/events",
			body:   `{"title":"Vigília","date":"2024-03-22","time":"22:00"}`,
			status: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(eventRoutes(t), tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if tt.code != "" {
				if body := decode[errorBody](t, w); body.Code != tt.code {
					t.Fatalf("expected code %s, got %s", tt.code, body.Code)
				}
			}
		})
	}
}

func TestEventHandler_BlockedDate(t *testing.T) {
	r := eventRoutes(t)

	w := serve(r, http.MethodPost, "/v1/events/blocks", `{"date":"2024-03-29","reason":"Sexta-feira Santa"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	block := decode[response.BlockedDateResponse](t, w)
	if block.DateDisplay != "29/03/2024" {
		t.Fatalf("unexpected block: %+v", block)
	}

	w = serve(r, http.MethodPost, "/v1/events", `{"title":"Ensaio","date":"2024-03-29","time":"19:00"}`)
	if w.Code != http.StatusConflict || decode[errorBody](t, w).Code != "DATE_BLOCKED" {
		t.Fatalf("expected DATE_BLOCKED, got %d: %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodGet, "/v1/events/calendar?year=2024&month=3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cal := decode[usecase.CalendarMonth](t, w)
	if cal.LeadingBlanks != 5 || len(cal.Days) != 31 || cal.Days[28].Blocked == nil {
		t.Fatalf("unexpected calendar: blanks=%d days=%d", cal.LeadingBlanks, len(cal.Days))
	}

	w = serve(r, http.MethodDelete, "/v1/events/blocks/"+itoa(block.ID)+"?confirm=1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = serve(r, http.MethodPost, "/v1/events", `{"title":"Ensaio","date":"2024-03-29","time":"19:00"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 after unblock, got %d: %s", w.Code, w.Body.String())
	}
}

func TestEventHandler_CalendarInvalidMonth(t *testing.T) {
	w := serve(eventRoutes(t), http.MethodGet, "/v1/events/calendar?year=2024&month=13", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
