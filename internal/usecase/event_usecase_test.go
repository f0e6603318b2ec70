package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_igreja/internal/domain/entities"
)

func newEventUseCase(t *testing.T) *EventUseCase {
	t.Helper()
	stores := seededStores(t)
	return NewEventUseCase(stores.Events, stores.Blocks, testClock)
}

func TestEventUseCase_SaveConflicts(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int64
		form    EventForm
		wantErr error
	}{
		{name: "same date time and location",
			form:    EventForm{Title: "Culto Extra", Date: "2024-03-05", Time: "18:00", Location: "Templo Principal"},
			wantErr: ErrEventConflict},
		{name: "blank location defaults and conflicts",
			form:    EventForm{Title: "Culto Extra", Date: "2024-03-05", Time: "18:00"},
			wantErr: ErrEventConflict},
		{name: "different location",
			form: EventForm{Title: "Culto Extra", Date: "2024-03-05", Time: "18:00", Location: "Salão Anexo"}},
		{name: "editing an event does not conflict with itself",
			id:   1,
			form: EventForm{Title: "Culto de Domingo", Date: "2024-03-05", Time: "18:00", Location: "Templo Principal"}},
		{name: "editing onto another event's slot",
			id:      2,
			form:    EventForm{Title: "Encontro de Jovens", Date: "2024-03-05", Time: "09:00", Location: "Salas EBD"},
			wantErr: ErrEventConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newEventUseCase(t)
			_, err := uc.Save(ctx, tt.id, tt.form)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEventUseCase_CreateDefaults(t *testing.T) {
	uc := newEventUseCase(t)

	ev, err := uc.Save(context.Background(), 0, EventForm{Title: "Vigília", Date: "2024-03-22", Time: "22:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Attendees != 0 || ev.Status != entities.EventStatusConfirmado {
		t.Fatalf("unexpected defaults: %+v", ev)
	}
	if ev.Location != entities.DefaultEventLocation || ev.Type != entities.DefaultEventType {
		t.Fatalf("unexpected location/type: %q %q", ev.Location, ev.Type)
	}
}

func TestEventUseCase_SaveValidation(t *testing.T) {
	uc := newEventUseCase(t)

	_, err := uc.Save(context.Background(), 0, EventForm{Title: "Vigília", Date: "2024-03-22", Time: "10pm"})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Fields["time"] == "" {
		t.Fatalf("expected time validation error, got %v", err)
	}
}

func TestEventUseCase_BlockedDates(t *testing.T) {
	ctx := context.Background()
	uc := newEventUseCase(t)

	block, err := uc.Block(ctx, BlockForm{Date: "2024-03-22", Reason: "Reforma do templo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.Save(ctx, 0, EventForm{Title: "Vigília", Date: "2024-03-22", Time: "22:00"}); !errors.Is(err, ErrDateBlocked) {
		t.Fatalf("expected ErrDateBlocked, got %v", err)
	}

	if _, err := uc.Block(ctx, BlockForm{Date: "2024-03-23"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected reason to be required, got %v", err)
	}

	if err := uc.Unblock(ctx, block.ID, confirmYes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Save(ctx, 0, EventForm{Title: "Vigília", Date: "2024-03-22", Time: "22:00"}); err != nil {
		t.Fatalf("expected save after unblock, got %v", err)
	}
}

func TestEventUseCase_Calendar(t *testing.T) {
	ctx := context.Background()
	uc := newEventUseCase(t)
	if _, err := uc.Block(ctx, BlockForm{Date: "2024-03-30", Reason: "Retiro"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cal, err := uc.Calendar(ctx, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.Title != "Março 2024" {
		t.Fatalf("unexpected title %q", cal.Title)
	}
	if cal.LeadingBlanks != int(time.Friday) {
		t.Fatalf("expected march 2024 to start on friday, got %d blanks", cal.LeadingBlanks)
	}
	if len(cal.Days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(cal.Days))
	}
	if len(cal.Days[4].Events) != 2 {
		t.Fatalf("expected two events on day 5, got %d", len(cal.Days[4].Events))
	}
	if !cal.Days[14].Today {
		t.Fatalf("expected day 15 flagged as today")
	}
	if cal.Days[29].Blocked == nil || cal.Days[29].Blocked.Reason != "Retiro" {
		t.Fatalf("expected day 30 blocked")
	}

	feb, err := uc.Calendar(ctx, 2024, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feb.Days) != 29 || feb.LeadingBlanks != int(time.Thursday) {
		t.Fatalf("unexpected leap february: %d days, %d blanks", len(feb.Days), feb.LeadingBlanks)
	}

	if _, err := uc.Calendar(ctx, 2024, 13); !errors.Is(err, ErrInvalidCalendarMonth) {
		t.Fatalf("expected ErrInvalidCalendarMonth, got %v", err)
	}
}

func TestEventUseCase_ListAndStats(t *testing.T) {
	ctx := context.Background()
	uc := newEventUseCase(t)

	youth, err := uc.List(ctx, EventQuery{Search: "salão"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(youth) != 1 || youth[0].Title != "Encontro de Jovens" {
		t.Fatalf("unexpected search result: %+v", youth)
	}
	worship, _ := uc.List(ctx, EventQuery{Type: "Culto"})
	if len(worship) != 1 {
		t.Fatalf("expected one Culto event, got %d", len(worship))
	}

	s, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total != 5 || s.TotalAttendees != 307 || s.Upcoming != 1 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}
