package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"
	mock_interfaces "gestao_igreja/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRosterUseCase_SaveParsesMembers(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	uc := NewRosterUseCase(stores.Rosters, stores.Members, nil)

	created, err := uc.Save(ctx, 0, RosterForm{Event: "Culto de Domingo", Date: "2024-03-17", Team: "Louvor", Members: " Ana Souza, ,Daniel Costa ,"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created.Members) != 2 || created.Members[0] != "Ana Souza" || created.Members[1] != "Daniel Costa" {
		t.Fatalf("unexpected members: %q", created.Members)
	}
	if created.Status != entities.RosterStatusPendente {
		t.Fatalf("expected new roster pending, got %q", created.Status)
	}

	empty, err := uc.Save(ctx, 0, RosterForm{Event: "Culto", Date: "2024-03-17", Team: "Mídia"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty.Members == nil || len(empty.Members) != 0 {
		t.Fatalf("expected an empty, non-nil member list, got %#v", empty.Members)
	}

	draft, err := uc.Draft(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Members != "Ana Souza, Daniel Costa" || draft.Date != "2024-03-17" {
		t.Fatalf("unexpected draft: %+v", draft)
	}

	if _, err := uc.Save(ctx, 0, RosterForm{Event: "Culto", Date: "2024-03-17"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected team to be required, got %v", err)
	}
}

func TestRosterUseCase_Stats(t *testing.T) {
	stores := seededStores(t)
	uc := NewRosterUseCase(stores.Rosters, stores.Members, nil)

	s, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total != 3 || s.Confirmed != 2 || s.Pending != 1 || s.Volunteers != 6 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestRosterUseCase_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("sends to resolvable members and reports skipped names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := seededStores(t)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewRosterUseCase(stores.Rosters, stores.Members, notifier)

		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n interfaces.Notification) (string, error) {
			if len(n.To) != 3 || n.To[0] != "ana@email.com" {
				t.Fatalf("unexpected recipients: %v", n.To)
			}
			if !strings.Contains(n.Subject, "Louvor") || !strings.Contains(n.HTML, "12/11/2023") {
				t.Fatalf("unexpected message: %q %q", n.Subject, n.HTML)
			}
			return "msg-1", nil
		})

		res, err := uc.Notify(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Message != "Notificação enviada para a equipe de Louvor!" || res.MessageID != "msg-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
		if len(res.Sent) != 3 || len(res.Skipped) != 0 || res.ID == "" {
			t.Fatalf("unexpected sent/skipped: %+v", res)
		}
	})

	t.Run("repeated names are sent once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := seededStores(t)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewRosterUseCase(stores.Rosters, stores.Members, notifier)

		roster, err := stores.Rosters.Create(ctx, entities.Roster{
			Event:   "Culto de Quarta",
			Team:    "Recepção",
			Members: []string{"Ana Souza", "Beatriz Lima", "ana souza"},
			Status:  entities.RosterStatusPendente,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n interfaces.Notification) (string, error) {
			if len(n.To) != 2 || n.To[0] != "ana@email.com" || n.To[1] != "beatriz@email.com" {
				t.Fatalf("expected each address once, got %v", n.To)
			}
			return "msg-2", nil
		})

		res, err := uc.Notify(ctx, roster.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Sent) != 2 || len(res.Skipped) != 0 {
			t.Fatalf("unexpected sent/skipped: %+v", res)
		}
	})

	t.Run("no resolvable member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := seededStores(t)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewRosterUseCase(stores.Rosters, stores.Members, notifier)

		res, err := uc.Notify(ctx, 3)
		if !errors.Is(err, ErrNoRecipients) {
			t.Fatalf("expected ErrNoRecipients, got %v", err)
		}
		if len(res.Skipped) != 1 || res.Skipped[0] != "João Silva" {
			t.Fatalf("expected João Silva skipped, got %+v", res)
		}
	})

	t.Run("notifier failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := seededStores(t)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewRosterUseCase(stores.Rosters, stores.Members, notifier)

		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("smtp down"))

		if _, err := uc.Notify(ctx, 2); !errors.Is(err, ErrNotificationFailed) {
			t.Fatalf("expected ErrNotificationFailed, got %v", err)
		}
	})

	t.Run("unknown roster", func(t *testing.T) {
		stores := seededStores(t)
		uc := NewRosterUseCase(stores.Rosters, stores.Members, nil)
		if _, err := uc.Notify(ctx, 42); !errors.Is(err, ErrRosterNotFound) {
			t.Fatalf("expected ErrRosterNotFound, got %v", err)
		}
	})
}
