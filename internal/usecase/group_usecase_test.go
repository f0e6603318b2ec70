package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_igreja/internal/domain/entities"
)

func TestGroupUseCase_Save(t *testing.T) {
	ctx := context.Background()
	uc := NewGroupUseCase(seededStores(t).Groups)

	created, err := uc.Save(ctx, 0, GroupForm{Name: "Célula Siló", Leader: "Paulo Reis", Time: "19:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Members != 0 || created.Status != entities.GroupStatusAtivo || created.MeetingDay != entities.DefaultMeetingDay {
		t.Fatalf("unexpected defaults: %+v", created)
	}

	updated, err := uc.Save(ctx, 1, GroupForm{Name: "Célula Betel", Leader: "Ana Souza", MeetingDay: "Terça-feira"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Members != 12 || updated.Leader != "Ana Souza" || updated.MeetingDay != "Terça-feira" {
		t.Fatalf("expected member count kept and fields updated: %+v", updated)
	}

	if _, err := uc.Save(ctx, 0, GroupForm{Name: "Sem líder"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGroupUseCase_ListAndStats(t *testing.T) {
	ctx := context.Background()
	uc := NewGroupUseCase(seededStores(t).Groups)

	found, err := uc.List(ctx, "maria")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Célula Peniel" {
		t.Fatalf("expected search by leader, got %+v", found)
	}

	s, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total != 3 || s.Active != 3 || s.TotalMembers != 35 || s.AverageMembers != 12 {
		t.Fatalf("unexpected stats: %+v", s)
	}

	if got := ComputeGroupStats(nil); got.AverageMembers != 0 {
		t.Fatalf("expected zero average for no groups, got %d", got.AverageMembers)
	}
}
