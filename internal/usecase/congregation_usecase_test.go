package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_igreja/internal/domain/entities"
)

func TestCongregationUseCase_Save(t *testing.T) {
	ctx := context.Background()
	uc := NewCongregationUseCase(seededStores(t).Congregations, testClock)

	created, err := uc.Save(ctx, 0, CongregationForm{Name: "Congregação Leste", Address: "Rua A, 1", Leader: "Pr. Lucas"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Founded != "2024" || created.Members != 0 || created.Status != entities.CongregationStatusAtiva {
		t.Fatalf("unexpected defaults: %+v", created)
	}
	if created.Image != entities.DefaultCongregationImage {
		t.Fatalf("expected default image, got %q", created.Image)
	}

	updated, err := uc.Save(ctx, 3, CongregationForm{Name: "Ponto de Pregação Sul", Address: "Av. do Sol, 890", Leader: "Dc. Pedro", Status: "Ativa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Founded != "2022" || updated.Members != 45 || updated.Status != entities.CongregationStatusAtiva {
		t.Fatalf("unexpected update: %+v", updated)
	}

	tests := []struct {
		name      string
		form      CongregationForm
		wantField string
	}{
		{name: "missing address", form: CongregationForm{Name: "X", Leader: "Y"}, wantField: "address"},
		{name: "unknown status", form: CongregationForm{Name: "X", Leader: "Y", Address: "Z", Status: "Fechada"}, wantField: "status"},
		{name: "bad email", form: CongregationForm{Name: "X", Leader: "Y", Address: "Z", Email: "nope"}, wantField: "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Save(ctx, 0, tt.form)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Fatalf("expected field %q in %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestCongregationUseCase_Stats(t *testing.T) {
	uc := NewCongregationUseCase(seededStores(t).Congregations, testClock)

	s, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total != 3 || s.TotalMembers != 615 || s.AverageMembers != 205 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.ByStatus["Em Crescimento"] != 1 {
		t.Fatalf("unexpected by_status: %v", s.ByStatus)
	}
}
