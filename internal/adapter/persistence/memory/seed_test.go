package memory

import (
	"context"
	"testing"
	"time"

	"gestao_igreja/internal/domain/entities"
)

func TestLoadSeed(t *testing.T) {
	now := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
	seed, err := LoadSeed(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seed.Members) != 5 || seed.Members[0].Name != "Ana Souza" {
		t.Fatalf("unexpected members: %+v", seed.Members)
	}
	if got := seed.Members[0].JoinDate.Display(); got != "12/05/2021" {
		t.Fatalf("unexpected join date: %s", got)
	}
	if got := seed.Transactions[1].Amount.String(); got != "-350" {
		t.Fatalf("unexpected expense amount: %s", got)
	}
	if len(seed.Events) != 5 || seed.Events[0].Date.ISO() != "2024-03-05" {
		t.Fatalf("expected events in the current month, got %+v", seed.Events)
	}
	if len(seed.Rosters[0].Members) != 3 {
		t.Fatalf("unexpected roster members: %+v", seed.Rosters[0])
	}
	if seed.Resources[3].Status != entities.StockStatusBaixo {
		t.Fatalf("expected derived status for 5 units, got %s", seed.Resources[3].Status)
	}
	if seed.Assets[0].PurchaseDate.ISO() != "2021-05-10" {
		t.Fatalf("unexpected asset date: %s", seed.Assets[0].PurchaseDate)
	}
}

func TestNewStores_SharedIDSpace(t *testing.T) {
	seed, err := LoadSeed(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stores := NewStores(seed, fixedClock(3))

	ctx := context.Background()
	m, _ := stores.Members.Create(ctx, entities.Member{Name: "Novo"})
	g, _ := stores.Groups.Create(ctx, entities.Group{Name: "Nova"})
	if m.ID == g.ID {
		t.Fatalf("expected unique ids across stores, both got %d", m.ID)
	}
	if m.ID <= 5 {
		t.Fatalf("expected new ids above seeded ids, got %d", m.ID)
	}
}
