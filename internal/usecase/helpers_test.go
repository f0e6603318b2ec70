package usecase

import (
	"testing"
	"time"

	"gestao_igreja/internal/adapter/persistence/memory"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func seededStores(t *testing.T) *memory.Stores {
	t.Helper()
	seed, err := memory.LoadSeed(testNow)
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	return memory.NewStores(seed, testClock)
}

func confirmYes() bool { return true }
func confirmNo() bool  { return false }
