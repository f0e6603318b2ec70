package response

import (
	"errors"
	"testing"
	"time"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromTransaction(t *testing.T) {
	got := FromTransaction(entities.Transaction{
		ID:     2,
		Type:   entities.TransactionTypeExpense,
		Amount: decimal.RequireFromString("-350"),
		Date:   entities.NewDate(2023, time.June, 14),
		Status: entities.TransactionStatusConcluido,
	})
	if got.Amount != "-350.00" || got.Date != "2023-06-14" || got.DateDisplay != "14/06/2023" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestFromAsset_UnsetPurchaseDate(t *testing.T) {
	got := FromAsset(entities.Asset{ID: 1, Value: decimal.RequireFromString("899.9")})
	if got.PurchaseDate != "" || got.PurchaseDateDisplay != "N/A" || got.Value != "899.90" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestFromRoster_NilMembers(t *testing.T) {
	if got := FromRoster(entities.Roster{ID: 1}); got.Members == nil {
		t.Fatalf("expected empty member list, got nil")
	}
}

func TestFromLessonView(t *testing.T) {
	got := FromLessonView(usecase.LessonView{
		Lesson:    entities.Lesson{ID: 1, ClassID: 9, Date: entities.NewDate(2023, time.November, 5)},
		ClassName: usecase.MissingClassName,
	})
	if got.ClassName != "Classe removida" || got.DateDisplay != "05/11/2023" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestFromInsight(t *testing.T) {
	render := func(s string) (string, error) { return "<p>" + s + "</p>", nil }

	t.Run("failed shows fallback", func(t *testing.T) {
		got := FromInsight(entities.Insight{
			Topic:   entities.AdvisoryTopicDashboard,
			Status:  entities.InsightStatusFailed,
			Text:    "anterior",
			Message: usecase.FallbackDashboard,
		}, render)
		if got.Display != usecase.FallbackDashboard || got.Text != "anterior" || got.HTML != "<p>anterior</p>" {
			t.Fatalf("unexpected response: %+v", got)
		}
		if got.UpdatedAt != nil || got.Generating {
			t.Fatalf("unexpected state fields: %+v", got)
		}
	})

	t.Run("render failure leaves html empty", func(t *testing.T) {
		got := FromInsight(entities.Insight{Status: entities.InsightStatusReady, Text: "x"}, func(string) (string, error) {
			return "", errors.New("bad")
		})
		if got.HTML != "" || got.Display != "x" {
			t.Fatalf("unexpected response: %+v", got)
		}
	})
}

func TestNewList_NilBecomesEmpty(t *testing.T) {
	got := NewList[int](nil)
	if got.Data == nil || got.Count != 0 {
		t.Fatalf("unexpected list: %+v", got)
	}
}
