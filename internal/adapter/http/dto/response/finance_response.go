package response

import "gestao_igreja/internal/domain/entities"

// TransactionResponse carries the signed amount with two decimals ("-350.00").
type TransactionResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	DateDisplay string `json:"date_display"`
	Status      string `json:"status"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Category:    t.Category,
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Date:        t.Date.ISO(),
		DateDisplay: t.Date.Display(),
		Status:      string(t.Status),
	}
}
