package entities

import "github.com/shopspring/decimal"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type TransactionStatus string

const (
	TransactionStatusConcluido TransactionStatus = "Concluído"
	TransactionStatusPendente  TransactionStatus = "Pendente"
)

// DefaultTransactionCategory is "Dízimo" (tithe).
const DefaultTransactionCategory = "Dízimo"

// Transaction is one ledger entry (tithe, offering, donation or expense).
//
// Amount is signed: expenses are stored negative, income positive. Use
// NormalizeAmount before persisting anything that came from a form.
type Transaction struct {
	ID          int64             `json:"id" yaml:"id"`
	Type        TransactionType   `json:"type" yaml:"type"`
	Category    string            `json:"category" yaml:"category"`
	Description string            `json:"description" yaml:"description"`
	Amount      decimal.Decimal   `json:"amount" yaml:"amount"`
	Date        Date              `json:"date" yaml:"date"`
	Status      TransactionStatus `json:"status" yaml:"status"`
}

func (t Transaction) GetID() int64 { return t.ID }

// NormalizeAmount forces the sign of amount to match the transaction type.
func NormalizeAmount(t TransactionType, amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeExpense {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}
