package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionQuery struct {
	Search string
	Type   string
	Status string
}

// FinanceStats are the ledger aggregates. Balance is always TotalIncome - TotalExpense
// and TotalExpense is the sum of absolute expense amounts.
type FinanceStats struct {
	Count        int                        `json:"count"`
	TotalIncome  decimal.Decimal            `json:"total_income"`
	TotalExpense decimal.Decimal            `json:"total_expense"`
	Balance      decimal.Decimal            `json:"balance"`
	ByStatus     map[string]int             `json:"by_status"`
	ByCategory   map[string]decimal.Decimal `json:"by_category"`
}

// MonthFlow is the cash flow of one calendar month (Month is YYYY-MM).
type MonthFlow struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// TransactionForm mirrors the "Nova Transação" form. Amount is the typed text; its
// sign is derived from Type.
type TransactionForm struct {
	Type        string      `json:"type" validate:"required,oneof=income expense"`
	Amount      NumberInput `json:"amount" validate:"required,numeric"`
	Description string      `json:"description" validate:"required"`
	Category    string      `json:"category"`
	Date        string      `json:"date" validate:"required,datetime=2006-01-02"`
	Status      string      `json:"status" validate:"omitempty,oneof=Concluído Pendente"`
}

func DefaultTransactionForm() TransactionForm {
	return TransactionForm{Type: string(entities.TransactionTypeIncome), Category: entities.DefaultTransactionCategory}
}

func TransactionFormFrom(t entities.Transaction) TransactionForm {
	return TransactionForm{
		Type:        string(t.Type),
		Amount:      NumberInput(t.Amount.Abs().StringFixed(2)),
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date.ISO(),
		Status:      string(t.Status),
	}
}

type IFinanceUseCase interface {
	List(ctx context.Context, q TransactionQuery) ([]entities.Transaction, error)
	GetByID(ctx context.Context, id int64) (entities.Transaction, error)
	Draft(ctx context.Context, id int64) (TransactionForm, error)
	Save(ctx context.Context, id int64, form TransactionForm) (entities.Transaction, error)
	Delete(ctx context.Context, id int64, confirm ConfirmFunc) error
	Stats(ctx context.Context) (FinanceStats, error)
	MonthlyFlow(ctx context.Context) ([]MonthFlow, error)
}

type FinanceUseCase struct {
	store interfaces.IStore[entities.Transaction]
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(store interfaces.IStore[entities.Transaction]) *FinanceUseCase {
	return &FinanceUseCase{store: store}
}

func (u *FinanceUseCase) List(ctx context.Context, q TransactionQuery) ([]entities.Transaction, error) {
	txs, err := listRecords(ctx, u.store)
	if err != nil {
		return nil, err
	}
	visible := Search(txs, q.Search, func(t entities.Transaction) []string {
		return []string{t.Description, t.Category}
	})
	return Where(visible, func(t entities.Transaction) bool {
		return MatchExact(string(t.Type), q.Type) && MatchExact(string(t.Status), q.Status)
	}), nil
}

func (u *FinanceUseCase) GetByID(ctx context.Context, id int64) (entities.Transaction, error) {
	return getRecord(ctx, u.store, id, ErrTransactionNotFound)
}

func (u *FinanceUseCase) Draft(ctx context.Context, id int64) (TransactionForm, error) {
	if id == 0 {
		return DefaultTransactionForm(), nil
	}
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return TransactionForm{}, err
	}
	return TransactionFormFrom(t), nil
}

func (u *FinanceUseCase) Save(ctx context.Context, id int64, form TransactionForm) (entities.Transaction, error) {
	if err := validateForm(form); err != nil {
		return entities.Transaction{}, err
	}
	amount, err := form.Amount.Decimal()
	if err != nil {
		return entities.Transaction{}, invalidField("amount", "numeric")
	}
	date, err := parseFormDate("date", form.Date)
	if err != nil {
		return entities.Transaction{}, err
	}

	txType := entities.TransactionType(form.Type)
	amount = entities.NormalizeAmount(txType, amount)
	category := orDefault(form.Category, entities.DefaultTransactionCategory)
	status := entities.TransactionStatus(orDefault(form.Status, string(entities.TransactionStatusConcluido)))

	if id != 0 {
		return updateRecord(ctx, u.store, id, func(t entities.Transaction) entities.Transaction {
			t.Type = txType
			t.Category = category
			t.Description = strings.TrimSpace(form.Description)
			t.Amount = amount
			t.Date = date
			t.Status = status
			return t
		}, ErrTransactionNotFound)
	}

	created, err := u.store.Create(ctx, entities.Transaction{
		Type:        txType,
		Category:    category,
		Description: strings.TrimSpace(form.Description),
		Amount:      amount,
		Date:        date,
		Status:      status,
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	log.Printf("[finance][usecase] created transaction_id=%d type=%s amount=%s", created.ID, created.Type, created.Amount.StringFixed(2))
	return created, nil
}

func (u *FinanceUseCase) Delete(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.store, id, confirm, ErrTransactionNotFound)
}

func (u *FinanceUseCase) Stats(ctx context.Context) (FinanceStats, error) {
	txs, err := listRecords(ctx, u.store)
	if err != nil {
		return FinanceStats{}, err
	}
	return ComputeFinanceStats(txs), nil
}

func (u *FinanceUseCase) MonthlyFlow(ctx context.Context) ([]MonthFlow, error) {
	txs, err := listRecords(ctx, u.store)
	if err != nil {
		return nil, err
	}
	return ComputeMonthlyFlow(txs), nil
}

func ComputeFinanceStats(txs []entities.Transaction) FinanceStats {
	s := FinanceStats{
		Count:        len(txs),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		ByStatus:     map[string]int{},
		ByCategory:   map[string]decimal.Decimal{},
	}
	for _, t := range txs {
		switch t.Type {
		case entities.TransactionTypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case entities.TransactionTypeExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount.Abs())
		}
		s.ByStatus[string(t.Status)]++
		s.ByCategory[t.Category] = s.ByCategory[t.Category].Add(t.Amount.Abs())
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

func ComputeMonthlyFlow(txs []entities.Transaction) []MonthFlow {
	byMonth := map[string]*MonthFlow{}
	for _, t := range txs {
		if t.Date.IsZero() {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", t.Date.Year(), int(t.Date.Month()))
		mf, ok := byMonth[key]
		if !ok {
			mf = &MonthFlow{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = mf
		}
		if t.Type == entities.TransactionTypeExpense {
			mf.Expense = mf.Expense.Add(t.Amount.Abs())
		} else {
			mf.Income = mf.Income.Add(t.Amount)
		}
	}

	out := make([]MonthFlow, 0, len(byMonth))
	for _, mf := range byMonth {
		out = append(out, *mf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
