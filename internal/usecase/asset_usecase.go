package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrAssetNotFound = errors.New("asset not found")

type AssetQuery struct {
	Search    string
	Category  string
	Condition string
}

type AssetStats struct {
	Count            int                        `json:"count"`
	TotalValue       decimal.Decimal            `json:"total_value"`
	MaintenanceCount int                        `json:"maintenance_count"`
	ByCondition      map[string]int             `json:"by_condition"`
	ByCategory       map[string]decimal.Decimal `json:"by_category"`
}

// AssetForm: PurchaseDate is optional and ISO; blank stores the zero Date ("N/A").
type AssetForm struct {
	Name         string      `json:"name" validate:"required"`
	Category     string      `json:"category"`
	Location     string      `json:"location"`
	Condition    string      `json:"condition" validate:"omitempty,oneof=Bom Regular Manutenção Ruim"`
	PurchaseDate string      `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Value        NumberInput `json:"value" validate:"required,numeric"`
}

func DefaultAssetForm() AssetForm {
	return AssetForm{Category: entities.DefaultAssetCategory, Condition: string(entities.AssetConditionBom)}
}

func AssetFormFrom(a entities.Asset) AssetForm {
	return AssetForm{
		Name:         a.Name,
		Category:     a.Category,
		Location:     a.Location,
		Condition:    string(a.Condition),
		PurchaseDate: a.PurchaseDate.ISO(),
		Value:        NumberInput(a.Value.String()),
	}
}

type IAssetUseCase interface {
	List(ctx context.Context, q AssetQuery) ([]entities.Asset, error)
	GetByID(ctx context.Context, id int64) (entities.Asset, error)
	Draft(ctx context.Context, id int64) (AssetForm, error)
	Save(ctx context.Context, id int64, form AssetForm) (entities.Asset, error)
	Delete(ctx context.Context, id int64, confirm ConfirmFunc) error
	Stats(ctx context.Context) (AssetStats, error)
}

type AssetUseCase struct {
	store interfaces.IStore[entities.Asset]
}

var _ IAssetUseCase = (*AssetUseCase)(nil)

func NewAssetUseCase(store interfaces.IStore[entities.Asset]) *AssetUseCase {
	return &AssetUseCase{store: store}
}

func (u *AssetUseCase) List(ctx context.Context, q AssetQuery) ([]entities.Asset, error) {
	assets, err := listRecords(ctx, u.store)
	if err != nil {
		return nil, err
	}
	visible := Search(assets, q.Search, func(a entities.Asset) []string {
		return []string{a.Name, a.Category}
	})
	return Where(visible, func(a entities.Asset) bool {
		return MatchExact(a.Category, q.Category) && MatchExact(string(a.Condition), q.Condition)
	}), nil
}

func (u *AssetUseCase) GetByID(ctx context.Context, id int64) (entities.Asset, error) {
	return getRecord(ctx, u.store, id, ErrAssetNotFound)
}

func (u *AssetUseCase) Draft(ctx context.Context, id int64) (AssetForm, error) {
	if id == 0 {
		return DefaultAssetForm(), nil
	}
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return AssetForm{}, err
	}
	return AssetFormFrom(a), nil
}

func (u *AssetUseCase) Save(ctx context.Context, id int64, form AssetForm) (entities.Asset, error) {
	if err := validateForm(form); err != nil {
		return entities.Asset{}, err
	}
	value, err := form.Value.Decimal()
	if err != nil {
		return entities.Asset{}, invalidField("value", "numeric")
	}
	purchased, err := parseFormDate("purchase_date", form.PurchaseDate)
	if err != nil {
		return entities.Asset{}, err
	}

	merge := func(a entities.Asset) entities.Asset {
		a.Name = strings.TrimSpace(form.Name)
		a.Category = orDefault(form.Category, entities.DefaultAssetCategory)
		a.Location = orDefault(form.Location, entities.DefaultAssetLocation)
		a.Condition = entities.AssetCondition(orDefault(form.Condition, string(entities.AssetConditionBom)))
		a.PurchaseDate = purchased
		a.Value = value
		return a
	}
	if id != 0 {
		return updateRecord(ctx, u.store, id, merge, ErrAssetNotFound)
	}
	created, err := u.store.Create(ctx, merge(entities.Asset{}))
	if err != nil {
		return entities.Asset{}, err
	}
	log.Printf("[assets][usecase] created asset_id=%d value=%s", created.ID, created.Value.StringFixed(2))
	return created, nil
}

func (u *AssetUseCase) Delete(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.store, id, confirm, ErrAssetNotFound)
}

func (u *AssetUseCase) Stats(ctx context.Context) (AssetStats, error) {
	assets, err := listRecords(ctx, u.store)
	if err != nil {
		return AssetStats{}, err
	}
	return ComputeAssetStats(assets), nil
}

func ComputeAssetStats(assets []entities.Asset) AssetStats {
	s := AssetStats{
		Count:       len(assets),
		TotalValue:  decimal.Zero,
		ByCondition: map[string]int{},
		ByCategory:  map[string]decimal.Decimal{},
	}
	for _, a := range assets {
		s.TotalValue = s.TotalValue.Add(a.Value)
		if a.Condition == entities.AssetConditionManutencao {
			s.MaintenanceCount++
		}
		s.ByCondition[string(a.Condition)]++
		s.ByCategory[a.Category] = s.ByCategory[a.Category].Add(a.Value)
	}
	return s
}
