package entities

import "github.com/shopspring/decimal"

type AssetCondition string

const (
	AssetConditionBom        AssetCondition = "Bom"
	AssetConditionRegular    AssetCondition = "Regular"
	AssetConditionManutencao AssetCondition = "Manutenção"
	AssetConditionRuim       AssetCondition = "Ruim"
)

const (
	DefaultAssetCategory = "Áudio"
	DefaultAssetLocation = "Não especificado"
)

// Asset is an item of church property (patrimônio). PurchaseDate is optional.
type Asset struct {
	ID           int64           `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Category     string          `json:"category" yaml:"category"`
	Location     string          `json:"location" yaml:"location"`
	Condition    AssetCondition  `json:"condition" yaml:"condition"`
	PurchaseDate Date            `json:"purchase_date" yaml:"purchase_date"`
	Value        decimal.Decimal `json:"value" yaml:"value"`
}

func (a Asset) GetID() int64 { return a.ID }
