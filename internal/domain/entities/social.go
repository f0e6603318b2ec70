package entities

type Priority string

const (
	PriorityAlta  Priority = "Alta"
	PriorityMedia Priority = "Média"
	PriorityBaixa Priority = "Baixa"
)

type BeneficiaryStatus string

const (
	BeneficiaryStatusAtivo   BeneficiaryStatus = "Ativo"
	BeneficiaryStatusInativo BeneficiaryStatus = "Inativo"
)

// Beneficiary is a person or family assisted by the social-action ministry.
type Beneficiary struct {
	ID             int64             `json:"id" yaml:"id"`
	Name           string            `json:"name" yaml:"name"`
	Members        int               `json:"members" yaml:"members"`
	Priority       Priority          `json:"priority" yaml:"priority"`
	LastAssistance Date              `json:"last_assistance" yaml:"last_assistance"`
	Status         BeneficiaryStatus `json:"status" yaml:"status"`
}

func (b Beneficiary) GetID() int64 { return b.ID }

type StockStatus string

const (
	StockStatusSuficiente StockStatus = "Suficiente"
	StockStatusBaixo      StockStatus = "Baixo"
	StockStatusCritico    StockStatus = "Crítico"
)

// LowStockThreshold is the quantity under which a resource is reported as low.
const LowStockThreshold = 10

// StockStatusFor derives the stock status from a quantity.
func StockStatusFor(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StockStatusCritico
	case quantity < LowStockThreshold:
		return StockStatusBaixo
	default:
		return StockStatusSuficiente
	}
}

// Resource is a stock item handed out to beneficiaries. Status is always derived
// from Quantity; Quantity is never negative.
type Resource struct {
	ID       int64       `json:"id" yaml:"id"`
	Name     string      `json:"name" yaml:"name"`
	Category string      `json:"category" yaml:"category"`
	Quantity int         `json:"quantity" yaml:"quantity"`
	Unit     string      `json:"unit" yaml:"unit"`
	Status   StockStatus `json:"status" yaml:"status"`
}

func (r Resource) GetID() int64 { return r.ID }

// WithQuantity returns r with the quantity clamped at zero and status recomputed.
func (r Resource) WithQuantity(quantity int) Resource {
	if quantity < 0 {
		quantity = 0
	}
	r.Quantity = quantity
	r.Status = StockStatusFor(quantity)
	return r
}

// Distribute hands out quantity units.
func (r Resource) Distribute(quantity int) Resource {
	return r.WithQuantity(r.Quantity - quantity)
}
