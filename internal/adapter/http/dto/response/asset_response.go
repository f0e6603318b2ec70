package response

import "gestao_igreja/internal/domain/entities"

type AssetResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Category            string `json:"category"`
	Location            string `json:"location"`
	Condition           string `json:"condition"`
	PurchaseDate        string `json:"purchase_date"`
	PurchaseDateDisplay string `json:"purchase_date_display"`
	Value               string `json:"value"`
}

func FromAsset(a entities.Asset) AssetResponse {
	return AssetResponse{
		ID:                  a.ID,
		Name:                a.Name,
		Category:            a.Category,
		Location:            a.Location,
		Condition:           string(a.Condition),
		PurchaseDate:        a.PurchaseDate.ISO(),
		PurchaseDateDisplay: a.PurchaseDate.Display(),
		Value:               a.Value.StringFixed(2),
	}
}
