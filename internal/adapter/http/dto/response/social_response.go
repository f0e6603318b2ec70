package response

import (
	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase"
)

type BeneficiaryResponse struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	Members               int    `json:"members"`
	Priority              string `json:"priority"`
	LastAssistance        string `json:"last_assistance"`
	LastAssistanceDisplay string `json:"last_assistance_display"`
	Status                string `json:"status"`
}

func FromBeneficiary(b entities.Beneficiary) BeneficiaryResponse {
	return BeneficiaryResponse{
		ID:                    b.ID,
		Name:                  b.Name,
		Members:               b.Members,
		Priority:              string(b.Priority),
		LastAssistance:        b.LastAssistance.ISO(),
		LastAssistanceDisplay: b.LastAssistance.Display(),
		Status:                string(b.Status),
	}
}

type AssistanceResponse struct {
	Beneficiary BeneficiaryResponse `json:"beneficiary"`
	Resource    entities.Resource   `json:"resource"`
	Quantity    int                 `json:"quantity"`
	Notes       string              `json:"notes,omitempty"`
}

func FromAssistance(a usecase.Assistance) AssistanceResponse {
	return AssistanceResponse{
		Beneficiary: FromBeneficiary(a.Beneficiary),
		Resource:    a.Resource,
		Quantity:    a.Quantity,
		Notes:       a.Notes,
	}
}
