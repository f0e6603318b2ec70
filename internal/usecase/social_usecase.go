package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"
)

var (
	ErrBeneficiaryNotFound = errors.New("beneficiary not found")
	ErrResourceNotFound    = errors.New("resource not found")
)

type SocialStats struct {
	Beneficiaries       int            `json:"beneficiaries"`
	ActiveBeneficiaries int            `json:"active_beneficiaries"`
	HighPriority        int            `json:"high_priority"`
	PeopleAssisted      int            `json:"people_assisted"`
	Resources           int            `json:"resources"`
	ResourcesByStatus   map[string]int `json:"resources_by_status"`
}

type BeneficiaryForm struct {
	Name     string      `json:"name" validate:"required"`
	Members  NumberInput `json:"members" validate:"omitempty,number"`
	Priority string      `json:"priority" validate:"omitempty,oneof=Alta Média Baixa"`
	Status   string      `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
}

type ResourceForm struct {
	Name     string      `json:"name" validate:"required"`
	Category string      `json:"category"`
	Quantity NumberInput `json:"quantity" validate:"omitempty,number"`
	Unit     string      `json:"unit"`
}

// AssistanceForm records the hand-out of a resource to a beneficiary.
type AssistanceForm struct {
	BeneficiaryID int64       `json:"beneficiary_id" validate:"required"`
	ResourceID    int64       `json:"resource_id" validate:"required"`
	Quantity      NumberInput `json:"quantity" validate:"omitempty,number"`
	Date          string      `json:"date" validate:"required,datetime=2006-01-02"`
	Notes         string      `json:"notes"`
}

// Assistance is the outcome of a distribution: both records after the update.
type Assistance struct {
	Beneficiary entities.Beneficiary `json:"beneficiary"`
	Resource    entities.Resource    `json:"resource"`
	Quantity    int                  `json:"quantity"`
	Notes       string               `json:"notes,omitempty"`
}

func DefaultAssistanceForm() AssistanceForm {
	return AssistanceForm{Quantity: "1"}
}

func BeneficiaryFormFrom(b entities.Beneficiary) BeneficiaryForm {
	return BeneficiaryForm{
		Name:     b.Name,
		Members:  NumberInput(itoa(b.Members)),
		Priority: string(b.Priority),
		Status:   string(b.Status),
	}
}

func ResourceFormFrom(r entities.Resource) ResourceForm {
	return ResourceForm{
		Name:     r.Name,
		Category: r.Category,
		Quantity: NumberInput(itoa(r.Quantity)),
		Unit:     r.Unit,
	}
}

type ISocialUseCase interface {
	ListBeneficiaries(ctx context.Context, search string) ([]entities.Beneficiary, error)
	GetBeneficiary(ctx context.Context, id int64) (entities.Beneficiary, error)
	SaveBeneficiary(ctx context.Context, id int64, form BeneficiaryForm) (entities.Beneficiary, error)
	DeleteBeneficiary(ctx context.Context, id int64, confirm ConfirmFunc) error

	ListResources(ctx context.Context, search string) ([]entities.Resource, error)
	GetResource(ctx context.Context, id int64) (entities.Resource, error)
	SaveResource(ctx context.Context, id int64, form ResourceForm) (entities.Resource, error)
	DeleteResource(ctx context.Context, id int64, confirm ConfirmFunc) error

	Distribute(ctx context.Context, form AssistanceForm) (Assistance, error)
	Stats(ctx context.Context) (SocialStats, error)
}

type SocialUseCase struct {
	beneficiaries interfaces.IStore[entities.Beneficiary]
	resources     interfaces.IStore[entities.Resource]
}

var _ ISocialUseCase = (*SocialUseCase)(nil)

func NewSocialUseCase(beneficiaries interfaces.IStore[entities.Beneficiary], resources interfaces.IStore[entities.Resource]) *SocialUseCase {
	return &SocialUseCase{beneficiaries: beneficiaries, resources: resources}
}

func (u *SocialUseCase) ListBeneficiaries(ctx context.Context, search string) ([]entities.Beneficiary, error) {
	items, err := listRecords(ctx, u.beneficiaries)
	if err != nil {
		return nil, err
	}
	return Search(items, search, func(b entities.Beneficiary) []string { return []string{b.Name} }), nil
}

func (u *SocialUseCase) GetBeneficiary(ctx context.Context, id int64) (entities.Beneficiary, error) {
	return getRecord(ctx, u.beneficiaries, id, ErrBeneficiaryNotFound)
}

func (u *SocialUseCase) SaveBeneficiary(ctx context.Context, id int64, form BeneficiaryForm) (entities.Beneficiary, error) {
	if err := validateForm(form); err != nil {
		return entities.Beneficiary{}, err
	}
	members, err := optionalInt("members", form.Members)
	if err != nil {
		return entities.Beneficiary{}, err
	}

	merge := func(b entities.Beneficiary) entities.Beneficiary {
		b.Name = strings.TrimSpace(form.Name)
		b.Members = members
		b.Priority = entities.Priority(orDefault(form.Priority, string(entities.PriorityMedia)))
		b.Status = entities.BeneficiaryStatus(orDefault(form.Status, string(entities.BeneficiaryStatusAtivo)))
		return b
	}
	if id != 0 {
		return updateRecord(ctx, u.beneficiaries, id, merge, ErrBeneficiaryNotFound)
	}
	created, err := u.beneficiaries.Create(ctx, merge(entities.Beneficiary{}))
	if err != nil {
		return entities.Beneficiary{}, err
	}
	log.Printf("[social][usecase] created beneficiary_id=%d", created.ID)
	return created, nil
}

func (u *SocialUseCase) DeleteBeneficiary(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.beneficiaries, id, confirm, ErrBeneficiaryNotFound)
}

func (u *SocialUseCase) ListResources(ctx context.Context, search string) ([]entities.Resource, error) {
	items, err := listRecords(ctx, u.resources)
	if err != nil {
		return nil, err
	}
	return Search(items, search, func(r entities.Resource) []string { return []string{r.Name, r.Category} }), nil
}

func (u *SocialUseCase) GetResource(ctx context.Context, id int64) (entities.Resource, error) {
	return getRecord(ctx, u.resources, id, ErrResourceNotFound)
}

// SaveResource always derives the status from the (clamped) quantity.
func (u *SocialUseCase) SaveResource(ctx context.Context, id int64, form ResourceForm) (entities.Resource, error) {
	if err := validateForm(form); err != nil {
		return entities.Resource{}, err
	}
	quantity, err := optionalInt("quantity", form.Quantity)
	if err != nil {
		return entities.Resource{}, err
	}

	merge := func(r entities.Resource) entities.Resource {
		r.Name = strings.TrimSpace(form.Name)
		r.Category = strings.TrimSpace(form.Category)
		r.Unit = strings.TrimSpace(form.Unit)
		return r.WithQuantity(quantity)
	}
	if id != 0 {
		return updateRecord(ctx, u.resources, id, merge, ErrResourceNotFound)
	}
	created, err := u.resources.Create(ctx, merge(entities.Resource{}))
	if err != nil {
		return entities.Resource{}, err
	}
	log.Printf("[social][usecase] created resource_id=%d quantity=%d", created.ID, created.Quantity)
	return created, nil
}

func (u *SocialUseCase) DeleteResource(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.resources, id, confirm, ErrResourceNotFound)
}

// Distribute takes quantity units out of the resource (never below zero) and stamps
// the beneficiary's last assistance date. Both ids must exist before anything changes.
func (u *SocialUseCase) Distribute(ctx context.Context, form AssistanceForm) (Assistance, error) {
	if err := validateForm(form); err != nil {
		return Assistance{}, err
	}
	quantity := 1
	if strings.TrimSpace(string(form.Quantity)) != "" {
		q, err := form.Quantity.Int()
		if err != nil || q < 1 {
			return Assistance{}, invalidField("quantity", "min")
		}
		quantity = q
	}
	date, err := parseFormDate("date", form.Date)
	if err != nil {
		return Assistance{}, err
	}

	if _, err := u.GetBeneficiary(ctx, form.BeneficiaryID); err != nil {
		return Assistance{}, err
	}
	if _, err := u.GetResource(ctx, form.ResourceID); err != nil {
		return Assistance{}, err
	}

	resource, err := updateRecord(ctx, u.resources, form.ResourceID, func(r entities.Resource) entities.Resource {
		return r.Distribute(quantity)
	}, ErrResourceNotFound)
	if err != nil {
		return Assistance{}, err
	}
	beneficiary, err := updateRecord(ctx, u.beneficiaries, form.BeneficiaryID, func(b entities.Beneficiary) entities.Beneficiary {
		b.LastAssistance = date
		return b
	}, ErrBeneficiaryNotFound)
	if err != nil {
		return Assistance{}, err
	}

	log.Printf("[social][usecase] distributed resource_id=%d beneficiary_id=%d quantity=%d remaining=%d status=%s",
		resource.ID, beneficiary.ID, quantity, resource.Quantity, resource.Status)
	return Assistance{Beneficiary: beneficiary, Resource: resource, Quantity: quantity, Notes: strings.TrimSpace(form.Notes)}, nil
}

func (u *SocialUseCase) Stats(ctx context.Context) (SocialStats, error) {
	beneficiaries, err := listRecords(ctx, u.beneficiaries)
	if err != nil {
		return SocialStats{}, err
	}
	resources, err := listRecords(ctx, u.resources)
	if err != nil {
		return SocialStats{}, err
	}
	return ComputeSocialStats(beneficiaries, resources), nil
}

func ComputeSocialStats(beneficiaries []entities.Beneficiary, resources []entities.Resource) SocialStats {
	s := SocialStats{
		Beneficiaries:     len(beneficiaries),
		Resources:         len(resources),
		ResourcesByStatus: map[string]int{},
	}
	for _, b := range beneficiaries {
		if b.Status == entities.BeneficiaryStatusAtivo {
			s.ActiveBeneficiaries++
		}
		if b.Priority == entities.PriorityAlta {
			s.HighPriority++
		}
		s.PeopleAssisted += b.Members
	}
	for _, r := range resources {
		s.ResourcesByStatus[string(r.Status)]++
	}
	return s
}
