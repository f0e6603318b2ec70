package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"
)

var ErrCongregationNotFound = errors.New("congregation not found")

type CongregationStats struct {
	Total          int            `json:"total"`
	TotalMembers   int            `json:"total_members"`
	AverageMembers int            `json:"average_members"`
	ByStatus       map[string]int `json:"by_status"`
}

type CongregationForm struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Leader  string `json:"leader" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Status  string `json:"status" validate:"congregation_status"`
}

func DefaultCongregationForm() CongregationForm {
	return CongregationForm{Status: string(entities.CongregationStatusAtiva)}
}

func CongregationFormFrom(c entities.Congregation) CongregationForm {
	return CongregationForm{
		Name:    c.Name,
		Address: c.Address,
		Leader:  c.Leader,
		Phone:   c.Phone,
		Email:   c.Email,
		Status:  string(c.Status),
	}
}

type ICongregationUseCase interface {
	List(ctx context.Context, search string) ([]entities.Congregation, error)
	GetByID(ctx context.Context, id int64) (entities.Congregation, error)
	Draft(ctx context.Context, id int64) (CongregationForm, error)
	Save(ctx context.Context, id int64, form CongregationForm) (entities.Congregation, error)
	Delete(ctx context.Context, id int64, confirm ConfirmFunc) error
	Stats(ctx context.Context) (CongregationStats, error)
}

type CongregationUseCase struct {
	store interfaces.IStore[entities.Congregation]
	now   func() time.Time
}

var _ ICongregationUseCase = (*CongregationUseCase)(nil)

func NewCongregationUseCase(store interfaces.IStore[entities.Congregation], now func() time.Time) *CongregationUseCase {
	if now == nil {
		now = time.Now
	}
	return &CongregationUseCase{store: store, now: now}
}

func (u *CongregationUseCase) List(ctx context.Context, search string) ([]entities.Congregation, error) {
	congregations, err := listRecords(ctx, u.store)
	if err != nil {
		return nil, err
	}
	return Search(congregations, search, func(c entities.Congregation) []string {
		return []string{c.Name, c.Leader, c.Address}
	}), nil
}

func (u *CongregationUseCase) GetByID(ctx context.Context, id int64) (entities.Congregation, error) {
	return getRecord(ctx, u.store, id, ErrCongregationNotFound)
}

func (u *CongregationUseCase) Draft(ctx context.Context, id int64) (CongregationForm, error) {
	if id == 0 {
		return DefaultCongregationForm(), nil
	}
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return CongregationForm{}, err
	}
	return CongregationFormFrom(c), nil
}

func (u *CongregationUseCase) Save(ctx context.Context, id int64, form CongregationForm) (entities.Congregation, error) {
	if err := validateForm(form); err != nil {
		return entities.Congregation{}, err
	}
	status := entities.CongregationStatus(orDefault(form.Status, string(entities.CongregationStatusAtiva)))

	if id != 0 {
		return updateRecord(ctx, u.store, id, func(c entities.Congregation) entities.Congregation {
			c.Name = strings.TrimSpace(form.Name)
			c.Address = strings.TrimSpace(form.Address)
			c.Leader = strings.TrimSpace(form.Leader)
			c.Phone = strings.TrimSpace(form.Phone)
			c.Email = strings.TrimSpace(form.Email)
			c.Status = status
			return c
		}, ErrCongregationNotFound)
	}

	created, err := u.store.Create(ctx, entities.Congregation{
		Name:    strings.TrimSpace(form.Name),
		Address: strings.TrimSpace(form.Address),
		Leader:  strings.TrimSpace(form.Leader),
		Members: 0,
		Founded: strconv.Itoa(u.now().Year()),
		Phone:   strings.TrimSpace(form.Phone),
		Email:   strings.TrimSpace(form.Email),
		Status:  status,
		Image:   entities.DefaultCongregationImage,
	})
	if err != nil {
		return entities.Congregation{}, err
	}
	log.Printf("[congregations][usecase] created congregation_id=%d", created.ID)
	return created, nil
}

func (u *CongregationUseCase) Delete(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.store, id, confirm, ErrCongregationNotFound)
}

func (u *CongregationUseCase) Stats(ctx context.Context) (CongregationStats, error) {
	congregations, err := listRecords(ctx, u.store)
	if err != nil {
		return CongregationStats{}, err
	}
	return ComputeCongregationStats(congregations), nil
}

func ComputeCongregationStats(congregations []entities.Congregation) CongregationStats {
	s := CongregationStats{Total: len(congregations), ByStatus: map[string]int{}}
	for _, c := range congregations {
		s.TotalMembers += c.Members
		s.ByStatus[string(c.Status)]++
	}
	s.AverageMembers = roundedMean(s.TotalMembers, s.Total)
	return s
}
