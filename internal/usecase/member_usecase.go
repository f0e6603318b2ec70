package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"
)

var ErrMemberNotFound = errors.New("member not found")

// DefaultMembersPerPage matches the member roster page size.
const DefaultMembersPerPage = 5

type MemberQuery struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

type MemberPage struct {
	Members []entities.Member
	Page    PageInfo
}

type MemberStats struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Inactive int            `json:"inactive"`
	ByRole   map[string]int `json:"by_role"`
}

// MemberForm is the member authoring form.
type MemberForm struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Group  string `json:"group"`
	Status string `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
}

func DefaultMemberForm() MemberForm {
	return MemberForm{Role: entities.DefaultMemberRole, Status: string(entities.MemberStatusAtivo)}
}

func MemberFormFrom(m entities.Member) MemberForm {
	return MemberForm{
		Name:   m.Name,
		Email:  m.Email,
		Phone:  m.Phone,
		Role:   m.Role,
		Group:  m.Group,
		Status: string(m.Status),
	}
}

type IMemberUseCase interface {
	List(ctx context.Context, q MemberQuery) (MemberPage, error)
	GetByID(ctx context.Context, id int64) (entities.Member, error)
	Draft(ctx context.Context, id int64) (MemberForm, error)
	Save(ctx context.Context, id int64, form MemberForm) (entities.Member, error)
	Delete(ctx context.Context, id int64, confirm ConfirmFunc) error
	Stats(ctx context.Context) (MemberStats, error)
}

type MemberUseCase struct {
	store   interfaces.IStore[entities.Member]
	now     func() time.Time
	perPage int
}

var _ IMemberUseCase = (*MemberUseCase)(nil)

func NewMemberUseCase(store interfaces.IStore[entities.Member], now func() time.Time, perPage int) *MemberUseCase {
	if now == nil {
		now = time.Now
	}
	if perPage <= 0 {
		perPage = DefaultMembersPerPage
	}
	return &MemberUseCase{store: store, now: now, perPage: perPage}
}

func (u *MemberUseCase) List(ctx context.Context, q MemberQuery) (MemberPage, error) {
	members, err := listRecords(ctx, u.store)
	if err != nil {
		return MemberPage{}, err
	}

	visible := Search(members, q.Search, func(m entities.Member) []string {
		return []string{m.Name, m.Email, m.Phone}
	})
	visible = Where(visible, func(m entities.Member) bool { return MatchExact(string(m.Status), q.Status) })

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = u.perPage
	}
	page, info := Paginate(visible, q.Page, perPage)
	return MemberPage{Members: page, Page: info}, nil
}

func (u *MemberUseCase) GetByID(ctx context.Context, id int64) (entities.Member, error) {
	return getRecord(ctx, u.store, id, ErrMemberNotFound)
}

func (u *MemberUseCase) Draft(ctx context.Context, id int64) (MemberForm, error) {
	if id == 0 {
		return DefaultMemberForm(), nil
	}
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return MemberForm{}, err
	}
	return MemberFormFrom(m), nil
}

// Save creates a member when id is 0, otherwise updates the member with that id.
// Join date and avatar are kept on update.
func (u *MemberUseCase) Save(ctx context.Context, id int64, form MemberForm) (entities.Member, error) {
	if err := validateForm(form); err != nil {
		return entities.Member{}, err
	}

	name := strings.TrimSpace(form.Name)
	status := entities.MemberStatus(orDefault(form.Status, string(entities.MemberStatusAtivo)))

	if id != 0 {
		return updateRecord(ctx, u.store, id, func(m entities.Member) entities.Member {
			m.Name = name
			m.Email = strings.TrimSpace(form.Email)
			m.Phone = orDefault(form.Phone, m.Phone)
			m.Role = orDefault(form.Role, m.Role)
			m.Group = strings.TrimSpace(form.Group)
			m.Status = status
			return m
		}, ErrMemberNotFound)
	}

	created, err := u.store.Create(ctx, entities.Member{
		Name:     name,
		Email:    strings.TrimSpace(form.Email),
		Phone:    orDefault(form.Phone, entities.DefaultMemberPhone),
		Status:   status,
		Role:     orDefault(form.Role, entities.DefaultMemberRole),
		Group:    strings.TrimSpace(form.Group),
		JoinDate: entities.DateOf(u.now()),
		Avatar:   entities.MemberAvatarURL(name),
	})
	if err != nil {
		return entities.Member{}, err
	}
	log.Printf("[members][usecase] created member_id=%d", created.ID)
	return created, nil
}

func (u *MemberUseCase) Delete(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.store, id, confirm, ErrMemberNotFound)
}

func (u *MemberUseCase) Stats(ctx context.Context) (MemberStats, error) {
	members, err := listRecords(ctx, u.store)
	if err != nil {
		return MemberStats{}, err
	}
	return ComputeMemberStats(members), nil
}

func ComputeMemberStats(members []entities.Member) MemberStats {
	s := MemberStats{Total: len(members), ByRole: map[string]int{}}
	for _, m := range members {
		switch m.Status {
		case entities.MemberStatusAtivo:
			s.Active++
		case entities.MemberStatusInativo:
			s.Inactive++
		}
		s.ByRole[m.Role]++
	}
	return s
}
