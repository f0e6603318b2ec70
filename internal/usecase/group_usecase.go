package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"
)

var ErrGroupNotFound = errors.New("group not found")

type GroupStats struct {
	Total          int `json:"total"`
	Active         int `json:"active"`
	TotalMembers   int `json:"total_members"`
	AverageMembers int `json:"average_members"`
}

type GroupForm struct {
	Name       string `json:"name" validate:"required"`
	Leader     string `json:"leader" validate:"required"`
	Address    string `json:"address"`
	MeetingDay string `json:"meeting_day"`
	Time       string `json:"time" validate:"omitempty,datetime=15:04"`
	Status     string `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
}

func DefaultGroupForm() GroupForm {
	return GroupForm{MeetingDay: entities.DefaultMeetingDay}
}

func GroupFormFrom(g entities.Group) GroupForm {
	return GroupForm{
		Name:       g.Name,
		Leader:     g.Leader,
		Address:    g.Address,
		MeetingDay: g.MeetingDay,
		Time:       g.Time,
		Status:     string(g.Status),
	}
}

type IGroupUseCase interface {
	List(ctx context.Context, search string) ([]entities.Group, error)
	GetByID(ctx context.Context, id int64) (entities.Group, error)
	Draft(ctx context.Context, id int64) (GroupForm, error)
	Save(ctx context.Context, id int64, form GroupForm) (entities.Group, error)
	Delete(ctx context.Context, id int64, confirm ConfirmFunc) error
	Stats(ctx context.Context) (GroupStats, error)
}

type GroupUseCase struct {
	store interfaces.IStore[entities.Group]
}

var _ IGroupUseCase = (*GroupUseCase)(nil)

func NewGroupUseCase(store interfaces.IStore[entities.Group]) *GroupUseCase {
	return &GroupUseCase{store: store}
}

func (u *GroupUseCase) List(ctx context.Context, search string) ([]entities.Group, error) {
	groups, err := listRecords(ctx, u.store)
	if err != nil {
		return nil, err
	}
	return Search(groups, search, func(g entities.Group) []string {
		return []string{g.Name, g.Leader}
	}), nil
}

func (u *GroupUseCase) GetByID(ctx context.Context, id int64) (entities.Group, error) {
	return getRecord(ctx, u.store, id, ErrGroupNotFound)
}

func (u *GroupUseCase) Draft(ctx context.Context, id int64) (GroupForm, error) {
	if id == 0 {
		return DefaultGroupForm(), nil
	}
	g, err := u.GetByID(ctx, id)
	if err != nil {
		return GroupForm{}, err
	}
	return GroupFormFrom(g), nil
}

// Save never touches Members: the member count is not editable from the form.
func (u *GroupUseCase) Save(ctx context.Context, id int64, form GroupForm) (entities.Group, error) {
	if err := validateForm(form); err != nil {
		return entities.Group{}, err
	}
	meetingDay := orDefault(form.MeetingDay, entities.DefaultMeetingDay)

	if id != 0 {
		return updateRecord(ctx, u.store, id, func(g entities.Group) entities.Group {
			g.Name = strings.TrimSpace(form.Name)
			g.Leader = strings.TrimSpace(form.Leader)
			g.Address = strings.TrimSpace(form.Address)
			g.MeetingDay = meetingDay
			g.Time = strings.TrimSpace(form.Time)
			if form.Status != "" {
				g.Status = entities.GroupStatus(form.Status)
			}
			return g
		}, ErrGroupNotFound)
	}

	created, err := u.store.Create(ctx, entities.Group{
		Name:       strings.TrimSpace(form.Name),
		Leader:     strings.TrimSpace(form.Leader),
		Members:    0,
		Address:    strings.TrimSpace(form.Address),
		MeetingDay: meetingDay,
		Time:       strings.TrimSpace(form.Time),
		Status:     entities.GroupStatusAtivo,
	})
	if err != nil {
		return entities.Group{}, err
	}
	log.Printf("[groups][usecase] created group_id=%d", created.ID)
	return created, nil
}

func (u *GroupUseCase) Delete(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.store, id, confirm, ErrGroupNotFound)
}

func (u *GroupUseCase) Stats(ctx context.Context) (GroupStats, error) {
	groups, err := listRecords(ctx, u.store)
	if err != nil {
		return GroupStats{}, err
	}
	return ComputeGroupStats(groups), nil
}

func ComputeGroupStats(groups []entities.Group) GroupStats {
	s := GroupStats{Total: len(groups)}
	for _, g := range groups {
		if g.Status == entities.GroupStatusAtivo {
			s.Active++
		}
		s.TotalMembers += g.Members
	}
	s.AverageMembers = roundedMean(s.TotalMembers, s.Total)
	return s
}

// roundedMean is sum/n rounded half away from zero, or 0 when n is 0.
func roundedMean(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
