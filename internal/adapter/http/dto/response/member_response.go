package response

import (
	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase"
)

type MemberResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Status          string `json:"status"`
	Role            string `json:"role"`
	Group           string `json:"group"`
	JoinDate        string `json:"join_date"`
	JoinDateDisplay string `json:"join_date_display"`
	Avatar          string `json:"avatar"`
}

func FromMember(m entities.Member) MemberResponse {
	return MemberResponse{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Status:          string(m.Status),
		Role:            m.Role,
		Group:           m.Group,
		JoinDate:        m.JoinDate.ISO(),
		JoinDateDisplay: m.JoinDate.Display(),
		Avatar:          m.Avatar,
	}
}

func FromMemberPage(p usecase.MemberPage) PageResponse[MemberResponse] {
	return PageResponse[MemberResponse]{Data: MapList(p.Members, FromMember).Data, Page: p.Page}
}
