package entities

import (
	"fmt"
	"strings"
)

type MemberStatus string

const (
	MemberStatusAtivo   MemberStatus = "Ativo"
	MemberStatusInativo MemberStatus = "Inativo"
)

const (
	DefaultMemberRole  = "Membro"
	DefaultMemberPhone = "(00) 00000-0000"
)

// Member is a person in the congregation roster.
type Member struct {
	ID       int64        `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Email    string       `json:"email" yaml:"email"`
	Phone    string       `json:"phone" yaml:"phone"`
	Status   MemberStatus `json:"status" yaml:"status"`
	Role     string       `json:"role" yaml:"role"`
	Group    string       `json:"group" yaml:"group"`
	JoinDate Date         `json:"join_date" yaml:"join_date"`
	Avatar   string       `json:"avatar" yaml:"avatar"`
}

func (m Member) GetID() int64 { return m.ID }

// MemberAvatarURL derives the placeholder avatar from the first name.
func MemberAvatarURL(name string) string {
	first := strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(first, ' '); i >= 0 {
		first = first[:i]
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/40/40", first)
}
