package entities

import "strings"

type RosterStatus string

const (
	RosterStatusConfirmado RosterStatus = "Confirmado"
	RosterStatusPendente   RosterStatus = "Pendente"
)

const DefaultRosterTeam = "Louvor"

// Roster (escala) assigns named volunteers to a team for one event occurrence.
type Roster struct {
	ID      int64        `json:"id" yaml:"id"`
	Event   string       `json:"event" yaml:"event"`
	Date    Date         `json:"date" yaml:"date"`
	Time    string       `json:"time" yaml:"time"`
	Team    string       `json:"team" yaml:"team"`
	Members []string     `json:"members" yaml:"members"`
	Status  RosterStatus `json:"status" yaml:"status"`
}

func (r Roster) GetID() int64 { return r.ID }

// ParseMemberList splits a comma-separated list of names, trimming each entry and
// dropping empty ones. Order is preserved.
func ParseMemberList(s string) []string {
	members := []string{}
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			members = append(members, name)
		}
	}
	return members
}

// JoinMemberList is the inverse used to seed an edit form.
func JoinMemberList(members []string) string {
	return strings.Join(members, ", ")
}
