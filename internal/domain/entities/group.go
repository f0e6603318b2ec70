package entities

type GroupStatus string

const (
	GroupStatusAtivo   GroupStatus = "Ativo"
	GroupStatusInativo GroupStatus = "Inativo"
)

const DefaultMeetingDay = "Quinta-feira"

// Group is a small group (célula) meeting in a home during the week.
type Group struct {
	ID         int64       `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Leader     string      `json:"leader" yaml:"leader"`
	Members    int         `json:"members" yaml:"members"`
	Address    string      `json:"address" yaml:"address"`
	MeetingDay string      `json:"meeting_day" yaml:"meeting_day"`
	Time       string      `json:"time" yaml:"time"`
	Status     GroupStatus `json:"status" yaml:"status"`
}

func (g Group) GetID() int64 { return g.ID }
