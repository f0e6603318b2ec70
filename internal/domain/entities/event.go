package entities

type EventStatus string

const (
	EventStatusConfirmado EventStatus = "Confirmado"
	EventStatusPendente   EventStatus = "Pendente"
)

const (
	DefaultEventLocation = "Templo Principal"
	DefaultEventType     = "Culto"
)

type Event struct {
	ID          int64       `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Date        Date        `json:"date" yaml:"date"`
	Time        string      `json:"time" yaml:"time"`
	Location    string      `json:"location" yaml:"location"`
	Type        string      `json:"type" yaml:"type"`
	Description string      `json:"description" yaml:"description"`
	Attendees   int         `json:"attendees" yaml:"attendees"`
	Status      EventStatus `json:"status" yaml:"status"`
}

func (e Event) GetID() int64 { return e.ID }

// ConflictsWith reports the naive schedule overlap: another event at the same
// date, time and location. An event never conflicts with itself.
func (e Event) ConflictsWith(other Event) bool {
	if e.ID != 0 && e.ID == other.ID {
		return false
	}
	return e.Date.Equal(other.Date) && e.Time == other.Time && e.Location == other.Location
}

// BlockedDate is a day on which no new events may be scheduled.
type BlockedDate struct {
	ID     int64  `json:"id" yaml:"id"`
	Date   Date   `json:"date" yaml:"date"`
	Reason string `json:"reason" yaml:"reason"`
}

func (b BlockedDate) GetID() int64 { return b.ID }
