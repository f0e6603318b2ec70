package response

import "gestao_igreja/internal/domain/entities"

type EventResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	DateDisplay string `json:"date_display"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Attendees   int    `json:"attendees"`
	Status      string `json:"status"`
}

func FromEvent(e entities.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date.ISO(),
		DateDisplay: e.Date.Display(),
		Time:        e.Time,
		Location:    e.Location,
		Type:        e.Type,
		Description: e.Description,
		Attendees:   e.Attendees,
		Status:      string(e.Status),
	}
}

type BlockedDateResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	DateDisplay string `json:"date_display"`
	Reason      string `json:"reason"`
}

func FromBlockedDate(b entities.BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{ID: b.ID, Date: b.Date.ISO(), DateDisplay: b.Date.Display(), Reason: b.Reason}
}

type RosterResponse struct {
	ID          int64    `json:"id"`
	Event       string   `json:"event"`
	Date        string   `json:"date"`
	DateDisplay string   `json:"date_display"`
	Time        string   `json:"time"`
	Team        string   `json:"team"`
	Members     []string `json:"members"`
	Status      string   `json:"status"`
}

func FromRoster(r entities.Roster) RosterResponse {
	members := r.Members
	if members == nil {
		members = []string{}
	}
	return RosterResponse{
		ID:          r.ID,
		Event:       r.Event,
		Date:        r.Date.ISO(),
		DateDisplay: r.Date.Display(),
		Time:        r.Time,
		Team:        r.Team,
		Members:     members,
		Status:      string(r.Status),
	}
}
