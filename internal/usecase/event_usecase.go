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

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventConflict        = errors.New("another event is scheduled at the same date, time and location")
	ErrDateBlocked          = errors.New("date is blocked for new events")
	ErrBlockedDateNotFound  = errors.New("blocked date not found")
	ErrInvalidCalendarMonth = errors.New("invalid calendar month")
)

type EventQuery struct {
	Search string
	Type   string
}

type EventStats struct {
	Total          int            `json:"total"`
	TotalAttendees int            `json:"total_attendees"`
	ByType         map[string]int `json:"by_type"`
	Upcoming       int            `json:"upcoming"`
}

type EventForm struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,datetime=15:04"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type BlockForm struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"required"`
}

func DefaultEventForm() EventForm {
	return EventForm{Location: entities.DefaultEventLocation, Type: entities.DefaultEventType}
}

func EventFormFrom(e entities.Event) EventForm {
	return EventForm{
		Title:       e.Title,
		Date:        e.Date.ISO(),
		Time:        e.Time,
		Location:    e.Location,
		Type:        e.Type,
		Description: e.Description,
	}
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date    entities.Date         `json:"date"`
	Day     int                   `json:"day"`
	Today   bool                  `json:"today"`
	Blocked *entities.BlockedDate `json:"blocked,omitempty"`
	Events  []entities.Event      `json:"events"`
}

// CalendarMonth is a Sunday-first month grid. LeadingBlanks is the number of empty
// cells before day 1.
type CalendarMonth struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	Title         string        `json:"title"`
	LeadingBlanks int           `json:"leading_blanks"`
	Days          []CalendarDay `json:"days"`
}

type IEventUseCase interface {
	List(ctx context.Context, q EventQuery) ([]entities.Event, error)
	GetByID(ctx context.Context, id int64) (entities.Event, error)
	Draft(ctx context.Context, id int64) (EventForm, error)
	Save(ctx context.Context, id int64, form EventForm) (entities.Event, error)
	Delete(ctx context.Context, id int64, confirm ConfirmFunc) error
	Stats(ctx context.Context) (EventStats, error)
	ListBlocks(ctx context.Context) ([]entities.BlockedDate, error)
	Block(ctx context.Context, form BlockForm) (entities.BlockedDate, error)
	Unblock(ctx context.Context, id int64, confirm ConfirmFunc) error
	Calendar(ctx context.Context, year, month int) (CalendarMonth, error)
}

type EventUseCase struct {
	events interfaces.IStore[entities.Event]
	blocks interfaces.IStore[entities.BlockedDate]
	now    func() time.Time
}

var _ IEventUseCase = (*EventUseCase)(nil)

func NewEventUseCase(events interfaces.IStore[entities.Event], blocks interfaces.IStore[entities.BlockedDate], now func() time.Time) *EventUseCase {
	if now == nil {
		now = time.Now
	}
	return &EventUseCase{events: events, blocks: blocks, now: now}
}

func (u *EventUseCase) List(ctx context.Context, q EventQuery) ([]entities.Event, error) {
	events, err := listRecords(ctx, u.events)
	if err != nil {
		return nil, err
	}
	visible := Search(events, q.Search, func(e entities.Event) []string {
		return []string{e.Title, e.Location}
	})
	return Where(visible, func(e entities.Event) bool { return MatchExact(e.Type, q.Type) }), nil
}

func (u *EventUseCase) GetByID(ctx context.Context, id int64) (entities.Event, error) {
	return getRecord(ctx, u.events, id, ErrEventNotFound)
}

func (u *EventUseCase) Draft(ctx context.Context, id int64) (EventForm, error) {
	if id == 0 {
		return DefaultEventForm(), nil
	}
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return EventForm{}, err
	}
	return EventFormFrom(e), nil
}

// Save rejects blocked dates first, then schedule conflicts with any other event.
func (u *EventUseCase) Save(ctx context.Context, id int64, form EventForm) (entities.Event, error) {
	if err := validateForm(form); err != nil {
		return entities.Event{}, err
	}
	date, err := parseFormDate("date", form.Date)
	if err != nil {
		return entities.Event{}, err
	}

	candidate := entities.Event{
		ID:          id,
		Title:       strings.TrimSpace(form.Title),
		Date:        date,
		Time:        strings.TrimSpace(form.Time),
		Location:    orDefault(form.Location, entities.DefaultEventLocation),
		Type:        orDefault(form.Type, entities.DefaultEventType),
		Description: strings.TrimSpace(form.Description),
	}

	blocks, err := listRecords(ctx, u.blocks)
	if err != nil {
		return entities.Event{}, err
	}
	for _, b := range blocks {
		if b.Date.Equal(date) {
			log.Printf("[events][usecase] rejected blocked date=%s reason=%q", date.ISO(), b.Reason)
			return entities.Event{}, ErrDateBlocked
		}
	}

	events, err := listRecords(ctx, u.events)
	if err != nil {
		return entities.Event{}, err
	}
	for _, ev := range events {
		if candidate.ConflictsWith(ev) {
			log.Printf("[events][usecase] conflict date=%s time=%s location=%q with event_id=%d", date.ISO(), candidate.Time, candidate.Location, ev.ID)
			return entities.Event{}, ErrEventConflict
		}
	}

	if id != 0 {
		return updateRecord(ctx, u.events, id, func(e entities.Event) entities.Event {
			e.Title = candidate.Title
			e.Date = candidate.Date
			e.Time = candidate.Time
			e.Location = candidate.Location
			e.Type = candidate.Type
			e.Description = candidate.Description
			return e
		}, ErrEventNotFound)
	}

	candidate.Attendees = 0
	candidate.Status = entities.EventStatusConfirmado
	created, err := u.events.Create(ctx, candidate)
	if err != nil {
		return entities.Event{}, err
	}
	log.Printf("[events][usecase] created event_id=%d date=%s", created.ID, created.Date.ISO())
	return created, nil
}

func (u *EventUseCase) Delete(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.events, id, confirm, ErrEventNotFound)
}

func (u *EventUseCase) Stats(ctx context.Context) (EventStats, error) {
	events, err := listRecords(ctx, u.events)
	if err != nil {
		return EventStats{}, err
	}
	return ComputeEventStats(events, entities.DateOf(u.now())), nil
}

func (u *EventUseCase) ListBlocks(ctx context.Context) ([]entities.BlockedDate, error) {
	return listRecords(ctx, u.blocks)
}

func (u *EventUseCase) Block(ctx context.Context, form BlockForm) (entities.BlockedDate, error) {
	if err := validateForm(form); err != nil {
		return entities.BlockedDate{}, err
	}
	date, err := parseFormDate("date", form.Date)
	if err != nil {
		return entities.BlockedDate{}, err
	}
	created, err := u.blocks.Create(ctx, entities.BlockedDate{Date: date, Reason: strings.TrimSpace(form.Reason)})
	if err != nil {
		return entities.BlockedDate{}, err
	}
	log.Printf("[events][usecase] blocked date=%s block_id=%d", created.Date.ISO(), created.ID)
	return created, nil
}

func (u *EventUseCase) Unblock(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.blocks, id, confirm, ErrBlockedDateNotFound)
}

// Calendar lays out the events of one month. year/month 0 mean the current month.
func (u *EventUseCase) Calendar(ctx context.Context, year, month int) (CalendarMonth, error) {
	today := entities.DateOf(u.now())
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
	}
	if month < 1 || month > 12 || year < 1 {
		return CalendarMonth{}, ErrInvalidCalendarMonth
	}

	events, err := listRecords(ctx, u.events)
	if err != nil {
		return CalendarMonth{}, err
	}
	blocks, err := listRecords(ctx, u.blocks)
	if err != nil {
		return CalendarMonth{}, err
	}
	return BuildCalendar(year, time.Month(month), events, blocks, today), nil
}

func BuildCalendar(year int, month time.Month, events []entities.Event, blocks []entities.BlockedDate, today entities.Date) CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cal := CalendarMonth{
		Year:          year,
		Month:         int(month),
		Title:         monthNames[month-1] + " " + first.Format("2006"),
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]CalendarDay, 0, daysInMonth),
	}
	for d := 1; d <= daysInMonth; d++ {
		date := entities.NewDate(year, month, d)
		day := CalendarDay{Date: date, Day: d, Today: date.Equal(today), Events: []entities.Event{}}
		for _, ev := range events {
			if ev.Date.Equal(date) {
				day.Events = append(day.Events, ev)
			}
		}
		for i := range blocks {
			if blocks[i].Date.Equal(date) {
				b := blocks[i]
				day.Blocked = &b
				break
			}
		}
		cal.Days = append(cal.Days, day)
	}
	return cal
}

func ComputeEventStats(events []entities.Event, today entities.Date) EventStats {
	s := EventStats{Total: len(events), ByType: map[string]int{}}
	for _, e := range events {
		s.TotalAttendees += e.Attendees
		s.ByType[e.Type]++
		if !e.Date.IsZero() && !e.Date.Before(today) {
			s.Upcoming++
		}
	}
	return s
}
