package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRosterNotFound     = errors.New("roster not found")
	ErrNoRecipients       = errors.New("no roster member could be resolved to an e-mail")
	ErrNotificationFailed = errors.New("notification failed")
)

type RosterQuery struct {
	Search string
	Status string
}

type RosterStats struct {
	Total      int `json:"total"`
	Confirmed  int `json:"confirmed"`
	Pending    int `json:"pending"`
	Volunteers int `json:"volunteers"`
}

// RosterForm takes the volunteers as one comma-separated text field.
type RosterForm struct {
	Event   string `json:"event" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string `json:"time" validate:"omitempty,datetime=15:04"`
	Team    string `json:"team" validate:"required"`
	Members string `json:"members"`
	Status  string `json:"status" validate:"omitempty,oneof=Confirmado Pendente"`
}

func DefaultRosterForm() RosterForm {
	return RosterForm{Team: entities.DefaultRosterTeam}
}

func RosterFormFrom(r entities.Roster) RosterForm {
	return RosterForm{
		Event:   r.Event,
		Date:    r.Date.ISO(),
		Time:    r.Time,
		Team:    r.Team,
		Members: entities.JoinMemberList(r.Members),
		Status:  string(r.Status),
	}
}

// NotifyResult reports who was e-mailed. Skipped holds roster names with no
// matching member e-mail.
type NotifyResult struct {
	ID        string   `json:"id"`
	MessageID string   `json:"message_id"`
	Message   string   `json:"message"`
	Sent      []string `json:"sent"`
	Skipped   []string `json:"skipped"`
}

type IRosterUseCase interface {
	List(ctx context.Context, q RosterQuery) ([]entities.Roster, error)
	GetByID(ctx context.Context, id int64) (entities.Roster, error)
	Draft(ctx context.Context, id int64) (RosterForm, error)
	Save(ctx context.Context, id int64, form RosterForm) (entities.Roster, error)
	Delete(ctx context.Context, id int64, confirm ConfirmFunc) error
	Stats(ctx context.Context) (RosterStats, error)
	Notify(ctx context.Context, id int64) (NotifyResult, error)
}

type RosterUseCase struct {
	rosters  interfaces.IStore[entities.Roster]
	members  interfaces.IStore[entities.Member]
	notifier interfaces.INotifier
}

var _ IRosterUseCase = (*RosterUseCase)(nil)

func NewRosterUseCase(rosters interfaces.IStore[entities.Roster], members interfaces.IStore[entities.Member], notifier interfaces.INotifier) *RosterUseCase {
	return &RosterUseCase{rosters: rosters, members: members, notifier: notifier}
}

func (u *RosterUseCase) List(ctx context.Context, q RosterQuery) ([]entities.Roster, error) {
	rosters, err := listRecords(ctx, u.rosters)
	if err != nil {
		return nil, err
	}
	visible := Search(rosters, q.Search, func(r entities.Roster) []string {
		return []string{r.Event, r.Team}
	})
	return Where(visible, func(r entities.Roster) bool { return MatchExact(string(r.Status), q.Status) }), nil
}

func (u *RosterUseCase) GetByID(ctx context.Context, id int64) (entities.Roster, error) {
	return getRecord(ctx, u.rosters, id, ErrRosterNotFound)
}

func (u *RosterUseCase) Draft(ctx context.Context, id int64) (RosterForm, error) {
	if id == 0 {
		return DefaultRosterForm(), nil
	}
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return RosterForm{}, err
	}
	return RosterFormFrom(r), nil
}

func (u *RosterUseCase) Save(ctx context.Context, id int64, form RosterForm) (entities.Roster, error) {
	if err := validateForm(form); err != nil {
		return entities.Roster{}, err
	}
	date, err := parseFormDate("date", form.Date)
	if err != nil {
		return entities.Roster{}, err
	}
	members := entities.ParseMemberList(form.Members)

	if id != 0 {
		return updateRecord(ctx, u.rosters, id, func(r entities.Roster) entities.Roster {
			r.Event = strings.TrimSpace(form.Event)
			r.Date = date
			r.Time = strings.TrimSpace(form.Time)
			r.Team = strings.TrimSpace(form.Team)
			r.Members = members
			if form.Status != "" {
				r.Status = entities.RosterStatus(form.Status)
			}
			return r
		}, ErrRosterNotFound)
	}

	created, err := u.rosters.Create(ctx, entities.Roster{
		Event:   strings.TrimSpace(form.Event),
		Date:    date,
		Time:    strings.TrimSpace(form.Time),
		Team:    strings.TrimSpace(form.Team),
		Members: members,
		Status:  entities.RosterStatusPendente,
	})
	if err != nil {
		return entities.Roster{}, err
	}
	log.Printf("[rosters][usecase] created roster_id=%d team=%q members=%d", created.ID, created.Team, len(created.Members))
	return created, nil
}

func (u *RosterUseCase) Delete(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.rosters, id, confirm, ErrRosterNotFound)
}

func (u *RosterUseCase) Stats(ctx context.Context) (RosterStats, error) {
	rosters, err := listRecords(ctx, u.rosters)
	if err != nil {
		return RosterStats{}, err
	}
	return ComputeRosterStats(rosters), nil
}

// Notify e-mails the roster's volunteers. Names are matched case-insensitively
// against the member roster; names without a member or e-mail are skipped.
func (u *RosterUseCase) Notify(ctx context.Context, id int64) (NotifyResult, error) {
	roster, err := u.GetByID(ctx, id)
	if err != nil {
		return NotifyResult{}, err
	}
	members, err := listRecords(ctx, u.members)
	if err != nil {
		return NotifyResult{}, err
	}

	emails := make(map[string]string, len(members))
	for _, m := range members {
		if m.Email != "" {
			emails[strings.ToLower(strings.TrimSpace(m.Name))] = m.Email
		}
	}

	result := NotifyResult{ID: uuid.NewString(), Sent: []string{}, Skipped: []string{}}
	var to []string
	seen := make(map[string]bool, len(roster.Members))
	for _, name := range roster.Members {
		if email, ok := emails[strings.ToLower(name)]; ok {
			if key := strings.ToLower(email); !seen[key] {
				seen[key] = true
				to = append(to, email)
				result.Sent = append(result.Sent, name)
			}
			continue
		}
		result.Skipped = append(result.Skipped, name)
	}
	if len(to) == 0 {
		log.Printf("[rosters][usecase] notify skipped roster_id=%d reason=no_recipients", roster.ID)
		return result, ErrNoRecipients
	}

	msgID, err := u.notifier.Send(ctx, interfaces.Notification{
		To:      to,
		Subject: fmt.Sprintf("Escala %s - %s (%s)", roster.Team, roster.Event, roster.Date.Display()),
		HTML:    rosterNotificationHTML(roster),
	})
	if err != nil {
		log.Printf("[rosters][usecase] notify failed roster_id=%d batch=%s err=%v", roster.ID, result.ID, err)
		return NotifyResult{}, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	result.MessageID = msgID
	result.Message = fmt.Sprintf("Notificação enviada para a equipe de %s!", roster.Team)
	log.Printf("[rosters][usecase] notified roster_id=%d batch=%s sent=%d skipped=%d", roster.ID, result.ID, len(result.Sent), len(result.Skipped))
	return result, nil
}

func rosterNotificationHTML(r entities.Roster) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Olá! Você está escalado(a) na equipe de <strong>%s</strong>.</p>", html.EscapeString(r.Team))
	fmt.Fprintf(&b, "<p>%s em %s", html.EscapeString(r.Event), r.Date.Display())
	if r.Time != "" {
		fmt.Fprintf(&b, " às %s", html.EscapeString(r.Time))
	}
	b.WriteString(".</p><ul>")
	for _, m := range r.Members {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(m))
	}
	b.WriteString("</ul>")
	return b.String()
}

func ComputeRosterStats(rosters []entities.Roster) RosterStats {
	s := RosterStats{Total: len(rosters)}
	for _, r := range rosters {
		switch r.Status {
		case entities.RosterStatusConfirmado:
			s.Confirmed++
		case entities.RosterStatusPendente:
			s.Pending++
		}
		s.Volunteers += len(r.Members)
	}
	return s
}
