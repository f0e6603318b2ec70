package entities

import (
	"errors"
	"strings"
	"time"
)

const (
	ISODateLayout     = "2006-01-02"
	DisplayDateLayout = "02/01/2006"

	// DisplayDateUnset is rendered for optional dates that were never filled in.
	DisplayDateUnset = "N/A"
)

var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day without time-of-day or zone.
//
// It is the single source of truth for every date field in the domain. Records never
// store the localized DD/MM/YYYY string; that form is produced only when rendering.
// The zero value means "unset".
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseISO parses the YYYY-MM-DD form sent by date inputs.
func ParseISO(s string) (Date, error) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// ParseDisplay parses the DD/MM/YYYY form used by the dashboard.
func ParseDisplay(s string) (Date, error) {
	t, err := time.Parse(DisplayDateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// ParseDate accepts either representation.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		return ParseDisplay(s)
	}
	return ParseISO(s)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

// ISO returns YYYY-MM-DD, or "" for an unset date.
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(ISODateLayout)
}

// Display returns DD/MM/YYYY, or DisplayDateUnset for an unset date.
func (d Date) Display() string {
	if d.IsZero() {
		return DisplayDateUnset
	}
	return d.t.Format(DisplayDateLayout)
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

func (d Date) String() string {
	return d.ISO()
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.ISO()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" || s == DisplayDateUnset {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
