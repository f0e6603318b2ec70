package entities

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDate_DisplayISORoundTrip(t *testing.T) {
	d, err := ParseDisplay("05/11/2023")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	iso := d.ISO()
	if iso != "2023-11-05" {
		t.Fatalf("expected 2023-11-05, got %q", iso)
	}

	back, err := ParseISO(iso)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := back.Display(); got != "05/11/2023" {
		t.Fatalf("expected 05/11/2023, got %q", got)
	}
}

func TestDate_Parse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "iso", in: "2023-06-15", want: NewDate(2023, time.June, 15)},
		{name: "display", in: "15/06/2023", want: NewDate(2023, time.June, 15)},
		{name: "padded", in: "  2023-06-15 ", want: NewDate(2023, time.June, 15)},
		{name: "garbage", in: "15-06", wantErr: true},
		{name: "impossible day", in: "31/02/2023", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDate_ZeroValue(t *testing.T) {
	var d Date
	if d.ISO() != "" || d.Display() != DisplayDateUnset {
		t.Fatalf("unexpected zero rendering: %q %q", d.ISO(), d.Display())
	}

	var parsed Date
	if err := parsed.UnmarshalText([]byte("N/A")); err != nil || !parsed.IsZero() {
		t.Fatalf("expected N/A to decode to zero date, got %v %v", parsed, err)
	}
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	b, err := json.Marshal(wrapper{Date: NewDate(2024, time.March, 9)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"date":"2024-03-09"}` {
		t.Fatalf("unexpected json: %s", b)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"date":"09/03/2024"}`), &w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Date.ISO() != "2024-03-09" {
		t.Fatalf("unexpected date: %s", w.Date)
	}
}
