package entities

import (
	"testing"
	"time"
)

func TestEvent_ConflictsWith(t *testing.T) {
	base := Event{ID: 1, Date: NewDate(2024, time.May, 5), Time: "18:00", Location: "Templo Principal"}

	cases := []struct {
		name  string
		other Event
		want  bool
	}{
		{name: "same slot", other: Event{ID: 2, Date: base.Date, Time: "18:00", Location: "Templo Principal"}, want: true},
		{name: "other time", other: Event{ID: 2, Date: base.Date, Time: "09:00", Location: "Templo Principal"}, want: false},
		{name: "other place", other: Event{ID: 2, Date: base.Date, Time: "18:00", Location: "Salas EBD"}, want: false},
		{name: "other day", other: Event{ID: 2, Date: NewDate(2024, time.May, 6), Time: "18:00", Location: "Templo Principal"}, want: false},
		{name: "itself", other: base, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.ConflictsWith(tc.other); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
