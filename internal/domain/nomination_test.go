package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNominationOpenForApplication(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	active := Nomination{Status: NominationStatusActive, StartDate: start, EndDate: end}

	tests := []struct {
		name string
		nom  Nomination
		now  time.Time
		open bool
	}{
		{"InsideWindow", active, start.Add(24 * time.Hour), true},
		{"AtStartInclusive", active, start, true},
		{"AtEndInclusive", active, end, true},
		{"BeforeStart", active, start.Add(-time.Second), false},
		{"AfterEnd", active, end.Add(time.Second), false},
		{"ClosedStatusInsideWindow",
			Nomination{Status: NominationStatusClosed, StartDate: start, EndDate: end},
			start.Add(24 * time.Hour), false},
		{"InactiveStatusInsideWindow",
			Nomination{Status: NominationStatusInactive, StartDate: start, EndDate: end},
			start.Add(24 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.open, tt.nom.OpenForApplication(tt.now))
		})
	}
}
