package kiosk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reminder-app/reminder/models"
)

func TestHoursLeft(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		berlin = time.FixedZone("CEST", 2*60*60)
	}
	due := models.Date{Year: 2026, Month: time.October, Day: 16}

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"25 hours ahead", time.Date(2026, time.October, 15, 22, 59, 59, 0, berlin), 25},
		{"23 hours ahead", time.Date(2026, time.October, 16, 0, 59, 59, 0, berlin), 23},
		{"partial hour floors", time.Date(2026, time.October, 16, 23, 30, 0, 0, berlin), 0},
		{"2 hours overdue", time.Date(2026, time.October, 17, 1, 59, 59, 0, berlin), -2},
		{"partial overdue floors down", time.Date(2026, time.October, 17, 0, 30, 0, 0, berlin), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, ok := HoursLeft(&due, tt.now)
			assert.True(t, ok)
			assert.Equal(t, tt.want, hours)
		})
	}

	_, ok := HoursLeft(nil, time.Now())
	assert.False(t, ok)
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		hours int
		want  string
	}{
		{25, "1 Tag, 1 Stunde"},
		{23, "23 Stunden"},
		{-2, "-2 Stunden"},
		{1, "1 Stunde"},
		{0, "0 Stunden"},
		{24, "1 Tag, 0 Stunden"},
		{50, "2 Tage, 2 Stunden"},
		{-49, "-2 Tage, 1 Stunde"},
		{-1, "-1 Stunde"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCountdown(tt.hours), "hours=%d", tt.hours)
	}
}

func TestIsSoon(t *testing.T) {
	assert.True(t, IsSoon(23))
	assert.True(t, IsSoon(-2))
	assert.False(t, IsSoon(24))
	assert.False(t, IsSoon(25))
}
