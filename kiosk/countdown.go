package kiosk

import (
	"fmt"
	"math"
	"time"

	"reminder-app/reminder/models"
)

// HoursLeft returns the floored number of hours from now until 23:59:59 of
// the due date in now's location. ok is false when there is no due date.
func HoursLeft(due *models.Date, now time.Time) (hours int, ok bool) {
	if due == nil {
		return 0, false
	}
	end := due.In(now.Location(), 23, 59, 59)
	return int(math.Floor(end.Sub(now).Hours())), true
}

// FormatCountdown renders hours as "x Tag(e), y Stunde(n)", or just the
// hours when less than a day remains.
func FormatCountdown(hours int) string {
	sign := ""
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	days, rest := hours/24, hours%24
	if days == 0 {
		return fmt.Sprintf("%s%d %s", sign, rest, plural(rest, "Stunde", "Stunden"))
	}
	return fmt.Sprintf("%s%d %s, %d %s", sign, days, plural(days, "Tag", "Tage"), rest, plural(rest, "Stunde", "Stunden"))
}

// IsSoon reports whether less than a day is left. Overdue counts as soon.
func IsSoon(hours int) bool {
	return hours < 24
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
