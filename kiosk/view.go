package kiosk

import (
	"fmt"
	"time"

	"reminder-app/reminder/models"
)

// Card is one displayed task with its derived due information.
type Card struct {
	Task      models.Task
	Overdue   bool
	HasDue    bool
	Countdown string
	Soon      bool
}

// View is everything the kiosk page renders.
type View struct {
	User      models.User
	Mode      Mode
	Cards     []Card
	Summary   string
	RefreshMS int64
	Refresh   int64
}

// BuildView selects the cards for mode and derives their display state.
func BuildView(user models.User, mode Mode, openSorted []models.Task, now time.Time, refresh time.Duration) View {
	today := models.DateOf(now)
	selected := Select(mode, openSorted, today)

	cards := make([]Card, 0, len(selected))
	for i := range selected {
		t := selected[i]
		card := Card{Task: t, Overdue: t.IsOverdue(today)}
		if hours, ok := HoursLeft(t.DueDate, now); ok {
			card.HasDue = true
			card.Countdown = FormatCountdown(hours)
			card.Soon = IsSoon(hours)
		}
		cards = append(cards, card)
	}

	if refresh < 0 {
		refresh = 0
	}

	return View{
		User:      user,
		Mode:      ParseMode(int(mode)),
		Cards:     cards,
		Summary:   Summary(selected),
		RefreshMS: refresh.Milliseconds(),
		Refresh:   int64(refresh / time.Second),
	}
}

// Summary counts the displayed tasks per priority.
func Summary(tasks []models.Task) string {
	counts := make(map[models.Priority]int, len(models.Priorities))
	for _, t := range tasks {
		counts[t.Priority]++
	}
	return fmt.Sprintf("%d× hoch, %d× normal, %d× niedrig",
		counts[models.PriorityHigh], counts[models.PriorityNormal], counts[models.PriorityLow])
}
