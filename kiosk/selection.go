package kiosk

import "reminder-app/reminder/models"

// PageSize is the number of cards a single-priority mode shows.
const PageSize = 4

type quota struct {
	priority models.Priority
	n        int
}

var quotas = map[Mode][]quota{
	ModeMixed:  {{models.PriorityHigh, 1}, {models.PriorityNormal, 2}, {models.PriorityLow, 1}},
	ModeHigh:   {{models.PriorityHigh, PageSize}},
	ModeNormal: {{models.PriorityNormal, PageSize}},
	ModeLow:    {{models.PriorityLow, PageSize}},
}

// Select picks the tasks to display from open tasks already in display
// order. ModeMixed only considers tasks due today or later; the other modes
// include overdue and undated tasks. Input order is preserved within each
// priority.
func Select(mode Mode, openSorted []models.Task, today models.Date) []models.Task {
	mode = ParseMode(int(mode))

	base := openSorted
	if mode == ModeMixed {
		base = make([]models.Task, 0, len(openSorted))
		for _, t := range openSorted {
			if t.DueDate != nil && !t.DueDate.Before(today) {
				base = append(base, t)
			}
		}
	}

	selected := make([]models.Task, 0, PageSize)
	for _, q := range quotas[mode] {
		selected = append(selected, take(base, q.priority, q.n)...)
	}
	return selected
}

func take(tasks []models.Task, priority models.Priority, n int) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if len(out) == n {
			break
		}
		if t.Priority == priority {
			out = append(out, t)
		}
	}
	return out
}
