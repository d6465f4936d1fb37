package kiosk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reminder-app/reminder/models"
)

var today = models.Date{Year: 2026, Month: time.October, Day: 15}

func dueIn(days int) *models.Date {
	d := today.AddDays(days)
	return &d
}

func ids(tasks []models.Task) []uint {
	out := make([]uint, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestSelect_MixedMode(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Priority: models.PriorityHigh, DueDate: dueIn(0)},
		{ID: 2, Priority: models.PriorityNormal, DueDate: dueIn(1)},
		{ID: 3, Priority: models.PriorityNormal, DueDate: dueIn(2)},
		{ID: 4, Priority: models.PriorityLow, DueDate: dueIn(3)},
		{ID: 5, Priority: models.PriorityHigh, DueDate: dueIn(-1)},
	}
	models.SortTasks(tasks)

	assert.Equal(t, []uint{1, 2, 3, 4}, ids(Select(ModeMixed, tasks, today)))
}

func TestSelect_MixedModeSkipsUndatedAndCaps(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Priority: models.PriorityNormal, DueDate: dueIn(0)},
		{ID: 2, Priority: models.PriorityNormal, DueDate: dueIn(1)},
		{ID: 3, Priority: models.PriorityNormal, DueDate: dueIn(2)},
		{ID: 4, Priority: models.PriorityHigh},
		{ID: 5, Priority: models.PriorityLow, DueDate: dueIn(5)},
		{ID: 6, Priority: models.PriorityLow, DueDate: dueIn(6)},
	}

	assert.Equal(t, []uint{1, 2, 5}, ids(Select(ModeMixed, tasks, today)))
}

func TestSelect_HighModeKeepsOverdueAndUndated(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Priority: models.PriorityHigh},
		{ID: 2, Priority: models.PriorityHigh, DueDate: dueIn(-2)},
		{ID: 3, Priority: models.PriorityHigh, DueDate: dueIn(4)},
		{ID: 4, Priority: models.PriorityNormal, DueDate: dueIn(0)},
		{ID: 5, Priority: models.PriorityHigh, DueDate: dueIn(1)},
		{ID: 6, Priority: models.PriorityHigh, DueDate: dueIn(0)},
	}
	models.SortTasks(tasks)

	assert.Equal(t, []uint{2, 6, 5, 3}, ids(Select(ModeHigh, tasks, today)))
}

func TestSelect_SinglePriorityModes(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Priority: models.PriorityLow},
		{ID: 2, Priority: models.PriorityNormal},
		{ID: 3, Priority: models.PriorityLow, DueDate: dueIn(-7)},
	}

	assert.Equal(t, []uint{2}, ids(Select(ModeNormal, tasks, today)))
	assert.Equal(t, []uint{1, 3}, ids(Select(ModeLow, tasks, today)))
	assert.Empty(t, Select(ModeHigh, tasks, today))
}

func TestSelect_InvalidModeFallsBackToMixed(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Priority: models.PriorityHigh},
		{ID: 2, Priority: models.PriorityHigh, DueDate: dueIn(0)},
	}

	assert.Equal(t, []uint{2}, ids(Select(Mode(7), tasks, today)))
}
