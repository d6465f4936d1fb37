package models

import (
	"sort"
	"time"
)

// MaxDescriptionLength bounds Task.Description after trimming.
const MaxDescriptionLength = 100

// Priority represents how urgent a task is
type Priority string

const (
	PriorityLow    Priority = "niedrig"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "hoch"
)

// Priorities lists all priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityNormal, PriorityHigh}

// ParsePriority converts form input to a Priority. Unknown values become PriorityNormal.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return Priority(s)
	default:
		return PriorityNormal
	}
}

// Rank orders priorities: high > normal > low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	default:
		return 0
	}
}

// Status represents the lifecycle state of a task
type Status string

const (
	StatusOpen      Status = "Offen"
	StatusDone      Status = "Erledigt"
	StatusDiscarded Status = "Verworfen"
)

// Statuses lists all statuses in display order.
var Statuses = []Status{StatusOpen, StatusDone, StatusDiscarded}

// LookupStatus reports whether s names a valid status.
func LookupStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusOpen, StatusDone, StatusDiscarded:
		return Status(s), true
	default:
		return "", false
	}
}

// ParseStatus converts form input to a Status. Unknown values become StatusOpen.
func ParseStatus(s string) Status {
	if status, ok := LookupStatus(s); ok {
		return status
	}
	return StatusOpen
}

type Task struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string    `gorm:"type:varchar(100);not null" json:"description"`
	DueDate     *Date     `gorm:"type:date" json:"due_date,omitempty"`
	Priority    Priority  `gorm:"type:varchar(10);not null;default:'normal'" json:"priority"`
	Details     string    `gorm:"type:text;not null;default:''" json:"details"`
	Status      Status    `gorm:"type:varchar(10);not null;default:'Offen'" json:"status"`
	CreatorID   uint      `gorm:"not null;index" json:"creator_id"`
	AssigneeID  uint      `gorm:"not null;index" json:"assignee_id"`
	Creator     User      `gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT;" json:"creator"`
	Assignee    User      `gorm:"foreignKey:AssigneeID;constraint:OnDelete:RESTRICT;" json:"assignee"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// IsOverdue reports whether the task was due before today.
func (t *Task) IsOverdue(today Date) bool {
	return t.DueDate != nil && t.DueDate.Before(today)
}

// SortTasks orders tasks for display: dated before undated, earliest due
// date first, then higher priority, then newest first.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return taskLess(&tasks[i], &tasks[j])
	})
}

func taskLess(a, b *Task) bool {
	if (a.DueDate == nil) != (b.DueDate == nil) {
		return a.DueDate != nil
	}
	if a.DueDate != nil {
		if c := a.DueDate.Compare(*b.DueDate); c != 0 {
			return c < 0
		}
	}
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return ra > rb
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
