package broker

import "strings"

const subjectPrefix = "reminder"

// SubjectFor maps an event type to the NATS subject it is published on,
// e.g. task.created -> reminder.task.created.
func SubjectFor(event EventType) string {
	return subjectPrefix + "." + strings.ToLower(string(event))
}
