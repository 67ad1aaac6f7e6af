package domain

import "time"

// Severity уровень уведомления
type Severity string

const (
	SeveritySuccess Severity = "SUCCESS"
	SeverityError   Severity = "ERROR"
)

// IsValid returns true if the severity is known
func (s Severity) IsValid() bool {
	return s == SeveritySuccess || s == SeverityError
}

// Notification a transient user-facing status message with bounded lifetime
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
	ExpiresAt time.Time
}
