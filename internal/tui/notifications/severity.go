package notifications

// Severity represents the severity level of a status message
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)
