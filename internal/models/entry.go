package models

import "time"

// Entry is a submitted masked value
// Display text is always the rebuild of LogicalText under Mask and Placeholder
type Entry struct {
	ID          int       `json:"id"`
	Preset      string    `json:"preset"`
	Mask        string    `json:"mask"`
	Placeholder string    `json:"placeholder"`
	LogicalText string    `json:"logical_text"`
	DisplayText string    `json:"display_text"`
	Complete    bool      `json:"complete"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetID returns the entry ID (used by quiet CLI output)
func (e *Entry) GetID() int {
	return e.ID
}

// Status returns "complete" or "partial"
func (e *Entry) Status() string {
	if e.Complete {
		return StatusComplete
	}
	return StatusPartial
}

// Entry status labels
const (
	StatusComplete = "complete"
	StatusPartial  = "partial"
)
