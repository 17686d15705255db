package complaint

import "time"

// Status represents the workflow state of a complaint. Transitions are
// unconstrained: any of the three values may be set at any time.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusStarted    Status = "STARTED"
	StatusComplete   Status = "COMPLETE"
)

// Priority represents the urgency of a complaint.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
)

// Complaint represents a maintenance issue filed by a resident.
type Complaint struct {
	ID           int64      `json:"id"`
	ResidentID   int64      `json:"resident_id"`
	Subject      string     `json:"subject"`
	Description  string     `json:"description"`
	Status       Status     `json:"status"`
	Priority     Priority   `json:"priority"`
	CreatedAtUTC time.Time  `json:"created_at_utc"`
	UpdatedAtUTC *time.Time `json:"updated_at_utc,omitempty"`
	LocationNote string     `json:"location_note,omitempty"`
	Attachments  []string   `json:"attachments,omitempty"`
}
