package plans

import "time"

type ItemStatus string

const (
	StatusPending   ItemStatus = "pending"
	StatusCompleted ItemStatus = "completed"
	StatusSkipped   ItemStatus = "skipped"
)

// resolved statuses are the only ones ever written. Pending is the implicit
// default of an absent row, not a recorded transition.
func (s ItemStatus) Resolved() bool {
	return s == StatusCompleted || s == StatusSkipped
}

// ProgressSession tracks where a user is within one plan generation. One
// session per (user, kind, generation); current day is server-authoritative,
// clients reconcile against it and never overwrite it.
type ProgressSession struct {
	ID           int       `json:"id"`
	UserID       string    `json:"userId"`
	Kind         PlanKind  `json:"kind"`
	GenerationID string    `json:"generationId"`
	CurrentDay   DayLabel  `json:"currentDay"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ItemProgress is the recorded status of one plan item within a session.
// Exactly one row per (session, item), upserted, never deleted.
type ItemProgress struct {
	SessionID int        `json:"sessionId"`
	UserID    string     `json:"userId"`
	ItemID    string     `json:"itemId"`
	Status    ItemStatus `json:"status"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type AdvanceStatus string

const (
	AdvanceStatusAdvanced  AdvanceStatus = "advanced"
	AdvanceStatusCompleted AdvanceStatus = "completed"
)

// AdvanceResult reports the outcome of a day advancement: either the session
// moved to the next day, or it ran past the last day and completed.
type AdvanceResult struct {
	Status     AdvanceStatus `json:"status"`
	CurrentDay DayLabel      `json:"currentDay,omitempty"`
}

// DayView is one plan day together with the item statuses of the session.
// Days before the session's current day are served read-only.
type DayView struct {
	Day      PlanDay               `json:"day"`
	Statuses map[string]ItemStatus `json:"statuses"`
	ReadOnly bool                  `json:"readOnly"`
}
