package plans

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDayLabel       = errors.New("invalid day label")
	ErrInvalidStatus         = errors.New("invalid item status")
	ErrGenerationNotFound    = errors.New("plan generation not found")
	ErrSessionNotFound       = errors.New("progress session not found")
	ErrSessionCompleted      = errors.New("session already completed")
	ErrUnresolvedItems       = errors.New("unresolved items remain for the current day")
	ErrReadOnlyHistory       = errors.New("history view is read-only")
	ErrDayConflict           = errors.New("session day changed concurrently")
	ErrDayNotFound           = errors.New("plan day not found")
	ErrEmptyGeneration       = errors.New("plan generation has no days")
	ErrGenerationKindMissing = errors.New("plan generation kind missing or unknown")

	// ErrUnusablePlan marks generator output that never became a valid
	// generation: non-json model output, or json violating the plan schema.
	ErrUnusablePlan = errors.New("generator returned an unusable plan")
)

// MarkFailedError reports a failed progress write together with the last
// status the repo confirmed for the item, so the caller can roll its
// optimistic view back to the known-good value instead of guessing.
type MarkFailedError struct {
	ItemID        string
	LastConfirmed ItemStatus
	Err           error
}

func (e *MarkFailedError) Error() string {
	return fmt.Sprintf("mark item %s failed, last confirmed status %q: %s", e.ItemID, e.LastConfirmed, e.Err)
}

func (e *MarkFailedError) Unwrap() error {
	return e.Err
}
