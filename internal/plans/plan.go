package plans

import (
	"fmt"
	"time"
)

type PlanKind string

const (
	PlanKindMeal    PlanKind = "meal"
	PlanKindWorkout PlanKind = "workout"
)

func (k PlanKind) Valid() bool {
	return k == PlanKindMeal || k == PlanKindWorkout
}

// PlanItem is a single meal or exercise of a plan day.
type PlanItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Amount holds the portion for meals ("150g") or the
	// sets/reps scheme for exercises ("4x12").
	Amount string `json:"amount,omitempty"`
}

// PlanDay is an ordered list of items under one day label.
type PlanDay struct {
	Label DayLabel   `json:"label"`
	Items []PlanItem `json:"items"`
}

// PlanGeneration is an immutable bundle of ordered plan days, produced once
// by the generator and never mutated afterwards. Sessions and progress rows
// reference it by ID only.
type PlanGeneration struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Kind      PlanKind  `json:"kind"`
	Days      []PlanDay `json:"days"`
	CreatedAt time.Time `json:"createdAt"`
}

// MaxDay returns the label of the last day.
func (g *PlanGeneration) MaxDay() DayLabel {
	return DayLabel(len(g.Days))
}

// Day returns the plan day with the given label.
func (g *PlanGeneration) Day(label DayLabel) (*PlanDay, error) {
	if !label.Valid() || int(label) > len(g.Days) {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, label)
	}
	day := g.Days[int(label)-1]
	return &day, nil
}

// Validate checks the shape the engine relies on: at least one day, labels
// contiguous from 1, no day without items and no item without an id.
func (g *PlanGeneration) Validate() error {
	if !g.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrGenerationKindMissing, g.Kind)
	}
	if len(g.Days) == 0 {
		return ErrEmptyGeneration
	}
	for i, day := range g.Days {
		if day.Label != DayLabel(i+1) {
			return fmt.Errorf("%w: expected %s at position %d, got %s",
				ErrInvalidDayLabel, DayLabel(i+1), i, day.Label)
		}
		if len(day.Items) == 0 {
			return fmt.Errorf("day %s has no items", day.Label)
		}
		for _, item := range day.Items {
			if item.ID == "" {
				return fmt.Errorf("day %s has an item without an id", day.Label)
			}
		}
	}
	return nil
}
