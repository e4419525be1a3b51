package health

import (
	"fmt"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Measurement is a single body measurement submission. Immutable once
// created; one per user per calendar day (enforced by the measurements
// table unique index on (user_id, created_at::date)).
type Measurement struct {
	ID            int           `json:"id"`
	UserID        string        `json:"userId"`
	HeightCm      float64       `json:"heightCm"`
	WeightKg      float64       `json:"weightKg"`
	Gender        Gender        `json:"gender"`
	Age           int           `json:"age"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	NeckCm        float64       `json:"neckCm"`
	WaistCm       float64       `json:"waistCm"`
	// HipCm is required for female body fat calculation, unused for male.
	HipCm     float64   `json:"hipCm,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m Measurement) Validate() error {
	if m.HeightCm <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidMeasurement)
	}
	if m.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidMeasurement)
	}
	if m.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidMeasurement)
	}
	if m.Gender != GenderMale && m.Gender != GenderFemale {
		return fmt.Errorf("%w: gender", ErrMissingInput)
	}
	switch m.ActivityLevel {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
	default:
		return fmt.Errorf("%w: activity level %q", ErrInvalidMeasurement, m.ActivityLevel)
	}
	if m.NeckCm <= 0 || m.WaistCm <= 0 {
		return fmt.Errorf("%w: neck and waist must be positive", ErrInvalidMeasurement)
	}
	if m.Gender == GenderFemale && m.HipCm <= 0 {
		return fmt.Errorf("%w: hip circumference", ErrMissingInput)
	}
	return nil
}
