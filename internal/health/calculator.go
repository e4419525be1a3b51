package health

import (
	"fmt"
	"time"
)

type BodyComposition struct {
	BMI            float64     `json:"bmi"`
	BMICategory    BMICategory `json:"bmiCategory"`
	BodyFatPct     float64     `json:"bodyFatPct"`
	BodyFatMassKg  float64     `json:"bodyFatMassKg"`
	LeanBodyMassKg float64     `json:"leanBodyMassKg"`
}

// UserMetrics is the full derived record for one measurement. It is persisted
// once per measurement and never updated in place — a new measurement creates
// a new row, forming an append-only time series for progress charts.
type UserMetrics struct {
	ID             int                 `json:"id"`
	UserID         string              `json:"userId"`
	MeasurementID  int                 `json:"measurementId"`
	Composition    BodyComposition     `json:"composition"`
	Recommendation GoalRecommendation  `json:"recommendation"`
	Energy         EnergyTargets       `json:"energy"`
	PerfectWeight  PerfectWeightResult `json:"perfectWeight"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// Calculator composes the body composition, goal recommendation and energy
// calculators into one metrics record. All stages are pure; the first error
// aborts the whole computation so no partial record can ever be produced.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Compute(m Measurement) (*UserMetrics, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validate measurement: %w", err)
	}

	bmi, err := BMI(m.HeightCm, m.WeightKg)
	if err != nil {
		return nil, fmt.Errorf("bmi: %w", err)
	}

	bodyFat, err := BodyFat(m.HeightCm, m.Gender, m.WeightKg, m.NeckCm, m.WaistCm, m.HipCm)
	if err != nil {
		return nil, fmt.Errorf("body fat: %w", err)
	}

	recommendation, err := Recommend(bmi.Value, bodyFat.Pct, m.Gender)
	if err != nil {
		return nil, fmt.Errorf("recommend goal: %w", err)
	}

	energy, err := EnergyTargetsFor(m, recommendation.Goal)
	if err != nil {
		return nil, fmt.Errorf("energy targets: %w", err)
	}

	perfectWeight, err := PerfectWeight(m.HeightCm, m.Gender, m.WeightKg)
	if err != nil {
		return nil, fmt.Errorf("perfect weight: %w", err)
	}

	return &UserMetrics{
		UserID: m.UserID,
		Composition: BodyComposition{
			BMI:            bmi.Value,
			BMICategory:    bmi.Category,
			BodyFatPct:     bodyFat.Pct,
			BodyFatMassKg:  bodyFat.FatMassKg,
			LeanBodyMassKg: bodyFat.LeanMassKg,
		},
		Recommendation: recommendation,
		Energy:         energy,
		PerfectWeight:  perfectWeight,
		CreatedAt:      m.CreatedAt,
	}, nil
}
