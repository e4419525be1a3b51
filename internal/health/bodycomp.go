package health

import (
	"fmt"
	"math"
)

type BMICategory string

const (
	BMISevereThinness   BMICategory = "severe_thinness"
	BMIModerateThinness BMICategory = "moderate_thinness"
	BMIMildThinness     BMICategory = "mild_thinness"
	BMINormal           BMICategory = "normal"
	BMIOverweight       BMICategory = "overweight"
	BMIObese1           BMICategory = "obese_1"
	BMIObese2           BMICategory = "obese_2"
	BMIObese3           BMICategory = "obese_3"
)

// bmiBands are upper-bound exclusive and ordered; the last band is open-ended.
var bmiBands = []struct {
	upperBound float64
	category   BMICategory
}{
	{16, BMISevereThinness},
	{17, BMIModerateThinness},
	{18.5, BMIMildThinness},
	{25, BMINormal},
	{30, BMIOverweight},
	{35, BMIObese1},
	{40, BMIObese2},
	{math.Inf(1), BMIObese3},
}

const (
	minBodyFatPct = 3
	maxBodyFatPct = 60
)

type BMIResult struct {
	Value    float64     `json:"value"`
	Category BMICategory `json:"category"`
}

type BodyFatResult struct {
	Pct        float64 `json:"pct"`
	FatMassKg  float64 `json:"fatMassKg"`
	LeanMassKg float64 `json:"leanMassKg"`
}

type PerfectWeightResult struct {
	WeightKg   float64 `json:"weightKg"`
	DeltaKg    float64 `json:"deltaKg"`
	AbsDeltaKg float64 `json:"absDeltaKg"`
	// ShouldLose is true when the actual weight is above the perfect weight.
	ShouldLose bool `json:"shouldLose"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BMI computes the body mass index for the given height and weight,
// rounded to two decimals, together with its category.
func BMI(heightCm, weightKg float64) (BMIResult, error) {
	if heightCm <= 0 {
		return BMIResult{}, fmt.Errorf("%w: height must be positive", ErrInvalidMeasurement)
	}
	if weightKg <= 0 {
		return BMIResult{}, fmt.Errorf("%w: weight must be positive", ErrInvalidMeasurement)
	}

	heightM := heightCm / 100
	bmi := round2(weightKg / (heightM * heightM))

	category, err := BMICategoryOf(bmi)
	if err != nil {
		return BMIResult{}, err
	}

	return BMIResult{
		Value:    bmi,
		Category: category,
	}, nil
}

func BMICategoryOf(bmi float64) (BMICategory, error) {
	for _, band := range bmiBands {
		if bmi < band.upperBound {
			return band.category, nil
		}
	}
	return "", fmt.Errorf("%w: bmi %f", ErrUnrecognizedCategory, bmi)
}

// BodyFat estimates body fat percent via the US Navy circumference method.
// The percent is clamped to [3, 60] to reject out-of-physiological-range
// results of otherwise valid inputs.
func BodyFat(heightCm float64, gender Gender, weightKg, neckCm, waistCm, hipCm float64) (BodyFatResult, error) {
	if heightCm <= 0 || weightKg <= 0 || neckCm <= 0 || waistCm <= 0 {
		return BodyFatResult{}, fmt.Errorf("%w: height, weight, neck and waist must be positive", ErrInvalidMeasurement)
	}

	var pct float64
	switch gender {
	case GenderMale:
		if waistCm-neckCm <= 0 {
			return BodyFatResult{}, fmt.Errorf("%w: waist must be greater than neck", ErrInvalidMeasurement)
		}
		pct = 86.01*math.Log10(waistCm-neckCm) - 70.041*math.Log10(heightCm) + 36.76
	case GenderFemale:
		if hipCm <= 0 {
			return BodyFatResult{}, fmt.Errorf("%w: hip circumference", ErrMissingInput)
		}
		if waistCm+hipCm-neckCm <= 0 {
			return BodyFatResult{}, fmt.Errorf("%w: waist + hip must be greater than neck", ErrInvalidMeasurement)
		}
		pct = 163.205*math.Log10(waistCm+hipCm-neckCm) - 97.684*math.Log10(heightCm) - 78.387
	default:
		return BodyFatResult{}, fmt.Errorf("%w: gender", ErrMissingInput)
	}

	pct = math.Max(minBodyFatPct, math.Min(maxBodyFatPct, pct))
	pct = round2(pct)

	fatMass := round2(weightKg * pct / 100)
	leanMass := round2(weightKg - fatMass)

	return BodyFatResult{
		Pct:        pct,
		FatMassKg:  fatMass,
		LeanMassKg: leanMass,
	}, nil
}

// PerfectWeight computes the Robinson formula ideal weight and the delta
// between the actual weight and it.
func PerfectWeight(heightCm float64, gender Gender, weightKg float64) (PerfectWeightResult, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return PerfectWeightResult{}, fmt.Errorf("%w: height and weight must be positive", ErrInvalidMeasurement)
	}

	inchesOverFiveFeet := heightCm/2.54 - 60
	if inchesOverFiveFeet < 0 {
		inchesOverFiveFeet = 0
	}

	var perfect float64
	switch gender {
	case GenderMale:
		perfect = 52 + 1.9*inchesOverFiveFeet
	case GenderFemale:
		perfect = 49 + 1.7*inchesOverFiveFeet
	default:
		return PerfectWeightResult{}, fmt.Errorf("%w: gender", ErrMissingInput)
	}

	perfect = round2(perfect)
	delta := round2(weightKg - perfect)

	return PerfectWeightResult{
		WeightKg:   perfect,
		DeltaKg:    delta,
		AbsDeltaKg: math.Abs(delta),
		ShouldLose: delta > 0,
	}, nil
}
