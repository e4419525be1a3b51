package health

import (
	"fmt"
	"math"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// goalCalorieDeltas are added to TDEE to get the daily calorie target.
var goalCalorieDeltas = map[Goal]int{
	GoalCut:           -500,
	GoalAggressiveCut: -750,
	GoalLeanBulk:      300,
	GoalDirtyBulk:     500,
	GoalRecomposition: -200,
	GoalMaintenance:   0,
	GoalAesthetic:     -300,
	GoalStrength:      200,
}

type macroSplit struct {
	proteinPct int
	fatsPct    int
	carbsPct   int
}

var goalMacroSplits = map[Goal]macroSplit{
	GoalCut:           {40, 25, 35},
	GoalAggressiveCut: {45, 20, 35},
	GoalLeanBulk:      {30, 25, 45},
	GoalDirtyBulk:     {25, 30, 45},
	GoalRecomposition: {40, 30, 30},
	GoalMaintenance:   {30, 30, 40},
	GoalAesthetic:     {40, 25, 35},
	GoalStrength:      {30, 25, 45},
}

const (
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarb    = 4
)

type Macros struct {
	ProteinG int `json:"proteinG"`
	FatsG    int `json:"fatsG"`
	CarbsG   int `json:"carbsG"`
}

type EnergyTargets struct {
	BMR          int    `json:"bmr"`
	TDEE         int    `json:"tdee"`
	GoalCalories int    `json:"goalCalories"`
	Macros       Macros `json:"macros"`
}

// BMR computes the basal metabolic rate via Mifflin–St Jeor. The real value
// is rounded to the nearest int only at this output boundary.
func BMR(weightKg, heightCm float64, age int, gender Gender) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, fmt.Errorf("%w: weight, height and age must be positive", ErrInvalidMeasurement)
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case GenderMale:
		bmr += 5
	case GenderFemale:
		bmr -= 161
	default:
		return 0, fmt.Errorf("%w: gender", ErrMissingInput)
	}

	return int(math.Round(bmr)), nil
}

// TDEE scales the BMR by the activity level multiplier.
func TDEE(bmr int, activityLevel ActivityLevel) (int, error) {
	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, fmt.Errorf("%w: activity level %q", ErrInvalidMeasurement, activityLevel)
	}
	return int(math.Round(float64(bmr) * multiplier)), nil
}

// GoalCalories applies the fixed per-goal delta to the TDEE.
func GoalCalories(tdee int, goal Goal) (int, error) {
	delta, ok := goalCalorieDeltas[goal]
	if !ok {
		return 0, fmt.Errorf("%w: goal %q", ErrUnrecognizedCategory, goal)
	}
	return tdee + delta, nil
}

// MacrosFor splits the calorie target into protein, fat and carb grams per
// the fixed per-goal percentages. Each macro is rounded independently, so
// the grams may add up to slightly more or less than the calorie target.
func MacrosFor(goalCalories int, goal Goal) (Macros, error) {
	split, ok := goalMacroSplits[goal]
	if !ok {
		return Macros{}, fmt.Errorf("%w: goal %q", ErrUnrecognizedCategory, goal)
	}

	calories := float64(goalCalories)
	return Macros{
		ProteinG: int(math.Round(calories * float64(split.proteinPct) / 100 / kcalPerGramProtein)),
		FatsG:    int(math.Round(calories * float64(split.fatsPct) / 100 / kcalPerGramFat)),
		CarbsG:   int(math.Round(calories * float64(split.carbsPct) / 100 / kcalPerGramCarb)),
	}, nil
}

// EnergyTargetsFor composes BMR, TDEE, goal calories and macros for a
// measurement and an already recommended goal.
func EnergyTargetsFor(m Measurement, goal Goal) (EnergyTargets, error) {
	bmr, err := BMR(m.WeightKg, m.HeightCm, m.Age, m.Gender)
	if err != nil {
		return EnergyTargets{}, fmt.Errorf("bmr: %w", err)
	}

	tdee, err := TDEE(bmr, m.ActivityLevel)
	if err != nil {
		return EnergyTargets{}, fmt.Errorf("tdee: %w", err)
	}

	goalCalories, err := GoalCalories(tdee, goal)
	if err != nil {
		return EnergyTargets{}, fmt.Errorf("goal calories: %w", err)
	}

	macros, err := MacrosFor(goalCalories, goal)
	if err != nil {
		return EnergyTargets{}, fmt.Errorf("macros: %w", err)
	}

	return EnergyTargets{
		BMR:          bmr,
		TDEE:         tdee,
		GoalCalories: goalCalories,
		Macros:       macros,
	}, nil
}
