package health

import "fmt"

type Goal string

const (
	GoalCut           Goal = "cut"
	GoalAggressiveCut Goal = "aggressive_cut"
	GoalLeanBulk      Goal = "lean_bulk"
	GoalDirtyBulk     Goal = "dirty_bulk"
	GoalRecomposition Goal = "recomposition"
	GoalMaintenance   Goal = "maintenance"
	GoalAesthetic     Goal = "aesthetic"
	GoalStrength      Goal = "strength"
)

var goalNames = map[Goal]string{
	GoalCut:           "Cut (fat loss)",
	GoalAggressiveCut: "Aggressive cut",
	GoalLeanBulk:      "Lean bulk",
	GoalDirtyBulk:     "Dirty bulk",
	GoalRecomposition: "Body recomposition",
	GoalMaintenance:   "Maintenance",
	GoalAesthetic:     "Aesthetic",
	GoalStrength:      "Strength",
}

func (g Goal) DisplayName() string {
	return goalNames[g]
}

type BodyFatCategory string

const (
	BodyFatCritical  BodyFatCategory = "critical"
	BodyFatEssential BodyFatCategory = "essential"
	BodyFatAthletes  BodyFatCategory = "athletes"
	BodyFatFitness   BodyFatCategory = "fitness"
	BodyFatAverage   BodyFatCategory = "average"
	BodyFatObese     BodyFatCategory = "obese"
)

// bodyFatBands are upper-bound exclusive per gender; anything below the first
// band is critical, anything at or above the last bound is obese.
var bodyFatBands = map[Gender][]struct {
	upperBound float64
	category   BodyFatCategory
}{
	GenderMale: {
		{2, BodyFatCritical},
		{6, BodyFatEssential},
		{14, BodyFatAthletes},
		{18, BodyFatFitness},
		{25, BodyFatAverage},
	},
	GenderFemale: {
		{10, BodyFatCritical},
		{14, BodyFatEssential},
		{21, BodyFatAthletes},
		{25, BodyFatFitness},
		{32, BodyFatAverage},
	},
}

func BodyFatCategoryOf(bodyFatPct float64, gender Gender) (BodyFatCategory, error) {
	bands, ok := bodyFatBands[gender]
	if !ok {
		return "", fmt.Errorf("%w: gender", ErrMissingInput)
	}
	for _, band := range bands {
		if bodyFatPct < band.upperBound {
			return band.category, nil
		}
	}
	return BodyFatObese, nil
}

type GoalRecommendation struct {
	Goal            Goal            `json:"goal"`
	GoalName        string          `json:"goalName"`
	BMICategory     BMICategory     `json:"bmiCategory"`
	BodyFatCategory BodyFatCategory `json:"bodyFatCategory"`
	Reasoning       string          `json:"reasoning"`
}

type recommendationInput struct {
	bmiCategory     BMICategory
	bodyFatCategory BodyFatCategory
}

// recommendationRules is an ordered decision table: rules are evaluated top
// to bottom and the first match wins. The ordering is part of the contract —
// critically low weight overrides any body fat signal, dangerously low body
// fat overrides any obesity signal, and only then the (bmi, body fat) pair
// is consulted.
var recommendationRules = []struct {
	matches   func(in recommendationInput) bool
	goal      Goal
	reasoning string
}{
	{
		matches: func(in recommendationInput) bool {
			return in.bmiCategory == BMISevereThinness || in.bmiCategory == BMIModerateThinness
		},
		goal:      GoalDirtyBulk,
		reasoning: "Critically low body weight. Gaining weight fast takes priority over body composition.",
	},
	{
		matches: func(in recommendationInput) bool {
			return in.bodyFatCategory == BodyFatCritical
		},
		goal:      GoalDirtyBulk,
		reasoning: "Dangerously low body fat. Restoring essential fat reserves takes priority.",
	},
	{
		matches: func(in recommendationInput) bool {
			return in.bmiCategory == BMIObese2 || in.bmiCategory == BMIObese3
		},
		goal:      GoalAggressiveCut,
		reasoning: "Severe obesity. An aggressive calorie deficit is needed to reduce health risks quickly.",
	},
	{
		matches: func(in recommendationInput) bool {
			return in.bmiCategory == BMIObese1
		},
		goal:      GoalCut,
		reasoning: "Obesity class I. A sustained moderate calorie deficit is the safest path down.",
	},
	{
		matches: func(in recommendationInput) bool {
			return in.bmiCategory == BMIMildThinness
		},
		goal:      GoalLeanBulk,
		reasoning: "Slightly underweight. A controlled surplus builds mass without excessive fat gain.",
	},
	{
		matches: func(in recommendationInput) bool {
			return in.bmiCategory == BMINormal &&
				(in.bodyFatCategory == BodyFatObese || in.bodyFatCategory == BodyFatAverage)
		},
		goal:      GoalRecomposition,
		reasoning: "Normal weight but elevated body fat. Recomposition trades fat for muscle at maintenance weight.",
	},
	{
		matches: func(in recommendationInput) bool {
			return in.bmiCategory == BMINormal &&
				(in.bodyFatCategory == BodyFatFitness || in.bodyFatCategory == BodyFatAthletes)
		},
		goal:      GoalMaintenance,
		reasoning: "Normal weight and lean. Maintaining the current balance preserves a healthy composition.",
	},
	{
		matches: func(in recommendationInput) bool {
			return in.bmiCategory == BMIOverweight &&
				(in.bodyFatCategory == BodyFatFitness || in.bodyFatCategory == BodyFatAthletes)
		},
		goal:      GoalMaintenance,
		reasoning: "Overweight by BMI but lean by body fat — the extra weight is muscle, not fat. Maintain.",
	},
	{
		matches: func(in recommendationInput) bool {
			return in.bmiCategory == BMIOverweight && in.bodyFatCategory == BodyFatAverage
		},
		goal:      GoalRecomposition,
		reasoning: "Moderately overweight with average body fat. Recomposition improves both numbers at once.",
	},
	{
		matches: func(in recommendationInput) bool {
			return in.bmiCategory == BMIOverweight && in.bodyFatCategory == BodyFatObese
		},
		goal:      GoalCut,
		reasoning: "Overweight with high body fat. A calorie deficit is the most effective first step.",
	},
}

const fallbackReasoning = "No specific rule applies. Recomposition is the safe default for mixed signals."

// Recommend maps a BMI value and body fat percent to a fitness goal via the
// ordered decision table. Pure: same inputs always produce the same output.
func Recommend(bmi, bodyFatPct float64, gender Gender) (GoalRecommendation, error) {
	bmiCategory, err := BMICategoryOf(bmi)
	if err != nil {
		return GoalRecommendation{}, err
	}
	bodyFatCategory, err := BodyFatCategoryOf(bodyFatPct, gender)
	if err != nil {
		return GoalRecommendation{}, err
	}

	in := recommendationInput{
		bmiCategory:     bmiCategory,
		bodyFatCategory: bodyFatCategory,
	}

	for _, rule := range recommendationRules {
		if rule.matches(in) {
			return GoalRecommendation{
				Goal:            rule.goal,
				GoalName:        rule.goal.DisplayName(),
				BMICategory:     bmiCategory,
				BodyFatCategory: bodyFatCategory,
				Reasoning:       rule.reasoning,
			}, nil
		}
	}

	return GoalRecommendation{
		Goal:            GoalRecomposition,
		GoalName:        GoalRecomposition.DisplayName(),
		BMICategory:     bmiCategory,
		BodyFatCategory: bodyFatCategory,
		Reasoning:       fallbackReasoning,
	}, nil
}
