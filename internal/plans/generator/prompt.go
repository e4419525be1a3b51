package generator

import (
	"fmt"
	"strings"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/plans"
)

// BuildPlanPrompt renders the strict-JSON instruction for one plan request.
// The model is told the exact schema and nothing else, every deviation is
// rejected by the parser.
func BuildPlanPrompt(req plans.PlanRequest) string {
	var b strings.Builder

	b.WriteString(`You are a fitness and nutrition plan generator.

Your task:
- Produce a plan as STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO comments.
- NO extra text.

Required JSON schema:
{
  "days": [
    {
      "items": [
        {
          "name": "string",
          "description": "string",
          "amount": "string"
        }
      ]
    }
  ]
}

`)

	switch req.Kind {
	case "meal":
		fmt.Fprintf(&b, "Generate a nutrition plan for %d days.\n", req.Days)
		fmt.Fprintf(&b, "Daily target: %d kcal, %dg protein, %dg fats, %dg carbs.\n",
			req.Calories, req.ProteinG, req.FatsG, req.CarbsG)
		b.WriteString("Each day must contain 4 to 6 meals, \"amount\" is the portion size in grams.\n")
	default:
		fmt.Fprintf(&b, "Generate a workout plan for %d days.\n", req.Days)
		b.WriteString("Each day must contain 4 to 8 exercises, \"amount\" is the sets and reps scheme, e.g. \"4x12\".\n")
	}

	fmt.Fprintf(&b, "The plan must fit the goal: %s.\n", req.Goal)
	if len(req.Preferences) > 0 {
		fmt.Fprintf(&b, "Respect these preferences: %s.\n", strings.Join(req.Preferences, ", "))
	}
	b.WriteString("Item names and descriptions must be in Bulgarian.\n")

	return b.String()
}
