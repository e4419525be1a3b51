package generator

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/plans"

	"github.com/google/uuid"
)

var ErrInvalidPlanJSON = fmt.Errorf("invalid plan json output: %w", plans.ErrUnusablePlan)

type rawPlan struct {
	Days []rawDay `json:"days"`
}

type rawDay struct {
	Items []rawItem `json:"items"`
}

type rawItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

func parsePlan(rawJSON string, req plans.PlanRequest) (*plans.PlanGeneration, error) {
	var raw rawPlan
	if err := json.Unmarshal([]byte(rawJSON), &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlanJSON, err)
	}
	if len(raw.Days) == 0 {
		return nil, fmt.Errorf("%w: no days", ErrInvalidPlanJSON)
	}

	generation := &plans.PlanGeneration{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Kind:      req.Kind,
		Days:      make([]plans.PlanDay, 0, len(raw.Days)),
		CreatedAt: time.Now(),
	}

	for i, day := range raw.Days {
		planDay := plans.PlanDay{
			Label: plans.DayLabel(i + 1),
			Items: make([]plans.PlanItem, 0, len(day.Items)),
		}
		for _, item := range day.Items {
			if item.Name == "" {
				return nil, fmt.Errorf("%w: item without a name on %s", ErrInvalidPlanJSON, planDay.Label)
			}
			planDay.Items = append(planDay.Items, plans.PlanItem{
				ID:          uuid.NewString(),
				Name:        item.Name,
				Description: item.Description,
				Amount:      item.Amount,
			})
		}
		generation.Days = append(generation.Days, planDay)
	}

	if err := generation.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlanJSON, err)
	}
	return generation, nil
}
