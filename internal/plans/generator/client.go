package generator

import (
	"context"
	"fmt"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/plans"
)

// Client produces the raw strict-JSON plan payload for a request. The plan
// engine never talks to it directly, it only consumes the parsed immutable
// generation.
type Client interface {
	GeneratePlan(ctx context.Context, req plans.PlanRequest) (string, error)
}

// Generator asks a client for a plan and parses the strict-JSON payload into
// an immutable generation: day labels assigned in order from day 1, every
// item given a fresh id. The result is validated before it is handed to
// persistence, a malformed model response never becomes a generation.
type Generator struct {
	client Client
}

func NewGenerator(client Client) *Generator {
	return &Generator{
		client: client,
	}
}

func (g *Generator) GeneratePlan(ctx context.Context, req plans.PlanRequest) (*plans.PlanGeneration, error) {
	rawJSON, err := g.client.GeneratePlan(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}
	return parsePlan(rawJSON, req)
}
