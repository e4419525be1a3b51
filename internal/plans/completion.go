package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const (
	completedKeyPrefix = "mobilis-plan-completed||"
	completedIDsSetKey = "mobilis-plan-completed-ids"
)

// CompletionStore keeps the permanent per-generation completion flags in
// redis. Once set, a flag is never cleared, a completed generation stays
// completed.
type CompletionStore struct {
	redisClient *redis.Client
}

func NewCompletionStore(redisClient *redis.Client) *CompletionStore {
	return &CompletionStore{
		redisClient: redisClient,
	}
}

func (cs *CompletionStore) SetCompleted(ctx context.Context, generationID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.completion.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("generation.id", generationID))

	key := completedKeyPrefix + generationID
	if err := cs.redisClient.Set(ctx, key, 1, 0).Err(); err != nil {
		return fmt.Errorf("set completion flag: %w", err)
	}
	if err := cs.redisClient.SAdd(ctx, completedIDsSetKey, generationID).Err(); err != nil {
		return fmt.Errorf("add to completed set: %w", err)
	}
	return nil
}

func (cs *CompletionStore) IsCompleted(ctx context.Context, generationID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.completion.check")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("generation.id", generationID))

	key := completedKeyPrefix + generationID
	if err := cs.redisClient.Get(ctx, key).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get completion flag: %w", err)
	}
	return true, nil
}

// CompletedIDs lists all generations ever completed, used by cleanup jobs
// and admin views.
func (cs *CompletionStore) CompletedIDs(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.completion.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ids, err := cs.redisClient.SMembers(ctx, completedIDsSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list completed ids: %w", err)
	}
	return ids, nil
}
