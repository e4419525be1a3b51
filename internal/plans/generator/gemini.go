package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/plans"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var (
	ErrMissingAPIKey  = errors.New("missing gemini api key")
	ErrEmptyResponse  = errors.New("empty gemini response")
	ErrNonJSONOutput  = fmt.Errorf("gemini returned non-json output: %w", plans.ErrUnusablePlan)
	ErrGeminiAPIError = errors.New("gemini api error")
)

// GeminiClient talks to the Gemini generateContent endpoint. Outgoing
// requests are traced through the otel http transport.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   60 * time.Second,
		},
	}
}

func (g *GeminiClient) GeneratePlan(ctx context.Context, planReq plans.PlanRequest) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if planReq.Days < 1 {
		return "", fmt.Errorf("invalid plan length: %d days", planReq.Days)
	}

	prompt := BuildPlanPrompt(planReq)
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 8192,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Errorf("gemini api returned %d: %s", resp.StatusCode, raw)
		return "", fmt.Errorf("%w: status %d", ErrGeminiAPIError, resp.StatusCode)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	output := stripCodeFences(result.Candidates[0].Content.Parts[0].Text)
	if !json.Valid([]byte(output)) {
		return "", ErrNonJSONOutput
	}
	return output, nil
}

// stripCodeFences drops a leading ```json / trailing ``` pair some models
// wrap around the payload despite the instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
