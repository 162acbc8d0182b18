package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/pillpal/pillpal-api/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const riskSystemPrompt = `You are a non-medical medication adherence assistant.

You receive a compact feature vector describing one patient's recent dosing behavior: 7-day adherence fraction, streak of perfect days, recent misses and snoozes, today's scheduled dose count, regimen complexity, time-of-day context, and caregiver acknowledgement activity. Base your conclusions only on the provided data.

Your goals:
- Estimate how likely the patient is to miss upcoming doses.
- Explain the estimate in one or two plain sentences.
- Give one concrete behavioral suggestion.

Rules:
- Do NOT provide medical advice, diagnoses, or dosage changes.
- Focus only on routines and reminders.
- Low adherence, recent misses, and heavy snoozing push risk up; long streaks push it down.

You must respond as strict JSON with exactly this shape:

{
  "score_0_100": 0-100 integer risk score,
  "bucket": "low" | "medium" | "high",
  "rationale": "one or two sentences grounded in the numbers",
  "suggestion": "one concrete, non-medical suggestion",
  "contributing_factors": ["feature names that drove the score, most significant first"]
}

No extra fields. No comments. No backticks.`

const riskUserPromptTemplate = `Here is JSON with the patient's current adherence feature vector.

- "adherence_7d" is the fraction of scheduled doses taken over the last 7 days.
- "streak_taken_days" counts trailing perfect-adherence days.
- "misses_48h" and "snoozes_24h" are recent short-window counts.
- "now_block" and "weekday" give the current time-of-day and weekday context.
- "complexity" is the number of active medications.
- "caregiver_ack_7d" counts caregiver alert acknowledgements this week.

JSON:

%s

Based on this data, respond in the required JSON format.`

const narrateSystemPrompt = `You are a non-medical medication adherence assistant writing a short insight card for a patient dashboard.

You receive the patient's adherence feature vector, a 7-day daily adherence series, and the time-of-day windows where they snooze most. Base everything only on the provided data.

Rules:
- Do NOT provide medical advice or mention diseases, doctors, or treatment.
- Be encouraging but honest; talk about routines, reminders, and caregiver support.
- Keep every line short enough for a mobile card.

You must respond as strict JSON with exactly this shape:

{
  "title": "short card title",
  "highlights": ["2-4 short bullet lines about the week's pattern"],
  "advice": "one piece of behavioral advice tied to the numbers",
  "next_best_action": "the single most useful next step"
}

No extra fields. No comments. No backticks.`

const narrateUserPromptTemplate = `Here is JSON describing this patient's week.

- "features" is the current adherence feature vector.
- "recent_days" is the last 7 days of adherence percentages, oldest first.
- "top_snooze_windows" ranks the time-of-day buckets they snooze in most.
- "summary" is a one-line numeric recap.

JSON:

%s

Based on this data, respond in the required JSON format.`

// RiskLLM is the interface for the external intelligent scorer and the
// narrative generator. Both calls are treated as unreliable: any error
// routes the caller to its deterministic fallback.
type RiskLLM interface {
	// ScoreRisk asks the model for a risk score from the feature vector.
	ScoreRisk(ctx context.Context, features *domain.FeatureVector) (*domain.RiskResult, error)
	// Narrate asks the model for the insight card narrative.
	Narrate(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.NarrativeOutput, error)
}

// OpenAIClient implements RiskLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string

	// Optional prompt overrides (loaded from Langfuse prompt management).
	riskPrompt    string
	narratePrompt string
}

// NewOpenAIClient creates a new OpenAI client for risk scoring and narration.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// SetRiskPrompt overrides the built-in scorer system prompt.
func (c *OpenAIClient) SetRiskPrompt(prompt string) {
	if c != nil && prompt != "" {
		c.riskPrompt = prompt
	}
}

// SetNarratePrompt overrides the built-in narrator system prompt.
func (c *OpenAIClient) SetNarratePrompt(prompt string) {
	if c != nil && prompt != "" {
		c.narratePrompt = prompt
	}
}

// ScoreRisk calls OpenAI to score adherence risk from the feature vector.
func (c *OpenAIClient) ScoreRisk(ctx context.Context, features *domain.FeatureVector) (*domain.RiskResult, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	system := riskSystemPrompt
	if c.riskPrompt != "" {
		system = c.riskPrompt
	}

	content, err := c.complete(ctx, system, riskUserPromptTemplate, features)
	if err != nil {
		return nil, err
	}

	var result domain.RiskResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &result, nil
}

// Narrate calls OpenAI to generate the insight card narrative.
func (c *OpenAIClient) Narrate(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.NarrativeOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	system := narrateSystemPrompt
	if c.narratePrompt != "" {
		system = c.narratePrompt
	}

	content, err := c.complete(ctx, system, narrateUserPromptTemplate, narrativeCtx)
	if err != nil {
		return nil, err
	}

	var output domain.NarrativeOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}

func (c *OpenAIClient) complete(ctx context.Context, systemPrompt, userTemplate string, payload any) (string, error) {
	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userTemplate, string(payloadJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
