// Package assistant is the conversational collaborator at the pipeline
// boundary. It grounds an Anthropic call in the pipeline's output (top
// nutrient needs, symptoms, budget) and degrades to keyword-matched canned
// responses when no API key is configured or the call fails. It consumes
// pipeline results; it never feeds back into them.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/eatwell/nourish-cli/internal/model"
	"github.com/eatwell/nourish-cli/pkg/anthropic"
)

const systemPrompt = `You are a friendly, helpful nutrition assistant for EatWell, an app focused on health equity. Your role is to:

1. Explain health and nutrition concepts in simple, plain language that anyone can understand
2. Help users understand their lab results, symptoms, and nutrient needs
3. Provide food-based recommendations for health concerns
4. Be especially helpful to people with low health literacy - avoid jargon, use examples
5. Be sensitive to budget constraints and food access challenges
6. Focus on practical, actionable advice

Always be encouraging and non-judgmental. Meet people where they are.`

// Assistant answers free-form questions about a pipeline result.
type Assistant struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// New returns an Assistant. A nil client disables the model call and every
// answer comes from the canned-response fallback.
func New(client anthropic.Client, modelID string, maxTokens int64) *Assistant {
	return &Assistant{client: client, model: modelID, maxTokens: maxTokens}
}

// BuildContext renders the grounding block appended to the system prompt:
// weekly budget, benefit status, symptom list, and the top five nutrient
// needs.
func BuildContext(result model.PipelineResult) string {
	var b strings.Builder
	b.WriteString("\n\nCurrent user context:\n")
	fmt.Fprintf(&b, "- Budget: $%.2f/week\n", result.Profile.Financials.WeeklyBudget)
	snap := "No"
	if result.Profile.Financials.SNAPStatus {
		snap = "Yes"
	}
	fmt.Fprintf(&b, "- SNAP: %s\n", snap)

	if len(result.Profile.Medical.CurrentSymptoms) > 0 {
		fmt.Fprintf(&b, "- Symptoms: %s\n", strings.Join(result.Profile.Medical.CurrentSymptoms, ", "))
	}

	if len(result.Needs.Needs) > 0 {
		top := result.Needs.TopPriorities(5)
		names := make([]string, len(top))
		for i, n := range top {
			names[i] = n.Nutrient
		}
		fmt.Fprintf(&b, "- Top nutrient needs: %s\n", strings.Join(names, ", "))
	}
	return b.String()
}

// Respond answers a user message, preferring the model and falling back to
// canned responses on any failure.
func (a *Assistant) Respond(ctx context.Context, result model.PipelineResult, message string) string {
	if a.client != nil {
		resp, err := a.client.CreateMessage(ctx, anthropic.MessageRequest{
			Model:     a.model,
			MaxTokens: a.maxTokens,
			System:    systemPrompt + BuildContext(result),
			Messages:  []anthropic.Message{{Role: "user", Content: message}},
		})
		if err == nil {
			resp.Usage.LogUsage(a.model)
			return resp.Text()
		}
		zap.L().Warn("assistant model call failed, using canned response", zap.Error(err))
	}

	return CannedResponse(result, message)
}
