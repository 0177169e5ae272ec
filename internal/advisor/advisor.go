// Package advisor asks Gemini for a short savings tip based on current card
// balances. The call fails soft: any error degrades to a fixed fallback
// message and never reaches application state.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kartasist/internal/model"

	"google.golang.org/genai"
)

const (
	requestTimeout = 10 * time.Second
	defaultModel   = "gemini-2.0-flash"

	// FallbackMessage is shown whenever the advisory service is unavailable.
	FallbackMessage = "The analysis service is busy right now, please try again later."
)

// Advice is the advisory result: generated text on success, the fallback
// message with Fallback set on any failure.
type Advice struct {
	Text     string
	Fallback bool
}

// generator abstracts the text-generation call for testing.
type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advisor produces savings tips from card balances.
type Advisor struct {
	gen generator
}

// New creates an advisor for the given API key. An empty key yields a
// disabled advisor that always answers with the fallback message.
func New(apiKey, modelName string) *Advisor {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return &Advisor{}
	}
	if modelName == "" {
		modelName = defaultModel
	}
	return &Advisor{gen: &geminiGenerator{apiKey: apiKey, model: modelName}}
}

// Enabled reports whether an API key is configured.
func (a *Advisor) Enabled() bool {
	return a.gen != nil
}

// Advise returns a savings tip for the given cards. It never returns an
// error: failures map to the fallback message.
func (a *Advisor) Advise(ctx context.Context, cards []model.Card) Advice {
	if a.gen == nil || len(cards) == 0 {
		return Advice{Text: FallbackMessage, Fallback: true}
	}

	prompt := buildPrompt(cards)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	text, err := a.gen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		return Advice{Text: FallbackMessage, Fallback: true}
	}
	return Advice{Text: strings.TrimSpace(text)}
}

// buildPrompt renders the one-line balance summary per card plus the task
// instruction.
func buildPrompt(cards []model.Card) string {
	summaries := make([]string, 0, len(cards))
	for _, c := range cards {
		summaries = append(summaries, fmt.Sprintf("%s: %.2f owed, %.2f limit available",
			c.Name, c.UsedAmount, c.Remaining()))
	}
	return "Looking at the following credit card balances, give the user a " +
		"friendly two-sentence savings tip: " + strings.Join(summaries, ", ")
}

// geminiGenerator calls the Gemini API.
type geminiGenerator struct {
	apiKey string
	model  string
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("advisor: create client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("advisor: generate content: %w", err)
	}
	return resp.Text(), nil
}
