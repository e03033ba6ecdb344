package advisor

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// Request carries the numbers a recommendation is generated from.
type Request struct {
	Total       decimal.Decimal
	Savings     decimal.Decimal
	Necessities decimal.Decimal
	Wants       decimal.Decimal
	Investments decimal.Decimal
	Balance     decimal.Decimal
	Currency    string
}

// Advisor produces a short natural-language note on a budget allocation. It
// is advisory only: callers persist the allocation whether or not a
// recommendation could be generated.
type Advisor interface {
	Recommend(ctx context.Context, req Request) (string, error)
}

// GenaiAdvisor asks Gemini for the recommendation text.
type GenaiAdvisor struct {
	apiKey string
	model  string
}

func NewGenaiAdvisor(apiKey, model string) *GenaiAdvisor {
	return &GenaiAdvisor{apiKey: apiKey, model: model}
}

func (g *GenaiAdvisor) Recommend(ctx context.Context, req Request) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: BuildPrompt(req)},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// BuildPrompt renders the advisor prompt. Exported so tests can pin the
// format the model is instructed with.
func BuildPrompt(req Request) string {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	return "You are a personal finance assistant.\n\n" +
		"A user allocated a " + currency + " budget as follows:\n" +
		fmt.Sprintf("- total: %s\n", req.Total.StringFixed(2)) +
		fmt.Sprintf("- savings: %s\n", req.Savings.StringFixed(2)) +
		fmt.Sprintf("- necessities: %s\n", req.Necessities.StringFixed(2)) +
		fmt.Sprintf("- wants: %s\n", req.Wants.StringFixed(2)) +
		fmt.Sprintf("- investments: %s\n", req.Investments.StringFixed(2)) +
		fmt.Sprintf("Their current account balance is %s.\n\n", req.Balance.StringFixed(2)) +
		"In at most three sentences of plain text, comment on whether this split " +
		"is sustainable and suggest one concrete improvement. " +
		"Do not use Markdown or bullet points."
}
