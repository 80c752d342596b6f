// Package coach produces the financial coaching analysis via the Gemini API.
package coach

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"minhafinanca/internal/model"
)

// DefaultModel is the Gemini model used for the coaching analysis.
const DefaultModel = "gemini-3-flash-preview"

// RetryMessage is the user-facing text shown when an analysis fails.
const RetryMessage = "Falha ao analisar as finanças. Tente novamente mais tarde."

var (
	// ErrMissingAPIKey indicates no Gemini API key is configured.
	ErrMissingAPIKey = errors.New("coach: missing Gemini API key")
	// ErrAnalysisFailed indicates the model call or its response handling failed.
	ErrAnalysisFailed = errors.New("coach: analysis failed")
)

// Client calls the Gemini API to generate a financial analysis.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient creates a Gemini-backed coach. An empty model name selects
// DefaultModel.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("coach: creating genai client: %w", err)
	}

	return &Client{genai: gc, model: modelName}, nil
}

// Analyze sends the budget scenario to the model and decodes the structured
// response. Any failure is wrapped in ErrAnalysisFailed so callers can show
// RetryMessage without inspecting the cause.
func (c *Client) Analyze(ctx context.Context, income int64, expenses []model.Expense) (*model.Analysis, error) {
	prompt := buildPrompt(income, expenses)

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema(),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("%w: generating content: %v", ErrAnalysisFailed, err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("%w: empty response from model", ErrAnalysisFailed)
	}

	analysis, err := decodeAnalysis(raw)
	if err != nil {
		return nil, err
	}
	return analysis, nil
}
