package coach

import (
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"minhafinanca/internal/model"
)

// analysisSchema constrains the model output to the four analysis fields.
func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"quickAnalysis": {
				Type:        genai.TypeString,
				Description: "Resumo do cenário atual",
			},
			"alert": {
				Type:        genai.TypeString,
				Description: "Onde o usuário está gastando demais",
			},
			"actionPlan": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "3 passos simples e acionáveis",
			},
			"goldenTip": {
				Type:        genai.TypeString,
				Description: "Uma dica financeira clássica relevante ao contexto",
			},
		},
		Required: []string{"quickAnalysis", "alert", "actionPlan", "goldenTip"},
	}
}

// decodeAnalysis parses the model response into an Analysis. The schema makes
// fences unlikely but models still emit them occasionally, so the raw text is
// cleaned first. A response missing required fields is treated as a failure.
func decodeAnalysis(raw string) (*model.Analysis, error) {
	clean := cleanModelJSON(raw)

	var a model.Analysis
	if err := json.Unmarshal([]byte(clean), &a); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling response: %v", ErrAnalysisFailed, err)
	}

	if a.QuickAnalysis == "" || a.Alert == "" || len(a.ActionPlan) == 0 || a.GoldenTip == "" {
		return nil, fmt.Errorf("%w: incomplete response", ErrAnalysisFailed)
	}
	return &a, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk, keeping only
// the outermost JSON object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
