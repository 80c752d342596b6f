package coach

import (
	"errors"
	"strings"
	"testing"

	"minhafinanca/internal/model"
)

func TestBuildPrompt(t *testing.T) {
	expenses := []model.Expense{
		{Category: "Mercado", Amount: 120000},
		{Category: "Transporte", Amount: 50000},
	}
	got := buildPrompt(300000, expenses)

	for _, want := range []string{
		"Coach Financeiro",
		"Renda Mensal: R$ 3.000,00",
		"Mercado: R$ 1.200,00",
		"Transporte: R$ 500,00",
		"Saldo Atual: R$ 1.300,00",
		"3 metas acionáveis",
		"formato JSON",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("buildPrompt() missing %q", want)
		}
	}
}

func TestBuildPromptNegativeBalance(t *testing.T) {
	got := buildPrompt(100000, []model.Expense{{Category: "Lazer", Amount: 150000}})
	if !strings.Contains(got, "Saldo Atual: -R$ 500,00") {
		t.Errorf("buildPrompt() missing negative balance, got:\n%s", got)
	}
}

func TestDecodeAnalysis(t *testing.T) {
	raw := `{
		"quickAnalysis": "Cenário estável",
		"alert": "Gastos altos com lazer",
		"actionPlan": ["Corte 10% do lazer", "Monte uma reserva", "Revise assinaturas"],
		"goldenTip": "Pague-se primeiro"
	}`

	a, err := decodeAnalysis(raw)
	if err != nil {
		t.Fatalf("decodeAnalysis() error = %v", err)
	}
	if a.QuickAnalysis != "Cenário estável" {
		t.Errorf("QuickAnalysis = %q", a.QuickAnalysis)
	}
	if len(a.ActionPlan) != 3 {
		t.Errorf("len(ActionPlan) = %d, want 3", len(a.ActionPlan))
	}
}

func TestDecodeAnalysisFenced(t *testing.T) {
	raw := "```json\n" +
		`{"quickAnalysis": "ok", "alert": "a", "actionPlan": ["p1"], "goldenTip": "t"}` +
		"\n```"

	a, err := decodeAnalysis(raw)
	if err != nil {
		t.Fatalf("decodeAnalysis() fenced error = %v", err)
	}
	if a.GoldenTip != "t" {
		t.Errorf("GoldenTip = %q, want t", a.GoldenTip)
	}
}

func TestDecodeAnalysisIncomplete(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing actionPlan", `{"quickAnalysis": "ok", "alert": "a", "goldenTip": "t"}`},
		{"empty object", `{}`},
		{"not json", `sem dados`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodeAnalysis(tc.raw); !errors.Is(err, ErrAnalysisFailed) {
				t.Errorf("decodeAnalysis(%q) error = %v, want ErrAnalysisFailed", tc.raw, err)
			}
		})
	}
}

func TestCleanModelJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Aqui está: {\"a\": 1} obrigado", `{"a": 1}`},
	}
	for _, tc := range cases {
		if got := cleanModelJSON(tc.in); got != tc.want {
			t.Errorf("cleanModelJSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
