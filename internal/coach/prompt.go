package coach

import (
	"strings"

	"minhafinanca/internal/model"
	"minhafinanca/internal/money"
)

// buildPrompt renders the coaching scenario in Portuguese. The persona and
// the five rules steer the model toward short, actionable advice.
func buildPrompt(income int64, expenses []model.Expense) string {
	var total int64
	items := make([]string, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, e.Category+": "+money.Format(e.Amount))
		total += e.Amount
	}
	balance := income - total

	var b strings.Builder
	b.WriteString("Atue como um Especialista em Finanças Pessoais (Coach Financeiro).\n")
	b.WriteString("Analise o seguinte cenário:\n")
	b.WriteString("Renda Mensal: " + money.Format(income) + "\n")
	b.WriteString("Gastos: " + strings.Join(items, ", ") + "\n")
	b.WriteString("Saldo Atual: " + money.Format(balance) + "\n\n")
	b.WriteString("Siga rigorosamente estas regras:\n")
	b.WriteString("1. Não peça dados sensíveis.\n")
	b.WriteString("2. Identifique padrões de gastos excessivos.\n")
	b.WriteString("3. Sugira 3 metas acionáveis para o próximo mês.\n")
	b.WriteString("4. Mantenha um tom encorajador, profissional e direto ao ponto.\n")
	b.WriteString("5. Se o saldo for positivo, sugira opções de reserva de emergência. Se for negativo, sugira cortes prioritários.\n\n")
	b.WriteString("Responda obrigatoriamente no formato JSON solicitado.\n")
	return b.String()
}
