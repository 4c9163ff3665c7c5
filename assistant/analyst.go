package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/ovz/kassa"
)

const analystPrompt = `
You are a Brutally Honest & Strategic Business Analyst for a Doner Kebab business.

REAL-TIME DATA (JSON):
%s

USER QUERY: "%s"

INSTRUCTIONS:
1. Analyze the provided JSON data (sales, expenses, timestamps).
2. Be EXTREMELY CONCISE. No fluff.
3. Use Bullet Points.
4. Provide specific numbers (e.g., "Profit is X", "Margin is Y%%").
5. Suggest immediate actions.
6. Language: Russian.
7. Tone: Professional, Direct, "Wall Street" style.

Example Output:
* 📉 **Margin Low**: Food cost is 45%% of revenue. Target 30%%.
* 💰 **Revenue**: 15,000 RUB today.
* 💡 **Action**: Increase price of "Shawarma XL" by 20 RUB.
`

// Advise asks the analyst model a free-text business question over the
// given history. The analyst degrades to a user-facing message instead of
// an error: an advice channel that crashes helps nobody mid-shift.
func (a *Assistant) Advise(ctx context.Context, historyJSON, query string) string {
	prompt := fmt.Sprintf(analystPrompt, historyJSON, query)

	resp, err := a.client.Models.GenerateContent(ctx, flashModel, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("analyst call failed: %v", err)
		if strings.Contains(err.Error(), "403") {
			return "Ошибка доступа (403). Убедитесь, что API ключ активен."
		}
		return "Ошибка связи с аналитическим центром."
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return "Анализ невозможен."
}

// HistoryJSON serializes the full ledger history, voided records included,
// as the analyst's real-time data payload.
func HistoryJSON(l *kassa.Ledger) string {
	var history struct {
		Sales    []kassa.SaleRecord    `json:"sales"`
		Expenses []kassa.ExpenseRecord `json:"expenses"`
	}
	for s := range l.AllSales() {
		history.Sales = append(history.Sales, s)
	}
	for e := range l.AllExpenses() {
		history.Expenses = append(history.Expenses, e)
	}
	data, err := json.Marshal(history)
	if err != nil {
		return "{}"
	}
	return string(data)
}
