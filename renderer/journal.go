package renderer

import (
	"sort"
	"strings"

	"github.com/ovz/kassa"
)

// journalEntry is one row of the interleaved journal, sale or expense.
type journalEntry struct {
	timestamp kassa.Millis
	sale      *kassa.SaleRecord
	expense   *kassa.ExpenseRecord
}

// JournalMarkdown generates the interleaved operation journal for the open
// shift, most recent first. Voided records are excluded.
func JournalMarkdown(sales []kassa.SaleRecord, expenses []kassa.ExpenseRecord) string {
	entries := make([]journalEntry, 0, len(sales)+len(expenses))
	for i := range sales {
		entries = append(entries, journalEntry{timestamp: sales[i].Timestamp, sale: &sales[i]})
	}
	for i := range expenses {
		entries = append(entries, journalEntry{timestamp: expenses[i].Timestamp, expense: &expenses[i]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].timestamp > entries[j].timestamp })

	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("# Журнал операций\n\n")
	if len(entries) == 0 {
		r.Printf("Операций нет.\n")
		return r.String()
	}

	r.Printf("| Время | Тип | Описание | Сумма | ID |\n")
	r.Printf("|:---|:---|:---|---:|:---|\n")
	for _, e := range entries {
		if e.sale != nil {
			r.Printf("| %s | ПРОДАЖА | %s (%s) | %s | %s |\n",
				e.timestamp, itemsLine(e.sale.Items), e.sale.Payment, Signed(e.sale.Total, true), e.sale.ID)
		} else {
			r.Printf("| %s | РАСХОД | %s: %s | %s | %s |\n",
				e.timestamp, e.expense.Category, e.expense.Description, Signed(e.expense.Amount, false), e.expense.ID)
		}
	}
	return r.String()
}

// ShiftsMarkdown generates the shift archive report, most recent first.
func ShiftsMarkdown(reports []kassa.ShiftReport) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("# Архив смен\n\n")
	if len(reports) == 0 {
		r.Printf("Закрытых смен нет.\n")
		return r.String()
	}

	r.Printf("| Начало | Конец | Выручка | Расходы | Прибыль | Чеков |\n")
	r.Printf("|:---|:---|---:|---:|---:|---:|\n")
	for _, report := range reports {
		r.Printf("| %s | %s | %s | %s | %s | %d |\n",
			report.StartTime, report.EndTime,
			RUB(report.Revenue), RUB(report.Expenses), RUB(report.Profit),
			report.SaleCount)
	}
	return r.String()
}
