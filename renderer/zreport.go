package renderer

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/ovz/kassa"
)

//go:embed templates/*.html
var templates embed.FS

var (
	zreportTmpl      = template.Must(template.ParseFS(templates, "templates/zreport.html"))
	shiftJournalTmpl = template.Must(template.ParseFS(templates, "templates/shift_journal.html"))
)

// ZReportHTML renders a closed shift as a printable receipt-style Z-report.
func ZReportHTML(report kassa.ShiftReport) (string, error) {
	data := struct {
		Date, Start, End          string
		Revenue, Expenses, Profit int64
		SaleCount                 int
	}{
		Date:      report.EndTime.Time().Format("02.01.2006"),
		Start:     report.StartTime.String(),
		End:       report.EndTime.String(),
		Revenue:   report.Revenue,
		Expenses:  report.Expenses,
		Profit:    report.Profit,
		SaleCount: report.SaleCount,
	}
	var b strings.Builder
	if err := zreportTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("could not render z-report: %w", err)
	}
	return b.String(), nil
}

// journalRow is one printable row of the shift journal report.
type journalRow struct {
	Time        string
	Sale        bool
	Description string
	Amount      string
	timestamp   kassa.Millis
}

// ShiftJournalHTML renders the open shift's operations as a printable
// report with a summary grid and an interleaved operations table, most
// recent first.
func ShiftJournalHTML(sales []kassa.SaleRecord, expenses []kassa.ExpenseRecord, now kassa.Millis) (string, error) {
	var revenue, spent int64
	var rows []journalRow
	for _, s := range sales {
		revenue += s.Total
		rows = append(rows, journalRow{
			Time:        s.Timestamp.Time().Format("15:04:05"),
			Sale:        true,
			Description: itemsLine(s.Items),
			Amount:      fmt.Sprintf("+%d", s.Total),
			timestamp:   s.Timestamp,
		})
	}
	for _, e := range expenses {
		spent += e.Amount
		rows = append(rows, journalRow{
			Time:        e.Timestamp.Time().Format("15:04:05"),
			Description: fmt.Sprintf("%s: %s", e.Category, e.Description),
			Amount:      fmt.Sprintf("-%d", e.Amount),
			timestamp:   e.Timestamp,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].timestamp > rows[j].timestamp })

	data := struct {
		Date                      string
		Revenue, Expenses, Profit int64
		Rows                      []journalRow
	}{
		Date:     now.String(),
		Revenue:  revenue,
		Expenses: spent,
		Profit:   revenue - spent,
		Rows:     rows,
	}
	var b strings.Builder
	if err := shiftJournalTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("could not render shift journal: %w", err)
	}
	return b.String(), nil
}
