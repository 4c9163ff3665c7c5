package renderer

import (
	"strings"

	"github.com/ovz/kassa"
)

// ProposalMarkdown renders a pending proposal as a receipt-style preview,
// so the operator can review exactly what will be written before
// confirming.
func ProposalMarkdown(p *kassa.Proposal) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("%s\n", p.Display())

	for _, a := range p.Actions() {
		switch v := a.(type) {
		case kassa.AddSale:
			r.Printf("\n**Продажа** (%s)\n\n", v.Payment)
			for _, item := range v.Items {
				r.Printf("- %s x%d — %s\n", item.Name, item.Quantity, RUB(item.Price*item.Quantity))
			}
			r.Printf("\nИтого: **%s**\n", RUB(v.Total))
		case kassa.AddExpense:
			r.Printf("\n**Расход** %s\n\n", RUB(v.Amount))
			r.Printf("- %s: %s\n", v.Category, v.Description)
			if v.Details != nil {
				if kind, qty := v.Details.Inventory(); kind != kassa.InventoryNone {
					r.Printf("- Приход на склад: %s x%d\n", inventoryLabels[kind], qty)
				}
			}
		}
	}
	return r.String()
}
