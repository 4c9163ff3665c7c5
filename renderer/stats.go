package renderer

import (
	"sort"
	"strings"

	"github.com/ovz/kassa"
)

// inventoryLabels maps a tracked kind to its display name.
var inventoryLabels = map[kassa.InventoryType]string{
	kassa.InventoryLavash:     "Лаваш",
	kassa.InventoryBreadBig:   "Булка большая",
	kassa.InventoryBreadSmall: "Булка малая",
}

// StatsMarkdown generates the dashboard report for the open shift.
func StatsMarkdown(stats kassa.Stats, shiftStart kassa.Millis) string {
	r := &mdRenderer{Builder: &strings.Builder{}}

	r.Printf("# Текущая смена\n\n")
	r.Printf("Старт смены: %s\n\n", shiftStart)

	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Выручка | %s |\n", RUB(stats.Revenue))
	r.Printf("| Расходы | %s |\n", RUB(stats.Expenses))
	r.Printf("| Прибыль | %s |\n", RUB(stats.Profit))
	r.Printf("| Чеков | %d |\n\n", stats.SaleCount)

	if len(stats.Categories) > 0 {
		r.Printf("## Продажи по категориям\n\n")
		r.Printf("| Категория | Сумма |\n")
		r.Printf("|:---|---:|\n")
		for _, cat := range sortedCategories(stats.Categories) {
			name := cat
			if name == "" {
				name = "без категории"
			}
			r.Printf("| %s | %s |\n", name, RUB(stats.Categories[cat]))
		}
		r.Printf("\n")
	}

	r.Printf("## Остатки (смена)\n\n")
	r.Printf("| Позиция | Закуплено | Израсходовано | Остаток |\n")
	r.Printf("|:---|---:|---:|---:|\n")
	for _, kind := range kassa.InventoryTypes {
		m := stats.Inventory[kind]
		r.Printf("| %s | %d | %d | %d |\n", inventoryLabels[kind], m.Bought, m.Used, m.Bought-m.Used)
	}
	return r.String()
}

// sortedCategories returns the category keys ordered by descending amount,
// ties broken alphabetically so the output is stable.
func sortedCategories(categories map[string]int64) []string {
	keys := make([]string, 0, len(categories))
	for k := range categories {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if categories[keys[i]] != categories[keys[j]] {
			return categories[keys[i]] > categories[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
