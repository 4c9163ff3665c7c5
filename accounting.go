package kassa

import "strings"

// Movement tracks bought vs used quantities for one inventory kind over a
// shift window.
type Movement struct {
	Bought int64
	Used   int64
}

// Stats are the derived figures for a shift window. They are recomputed on
// every read and never stored, except as a ShiftReport snapshot at close.
type Stats struct {
	Revenue   int64
	Expenses  int64
	Profit    int64 // Revenue - Expenses, may be negative
	SaleCount int
	// Categories maps an item category to Σ price×quantity across all line
	// items of active sales in the window.
	Categories map[string]int64
	// Inventory has an entry for every tracked kind, zero movements included.
	Inventory map[InventoryType]Movement
}

// UsageCounter estimates how many units of each inventory kind a set of
// sold line items consumed.
type UsageCounter interface {
	Used(items []LineItem) map[InventoryType]int64
}

// SubstringUsage counts an item toward a kind when its lowercased name
// contains one of the kind's substrings. This is an approximation, not a
// recipe mapping: a name containing substrings of two kinds is counted for
// both.
type SubstringUsage map[InventoryType][]string

// DefaultUsage is the substring heuristic in production use.
var DefaultUsage = SubstringUsage{
	InventoryLavash:     {"шаурма"},
	InventoryBreadBig:   {"большой"},
	InventoryBreadSmall: {"малый"},
}

// Used implements UsageCounter.
func (u SubstringUsage) Used(items []LineItem) map[InventoryType]int64 {
	used := make(map[InventoryType]int64)
	for _, item := range items {
		name := strings.ToLower(item.Name)
		for kind, needles := range u {
			for _, needle := range needles {
				if strings.Contains(name, needle) {
					used[kind] += item.Quantity
					break
				}
			}
		}
	}
	return used
}

// ComputeStats derives the shift statistics from the given collections,
// considering only non-deleted records with a timestamp at or after
// shiftStart. A nil usage falls back to DefaultUsage.
func ComputeStats(sales []SaleRecord, expenses []ExpenseRecord, shiftStart Millis, usage UsageCounter) Stats {
	if usage == nil {
		usage = DefaultUsage
	}
	stats := Stats{
		Categories: make(map[string]int64),
		Inventory:  make(map[InventoryType]Movement),
	}
	for _, kind := range InventoryTypes {
		stats.Inventory[kind] = Movement{}
	}

	for _, s := range sales {
		if s.Deleted || s.Timestamp < shiftStart {
			continue
		}
		stats.Revenue += s.Total
		stats.SaleCount++
		for _, item := range s.Items {
			stats.Categories[item.Category] += item.Price * item.Quantity
		}
		for kind, qty := range usage.Used(s.Items) {
			m := stats.Inventory[kind]
			m.Used += qty
			stats.Inventory[kind] = m
		}
	}

	for _, e := range expenses {
		if e.Deleted || e.Timestamp < shiftStart {
			continue
		}
		stats.Expenses += e.Amount
		if kind, qty := e.Inventory(); kind != InventoryNone {
			m := stats.Inventory[kind]
			m.Bought += qty
			stats.Inventory[kind] = m
		}
	}

	stats.Profit = stats.Revenue - stats.Expenses
	return stats
}

// Stats computes the statistics of the currently open shift.
func (l *Ledger) Stats() Stats {
	return ComputeStats(l.sales, l.expenses, l.shiftStart, DefaultUsage)
}

// CloseShift closes the currently open shift: it computes the final
// statistics, archives a ShiftReport snapshot and advances shiftStart to
// end+1, so that no record can belong to both the closed window and the new
// one. Archive and advance happen as a single uninterrupted step; the state
// is flushed only afterwards, so no partial close is ever persisted.
//
// A *PersistenceError means the close is applied in memory but not yet
// durable; the next successful flush will include it.
func (l *Ledger) CloseShift() (ShiftReport, error) {
	end := l.clock()
	if end <= l.shiftStart {
		// Closing twice within the same millisecond: keep endTime > startTime.
		end = l.shiftStart + 1
	}
	stats := ComputeStats(l.sales, l.expenses, l.shiftStart, DefaultUsage)

	report := ShiftReport{
		ID:        l.newID("shift"),
		StartTime: l.shiftStart,
		EndTime:   end,
		Revenue:   stats.Revenue,
		Expenses:  stats.Expenses,
		Profit:    stats.Profit,
		SaleCount: stats.SaleCount,
	}
	l.reports = append([]ShiftReport{report}, l.reports...)
	l.shiftStart = end + 1
	return report, l.persist("shifts")
}
