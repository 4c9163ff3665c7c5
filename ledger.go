package kassa

import (
	"iter"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// RecordKind selects which collection a soft-delete targets.
type RecordKind string

const (
	KindSale    RecordKind = "sale"
	KindExpense RecordKind = "expense"
)

// Flusher durably persists the ledger state. It is called after every
// mutating operation.
type Flusher interface {
	Flush(l *Ledger) error
}

// Ledger owns the append-only sale and expense collections, the shift
// archive and the current shift-start timestamp. All mutations go through
// it; queries are pure projections over its state.
//
// The ledger is single-writer: it is only ever used from one goroutine.
type Ledger struct {
	sales      []SaleRecord
	expenses   []ExpenseRecord
	reports    []ShiftReport // most recent first
	shiftStart Millis

	clock func() Millis
	newID func(prefix string) string
	flush Flusher
}

// NewLedger creates an empty ledger with no backing store.
func NewLedger() *Ledger {
	return &Ledger{
		clock: Now,
		newID: newRecordID,
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func newRecordID(prefix string) string {
	id, err := gonanoid.Generate(idAlphabet, 12)
	if err != nil {
		panic(err) // only reachable with a broken alphabet or size
	}
	return prefix + "_" + id
}

// SetFlusher attaches the store that persists the ledger after each
// mutation. A nil flusher keeps the ledger purely in memory.
func (l *Ledger) SetFlusher(f Flusher) { l.flush = f }

// ShiftStart returns the start timestamp of the currently open shift.
func (l *Ledger) ShiftStart() Millis { return l.shiftStart }

// AddSale validates the line items, assigns an id and a timestamp and
// appends the sale. The given total must equal Σ price×quantity; it is
// fixed at creation and never edited afterwards.
//
// When the record was appended but the durable write failed, the record is
// returned together with a *PersistenceError: the sale is applied, not yet
// durable.
func (l *Ledger) AddSale(items []LineItem, total int64, method PaymentMethod) (SaleRecord, error) {
	if len(items) == 0 {
		return SaleRecord{}, invalidf("sale needs at least one item")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return SaleRecord{}, invalidf("item %q has quantity %d, must be at least 1", item.Name, item.Quantity)
		}
		if item.Price < 0 {
			return SaleRecord{}, invalidf("item %q has negative price %d", item.Name, item.Price)
		}
	}
	if sum := SumItems(items); total != sum {
		return SaleRecord{}, invalidf("total %d does not match item sum %d", total, sum)
	}

	sale := SaleRecord{
		ID:        l.newID("sale"),
		Timestamp: l.clock(),
		Items:     items,
		Total:     total,
		Payment:   method,
	}
	l.sales = append(l.sales, sale)
	return sale, l.persist("sales")
}

// AddExpense assigns an id and a timestamp and appends the expense. The
// category dictates whether inventory tracking is permitted: for any
// category other than CategoryIngredients the details are forced to Plain,
// regardless of what the caller passed.
func (l *Ledger) AddExpense(amount int64, category, description string, details ExpenseDetails) (ExpenseRecord, error) {
	if amount < 0 {
		return ExpenseRecord{}, invalidf("expense amount %d is negative", amount)
	}
	if category == "" {
		category = CategoryOther
	}
	if category != CategoryIngredients || details == nil {
		details = Plain{}
	}

	expense := ExpenseRecord{
		ID:          l.newID("exp"),
		Timestamp:   l.clock(),
		Amount:      amount,
		Category:    category,
		Description: description,
		Details:     details,
	}
	l.expenses = append(l.expenses, expense)
	return expense, l.persist("expenses")
}

// SoftDelete marks the matching record deleted. Deleting an unknown or
// already deleted record is a no-op, not an error: deletion is idempotent.
func (l *Ledger) SoftDelete(id string, kind RecordKind) error {
	switch kind {
	case KindSale:
		for i := range l.sales {
			if l.sales[i].ID == id && !l.sales[i].Deleted {
				l.sales[i].Deleted = true
				return l.persist("sales")
			}
		}
	case KindExpense:
		for i := range l.expenses {
			if l.expenses[i].ID == id && !l.expenses[i].Deleted {
				l.expenses[i].Deleted = true
				return l.persist("expenses")
			}
		}
	}
	return nil
}

// ArchiveShift prepends the report to the shift archive, keeping the most
// recent shift first.
func (l *Ledger) ArchiveShift(report ShiftReport) error {
	l.reports = append([]ShiftReport{report}, l.reports...)
	return l.persist("shifts")
}

// ActiveSales returns the non-deleted sales with a timestamp at or after
// since, in creation order.
func (l *Ledger) ActiveSales(since Millis) []SaleRecord {
	var active []SaleRecord
	for _, s := range l.sales {
		if !s.Deleted && s.Timestamp >= since {
			active = append(active, s)
		}
	}
	return active
}

// ActiveExpenses returns the non-deleted expenses with a timestamp at or
// after since, in creation order.
func (l *Ledger) ActiveExpenses(since Millis) []ExpenseRecord {
	var active []ExpenseRecord
	for _, e := range l.expenses {
		if !e.Deleted && e.Timestamp >= since {
			active = append(active, e)
		}
	}
	return active
}

// AllSales iterates over every sale, deleted ones included, in creation order.
func (l *Ledger) AllSales() iter.Seq[SaleRecord] {
	return func(yield func(SaleRecord) bool) {
		for _, s := range l.sales {
			if !yield(s) {
				return
			}
		}
	}
}

// AllExpenses iterates over every expense, deleted ones included, in creation order.
func (l *Ledger) AllExpenses() iter.Seq[ExpenseRecord] {
	return func(yield func(ExpenseRecord) bool) {
		for _, e := range l.expenses {
			if !yield(e) {
				return
			}
		}
	}
}

// Reports returns the shift archive, most recent first.
func (l *Ledger) Reports() []ShiftReport {
	out := make([]ShiftReport, len(l.reports))
	copy(out, l.reports)
	return out
}

// persist flushes the whole ledger state to the attached store. The
// in-memory mutation is never rolled back on failure; see PersistenceError.
func (l *Ledger) persist(record string) error {
	if l.flush == nil {
		return nil
	}
	if err := l.flush.Flush(l); err != nil {
		return &PersistenceError{Record: record, Err: err}
	}
	return nil
}
