package kassa

import "fmt"

// newTestLedger returns an in-memory ledger with a deterministic clock
// (one millisecond per call, starting right after start) and sequential
// record ids.
func newTestLedger(start Millis) *Ledger {
	now := start
	seq := 0
	l := NewLedger()
	l.shiftStart = start
	l.clock = func() Millis {
		now++
		return now
	}
	l.newID = func(prefix string) string {
		seq++
		return fmt.Sprintf("%s_%04d", prefix, seq)
	}
	return l
}

// line builds a plain sale line.
func line(name string, price, qty int64) LineItem {
	return LineItem{ID: "custom_test", Name: name, Price: price, Quantity: qty}
}

// countingFlusher records how many times the ledger was flushed.
type countingFlusher struct {
	calls int
	err   error
}

func (f *countingFlusher) Flush(*Ledger) error {
	f.calls++
	return f.err
}
