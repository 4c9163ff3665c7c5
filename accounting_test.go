package kassa

import "testing"

func TestComputeStats(t *testing.T) {
	l := newTestLedger(1000)

	// A shift: two sales and two expenses, one of each later voided.
	if _, err := l.AddSale([]LineItem{
		{ID: "sh_classic", Name: "Шаурма", Price: 300, Quantity: 2, Category: "food"},
		{ID: "dr_tea", Name: "Чай", Price: 45, Quantity: 1, Category: "drinks"},
	}, 645, Cash); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.AddSale([]LineItem{
		{ID: "dn_big", Name: "Дёнер Большой", Price: 310, Quantity: 1, Category: "food"},
	}, 310, Card); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	voided, _ := l.AddSale([]LineItem{line("Кофе", 50, 1)}, 50, Cash)
	if err := l.SoftDelete(voided.ID, KindSale); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := l.AddExpense(1200, CategoryIngredients, "лаваш", IngredientPurchase{Type: InventoryLavash, Qty: 40}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	badExp, _ := l.AddExpense(999, "Такси", "ошибка", nil)
	if err := l.SoftDelete(badExp.ID, KindExpense); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := l.Stats()

	if stats.Revenue != 955 {
		t.Errorf("got revenue %d, want 955", stats.Revenue)
	}
	if stats.Expenses != 1200 {
		t.Errorf("got expenses %d, want 1200", stats.Expenses)
	}
	if stats.Profit != -245 {
		t.Errorf("got profit %d, want -245", stats.Profit)
	}
	if stats.SaleCount != 2 {
		t.Errorf("got sale count %d, want 2", stats.SaleCount)
	}

	if got := stats.Categories["food"]; got != 910 {
		t.Errorf("got food category %d, want 910", got)
	}
	if got := stats.Categories["drinks"]; got != 45 {
		t.Errorf("got drinks category %d, want 45", got)
	}

	// "Шаурма" x2 consumes lavash; "Дёнер Большой" consumes a big bread.
	if m := stats.Inventory[InventoryLavash]; m.Bought != 40 || m.Used != 2 {
		t.Errorf("got lavash movement %+v, want {Bought:40 Used:2}", m)
	}
	if m := stats.Inventory[InventoryBreadBig]; m.Bought != 0 || m.Used != 1 {
		t.Errorf("got bread_big movement %+v, want {Bought:0 Used:1}", m)
	}
	// Every tracked kind has an entry even with zero movement.
	if m, ok := stats.Inventory[InventoryBreadSmall]; !ok || m != (Movement{}) {
		t.Errorf("got bread_small movement %+v ok=%v, want a zero entry", m, ok)
	}
}

func TestSubstringUsage_CountsBothKinds(t *testing.T) {
	// A name matching two kinds is counted for both. The estimate is a
	// substring heuristic, not a recipe mapping.
	used := DefaultUsage.Used([]LineItem{line("Шаурма большой", 350, 2)})
	if used[InventoryLavash] != 2 {
		t.Errorf("got lavash %d, want 2", used[InventoryLavash])
	}
	if used[InventoryBreadBig] != 2 {
		t.Errorf("got bread_big %d, want 2", used[InventoryBreadBig])
	}
}

func TestLedger_CloseShift(t *testing.T) {
	l := newTestLedger(1000)
	if _, err := l.AddSale([]LineItem{line("Шаурма", 300, 2)}, 600, Cash); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.AddExpense(200, "Такси", "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := &countingFlusher{}
	l.SetFlusher(f)

	report, err := l.CloseShift()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Revenue != 600 || report.Expenses != 200 || report.Profit != 400 || report.SaleCount != 1 {
		t.Errorf("got report %+v, want 600/200/400 over 1 sale", report)
	}
	if report.StartTime != 1000 {
		t.Errorf("got start %d, want 1000", report.StartTime)
	}
	if report.EndTime <= report.StartTime {
		t.Errorf("end %d not after start %d", report.EndTime, report.StartTime)
	}
	if l.shiftStart != report.EndTime+1 {
		t.Errorf("shiftStart %d, want %d", l.shiftStart, report.EndTime+1)
	}
	if f.calls != 1 {
		t.Errorf("got %d flushes, want exactly 1 for the whole close", f.calls)
	}

	// The new shift starts clean.
	stats := l.Stats()
	if stats.Revenue != 0 || stats.Expenses != 0 || stats.SaleCount != 0 {
		t.Errorf("new shift not empty: %+v", stats)
	}

	// A second close within the same window archives on top.
	second, err := l.CloseShift()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reports := l.Reports()
	if len(reports) != 2 || reports[0].ID != second.ID || reports[1].ID != report.ID {
		t.Errorf("archive not most-recent-first: %v", reports)
	}
	if second.StartTime <= report.EndTime {
		t.Errorf("shift windows overlap: %d <= %d", second.StartTime, report.EndTime)
	}
}

func TestLedger_CloseShiftSameMillisecond(t *testing.T) {
	l := newTestLedger(1000)
	// A frozen clock simulates closing twice within one millisecond.
	l.clock = func() Millis { return 1000 }

	report, err := l.CloseShift()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.EndTime != 1001 {
		t.Errorf("got end %d, want clamped 1001", report.EndTime)
	}
	if l.shiftStart != 1002 {
		t.Errorf("got shiftStart %d, want 1002", l.shiftStart)
	}
}
