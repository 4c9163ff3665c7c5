package kassa

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileStore_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	l := newTestLedger(1000)
	l.SetFlusher(store)

	sale, err := l.AddSale([]LineItem{
		{ID: "sh_classic", Name: "Шаурма", Price: 300, Quantity: 2, Category: "food"},
		{ID: "custom_item", Name: "Adrenaline", Price: 150, Quantity: 1, Custom: true},
	}, 750, Card)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expense, err := l.AddExpense(1200, CategoryIngredients, "лаваш", IngredientPurchase{Type: InventoryLavash, Qty: 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.SoftDelete(sale.ID, KindSale); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report, err := l.CloseShift()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded := store.Load()

	if len(reloaded.sales) != 1 {
		t.Fatalf("got %d sales, want 1", len(reloaded.sales))
	}
	got := reloaded.sales[0]
	sale.Deleted = true // was voided after creation
	if !reflect.DeepEqual(got, sale) {
		t.Errorf("got sale %+v, want %+v", got, sale)
	}
	if len(reloaded.expenses) != 1 || !reflect.DeepEqual(reloaded.expenses[0], expense) {
		t.Errorf("got expenses %+v, want %+v", reloaded.expenses, expense)
	}
	if len(reloaded.reports) != 1 || reloaded.reports[0] != report {
		t.Errorf("got reports %+v, want %+v", reloaded.reports, report)
	}
	if reloaded.shiftStart != l.shiftStart {
		t.Errorf("got shiftStart %d, want %d", reloaded.shiftStart, l.shiftStart)
	}
}

func TestFileStore_LoadMissingDir(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope"))
	l := store.Load()
	if len(l.sales) != 0 || len(l.expenses) != 0 || len(l.reports) != 0 || l.shiftStart != 0 {
		t.Errorf("fresh load not empty: %+v", l)
	}
	// The loaded ledger must be wired to the store.
	if _, err := l.AddSale([]LineItem{line("Чай", 45, 1)}, 45, Cash); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), salesFile)); err != nil {
		t.Errorf("flush did not create %s: %v", salesFile, err)
	}
}

func TestFileStore_CorruptRecordDegradesAlone(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	l := newTestLedger(1000)
	l.SetFlusher(store)
	if _, err := l.AddSale([]LineItem{line("Чай", 45, 1)}, 45, Cash); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.AddExpense(200, "Такси", "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Corrupt only the sales record.
	if err := os.WriteFile(filepath.Join(dir, salesFile), []byte("{не json\n"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded := store.Load()
	if len(reloaded.sales) != 0 {
		t.Errorf("corrupt sales should degrade to empty, got %d", len(reloaded.sales))
	}
	if len(reloaded.expenses) != 1 {
		t.Errorf("expenses should survive a corrupt sales file, got %d", len(reloaded.expenses))
	}
}

func TestSaleRecord_CanonicalJSON(t *testing.T) {
	sale := SaleRecord{
		ID:        "sale_0001",
		Timestamp: 1700000000000,
		Items:     []LineItem{{ID: "dr_tea", Name: "Чай", Price: 45, Quantity: 1}},
		Total:     45,
		Payment:   Cash,
	}
	got, err := sale.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"id":"sale_0001","timestamp":1700000000000,` +
		`"items":[{"id":"dr_tea","name":"Чай","price":45,"quantity":1}],` +
		`"total":45,"paymentMethod":"Наличные","isDeleted":false}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestExpenseRecord_CanonicalJSON(t *testing.T) {
	expense := ExpenseRecord{
		ID:          "exp_0001",
		Timestamp:   1700000000000,
		Amount:      1200,
		Category:    CategoryIngredients,
		Description: "лаваш",
		Details:     IngredientPurchase{Type: InventoryLavash, Qty: 40},
	}
	got, err := expense.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"id":"exp_0001","timestamp":1700000000000,"amount":1200,` +
		`"category":"Ингредиенты","description":"лаваш",` +
		`"inventoryType":"lavash","inventoryQty":40,"isDeleted":false}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
