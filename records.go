package kassa

import "encoding/json"

// SaleRecord is one checked-out sale. Once created the record is immutable
// except for the soft-delete flag; corrections happen by voiding the record
// and entering a new one, never by editing in place.
type SaleRecord struct {
	ID        string
	Timestamp Millis
	Items     []LineItem
	Total     int64 // fixed at creation, always Σ price×quantity
	Payment   PaymentMethod
	Deleted   bool
}

// MarshalJSON implements the json.Marshaler interface for SaleRecord.
func (s SaleRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("timestamp", s.Timestamp)
	w.Append("items", s.Items)
	w.Append("total", s.Total)
	w.Append("paymentMethod", s.Payment)
	w.Append("isDeleted", s.Deleted)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for SaleRecord.
func (s *SaleRecord) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string        `json:"id"`
		Timestamp Millis        `json:"timestamp"`
		Items     []LineItem    `json:"items"`
		Total     int64         `json:"total"`
		Payment   PaymentMethod `json:"paymentMethod"`
		Deleted   bool          `json:"isDeleted"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*s = SaleRecord(temp)
	return nil
}

// ExpenseDetails is the category-dependent part of an expense. Inventory
// tracking is only meaningful for ingredient purchases, so it is modeled as
// a variant rather than always-present fields.
type ExpenseDetails interface {
	// Inventory reports the inventory movement this expense carries.
	// It is (InventoryNone, 0) for plain expenses.
	Inventory() (InventoryType, int64)
}

// Plain is an expense with no inventory movement.
type Plain struct{}

func (Plain) Inventory() (InventoryType, int64) { return InventoryNone, 0 }

// IngredientPurchase is an expense that also brings raw material in stock.
type IngredientPurchase struct {
	Type InventoryType
	Qty  int64
}

func (p IngredientPurchase) Inventory() (InventoryType, int64) { return p.Type, p.Qty }

// ExpenseRecord is one recorded expense. Immutable except for the
// soft-delete flag, like SaleRecord.
type ExpenseRecord struct {
	ID          string
	Timestamp   Millis
	Amount      int64
	Category    string
	Description string
	Details     ExpenseDetails
	Deleted     bool
}

// Inventory reports the inventory movement of this expense.
func (e ExpenseRecord) Inventory() (InventoryType, int64) {
	if e.Details == nil {
		return InventoryNone, 0
	}
	return e.Details.Inventory()
}

// MarshalJSON flattens the details variant into the inventoryType and
// inventoryQty fields the persisted format uses.
func (e ExpenseRecord) MarshalJSON() ([]byte, error) {
	typ, qty := e.Inventory()
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("timestamp", e.Timestamp)
	w.Append("amount", e.Amount)
	w.Append("category", e.Category)
	w.Append("description", e.Description)
	w.Append("inventoryType", typ)
	w.Append("inventoryQty", qty)
	w.Append("isDeleted", e.Deleted)
	return w.MarshalJSON()
}

// UnmarshalJSON rebuilds the details variant from the flat fields.
func (e *ExpenseRecord) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID            string `json:"id"`
		Timestamp     Millis `json:"timestamp"`
		Amount        int64  `json:"amount"`
		Category      string `json:"category"`
		Description   string `json:"description"`
		InventoryType string `json:"inventoryType"`
		InventoryQty  int64  `json:"inventoryQty"`
		Deleted       bool   `json:"isDeleted"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	e.ID = temp.ID
	e.Timestamp = temp.Timestamp
	e.Amount = temp.Amount
	e.Category = temp.Category
	e.Description = temp.Description
	e.Deleted = temp.Deleted
	if typ := ParseInventoryType(temp.InventoryType); typ != InventoryNone {
		e.Details = IngredientPurchase{Type: typ, Qty: temp.InventoryQty}
	} else {
		e.Details = Plain{}
	}
	return nil
}

// ShiftReport is the archived snapshot of a closed shift (a Z-report).
// It is created exactly once at shift close and never recomputed.
type ShiftReport struct {
	ID        string `json:"id"`
	StartTime Millis `json:"startTime"`
	EndTime   Millis `json:"endTime"`
	Revenue   int64  `json:"revenue"`
	Expenses  int64  `json:"expenses"`
	Profit    int64  `json:"profit"`
	SaleCount int    `json:"saleCount"`
}

// MarshalJSON keeps the key order canonical.
func (r ShiftReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("startTime", r.StartTime)
	w.Append("endTime", r.EndTime)
	w.Append("revenue", r.Revenue)
	w.Append("expenses", r.Expenses)
	w.Append("profit", r.Profit)
	w.Append("saleCount", r.SaleCount)
	return w.MarshalJSON()
}
