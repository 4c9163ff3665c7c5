package kassa

// PaymentMethod is how a sale was settled. The values are the localized
// tokens the upstream data uses, so they persist and compare verbatim.
type PaymentMethod string

const (
	Cash PaymentMethod = "Наличные"
	Card PaymentMethod = "Карта"
)

// ParsePaymentMethod maps the localized "card" token to Card and anything
// else, including the empty string, to Cash.
func ParsePaymentMethod(s string) PaymentMethod {
	if s == string(Card) {
		return Card
	}
	return Cash
}

// InventoryType identifies one of the tracked raw-material kinds.
type InventoryType string

const (
	InventoryLavash     InventoryType = "lavash"
	InventoryBreadBig   InventoryType = "bread_big"
	InventoryBreadSmall InventoryType = "bread_small"
	InventoryNone       InventoryType = "none"
)

// InventoryTypes lists the tracked kinds, in display order.
var InventoryTypes = []InventoryType{InventoryLavash, InventoryBreadBig, InventoryBreadSmall}

// ParseInventoryType maps a free-form token to an InventoryType.
// Unknown or empty tokens map to InventoryNone.
func ParseInventoryType(s string) InventoryType {
	switch InventoryType(s) {
	case InventoryLavash, InventoryBreadBig, InventoryBreadSmall:
		return InventoryType(s)
	default:
		return InventoryNone
	}
}

// Expense categories. CategoryIngredients is distinguished: it is the only
// category for which inventory movement may be recorded.
const (
	CategoryIngredients = "Ингредиенты"
	CategoryOther       = "Прочее"
)

// ExpenseCategories is the closed set offered for expense entry. Free text
// is still accepted by the ledger; it just falls outside this list.
var ExpenseCategories = []string{
	CategoryIngredients,
	"Зарплата",
	"Такси",
	"Уборка",
	CategoryOther,
}

// LineItem is a single line of a sale: a catalog reference with the unit
// price and quantity fixed at the moment of sale.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Category string `json:"category,omitempty"`
	Custom   bool   `json:"isCustom,omitempty"`
}

// MarshalJSON keeps the key order canonical.
func (i LineItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("name", i.Name)
	w.Append("price", i.Price)
	w.Append("quantity", i.Quantity)
	w.Optional("category", i.Category)
	w.Optional("isCustom", i.Custom)
	return w.MarshalJSON()
}

// SumItems returns Σ price×quantity over the given line items.
func SumItems(items []LineItem) int64 {
	var total int64
	for _, i := range items {
		total += i.Price * i.Quantity
	}
	return total
}
