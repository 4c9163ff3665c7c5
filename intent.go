package kassa

import (
	"encoding/json"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

// Action is one normalized, ledger-ready action produced by the resolver.
// The resolver only prepares actions; it never mutates the ledger itself.
type Action interface {
	isAction()
}

// AddSale proposes appending a sale. Total is always recomputed from the
// items; whatever total the assistant supplied is discarded.
type AddSale struct {
	Items   []LineItem
	Total   int64
	Payment PaymentMethod
}

func (AddSale) isAction() {}

// AddExpense proposes appending an expense.
type AddExpense struct {
	Amount      int64
	Category    string
	Description string
	Details     ExpenseDetails
}

func (AddExpense) isAction() {}

// Info is an inert action: the assistant answered without proposing any
// ledger mutation.
type Info struct{}

func (Info) isAction() {}

// Response is a parsed, fully-normalized assistant reply.
type Response struct {
	Confirmation string
	Actions      []Action
}

// ParseResponse turns a raw assistant reply into normalized actions. The
// input is untrusted: fields may be missing, wrongly typed or extra, and
// the whole payload may not be JSON at all. Anything unusable degrades to
// an *UpstreamFormatError with zero actions; individual actions of unknown
// type or unusable shape are dropped silently. ParseResponse never panics.
func ParseResponse(raw string) (*Response, error) {
	var v any
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &v); err != nil {
		return nil, &UpstreamFormatError{Msg: "not a JSON object", Err: err}
	}
	if _, ok := v.(map[string]any); !ok {
		return nil, &UpstreamFormatError{Msg: "not a JSON object"}
	}

	resp := &Response{}
	if c, err := jsonpath.Get("$.confirmationText", v); err == nil {
		if s, ok := c.(string); ok {
			resp.Confirmation = s
		}
	}

	list, err := jsonpath.Get("$.actions", v)
	if err != nil {
		// No actions key at all: an answer with nothing to do.
		return resp, nil
	}
	elements, ok := list.([]any)
	if !ok {
		return resp, nil
	}
	for _, el := range elements {
		if action, ok := normalizeAction(el); ok {
			resp.Actions = append(resp.Actions, action)
		}
	}
	return resp, nil
}

// cleanJSON strips markdown code fences and trims the payload to the
// outermost braces, the same salvage the upstream applies to model output.
func cleanJSON(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	first := strings.Index(clean, "{")
	last := strings.LastIndex(clean, "}")
	if first != -1 && last > first {
		clean = clean[first : last+1]
	}
	return clean
}

func normalizeAction(v any) (Action, bool) {
	var raw struct {
		Type string         `mapstructure:"type"`
		Data map[string]any `mapstructure:"data"`
	}
	if err := weakDecode(v, &raw); err != nil {
		return nil, false
	}
	switch raw.Type {
	case "add_sale":
		if raw.Data == nil {
			return nil, false
		}
		return normalizeSale(raw.Data)
	case "add_expense":
		if raw.Data == nil {
			return nil, false
		}
		return normalizeExpense(raw.Data), true
	case "info":
		return Info{}, true
	default:
		return nil, false
	}
}

func normalizeSale(data map[string]any) (Action, bool) {
	rawItems, ok := data["items"].([]any)
	if !ok {
		return nil, false
	}
	items := make([]LineItem, 0, len(rawItems))
	for _, ri := range rawItems {
		var item struct {
			ID       string `mapstructure:"id"`
			Name     string `mapstructure:"name"`
			Price    any    `mapstructure:"price"`
			Quantity any    `mapstructure:"quantity"`
			Category string `mapstructure:"category"`
		}
		if err := weakDecode(ri, &item); err != nil {
			continue
		}
		qty := toNumber(item.Quantity)
		if qty == 0 {
			qty = 1
		}
		items = append(items, LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    toNumber(item.Price),
			Quantity: qty,
			Category: item.Category,
		})
	}

	var payment string
	if s, ok := data["paymentMethod"].(string); ok {
		payment = s
	}
	return AddSale{
		Items:   items,
		Total:   SumItems(items),
		Payment: ParsePaymentMethod(payment),
	}, true
}

func normalizeExpense(data map[string]any) Action {
	var raw struct {
		Amount        any    `mapstructure:"amount"`
		Category      string `mapstructure:"category"`
		Description   string `mapstructure:"description"`
		InventoryType string `mapstructure:"inventoryType"`
		InventoryQty  any    `mapstructure:"inventoryQty"`
	}
	// A failed decode leaves the zero struct, which defaults below.
	_ = weakDecode(data, &raw)

	if raw.Category == "" {
		raw.Category = CategoryOther
	}
	if raw.Description == "" {
		raw.Description = "AI Entry"
	}
	var details ExpenseDetails = Plain{}
	if typ := ParseInventoryType(raw.InventoryType); typ != InventoryNone {
		details = IngredientPurchase{Type: typ, Qty: toNumber(raw.InventoryQty)}
	}
	return AddExpense{
		Amount:      toNumber(raw.Amount),
		Category:    raw.Category,
		Description: raw.Description,
		Details:     details,
	}
}

// weakDecode decodes a loosely-typed value into out, converting between
// scalar types where possible instead of failing.
func weakDecode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// toNumber coerces an untrusted value to a whole-ruble amount. Missing and
// non-numeric values coerce to 0; fractional values are truncated since the
// ledger works in whole currency units.
func toNumber(v any) int64 {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n).IntPart()
	case int:
		return int64(n)
	case int64:
		return n
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return 0
		}
		return d.IntPart()
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return d.IntPart()
	default:
		return 0
	}
}
