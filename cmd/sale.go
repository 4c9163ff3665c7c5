package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/ovz/kassa"
)

// saleCmd holds the flags for the 'sale' subcommand.
type saleCmd struct {
	card   bool
	custom string
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "record a sale from menu item ids" }
func (*saleCmd) Usage() string {
	return `kass sale [-card] [-custom <name>:<price>[:<qty>]] <id>[:<qty>]...

  Records one sale. Each positional argument is a menu item id with an
  optional quantity, e.g. 'sh_classic:2'. The total is computed from the
  lines; it is never entered by hand.

Usage Examples:
# Two classic shawarmas and a tea, paid by card.
$ kass sale -card sh_classic:2 dr_tea

# A sale with an off-menu item.
$ kass sale -custom "Adrenaline:150" sh_xl
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.card, "card", false, "Sale paid by card instead of cash")
	f.StringVar(&c.custom, "custom", "", "Off-menu line as name:price[:qty]")
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var items []kassa.LineItem
	for _, arg := range f.Args() {
		item, err := parseMenuArg(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		items = append(items, item)
	}
	if c.custom != "" {
		item, err := parseCustomArg(c.custom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		items = append(items, item)
	}

	method := kassa.Cash
	if c.card {
		method = kassa.Card
	}

	ledger := OpenLedger()
	sale, err := ledger.AddSale(items, kassa.SumItems(items), method)
	if err != nil {
		return reportLedgerErr(err)
	}
	fmt.Printf("Recorded sale %s: %d ₽ (%s)\n", sale.ID, sale.Total, sale.Payment)
	return subcommands.ExitSuccess
}

// parseMenuArg parses "id" or "id:qty" against the menu catalog.
func parseMenuArg(arg string) (kassa.LineItem, error) {
	id, qtyStr, hasQty := strings.Cut(arg, ":")
	item, ok := kassa.FindMenuItem(id)
	if !ok {
		return kassa.LineItem{}, fmt.Errorf("unknown menu item %q, see 'kass menu'", id)
	}
	qty := int64(1)
	if hasQty {
		n, err := strconv.ParseInt(qtyStr, 10, 64)
		if err != nil || n < 1 {
			return kassa.LineItem{}, fmt.Errorf("invalid quantity %q for %q", qtyStr, id)
		}
		qty = n
	}
	return item.MenuLine(qty), nil
}

// parseCustomArg parses "name:price" or "name:price:qty".
func parseCustomArg(arg string) (kassa.LineItem, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return kassa.LineItem{}, fmt.Errorf("custom line %q must be name:price[:qty]", arg)
	}
	price, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || price < 0 {
		return kassa.LineItem{}, fmt.Errorf("invalid price %q in custom line %q", parts[1], arg)
	}
	qty := int64(1)
	if len(parts) == 3 {
		n, qerr := strconv.ParseInt(parts[2], 10, 64)
		if qerr != nil || n < 1 {
			return kassa.LineItem{}, fmt.Errorf("invalid quantity %q in custom line %q", parts[2], arg)
		}
		qty = n
	}
	return kassa.CustomLine(parts[0], price, qty), nil
}
