package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/ovz/kassa"
)

// expenseCmd holds the flags for the 'expense' subcommand.
type expenseCmd struct {
	category     string
	description  string
	inventory    string
	inventoryQty int64
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `kass expense [-c <category>] [-d <description>] [-t <inventory>] [-q <qty>] <amount>

  Records one expense, amount in whole rubles. Inventory intake (-t, -q)
  is only honored for the 'Ингредиенты' category.

Usage Examples:
# A 1200 ruble ingredient purchase bringing 40 lavash in stock.
$ kass expense -c Ингредиенты -d "закупка лаваша" -t lavash -q 40 1200

# Taxi for the evening shift.
$ kass expense -c Такси -d "доставка" 350
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", kassa.CategoryOther, "Expense category")
	f.StringVar(&c.description, "d", "", "Free-form description")
	f.StringVar(&c.inventory, "t", "", "Inventory kind bought (lavash, bread_big, bread_small)")
	f.Int64Var(&c.inventoryQty, "q", 0, "Inventory quantity bought")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expense takes exactly one amount argument")
		return subcommands.ExitUsageError
	}
	amount, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	var details kassa.ExpenseDetails = kassa.Plain{}
	if typ := kassa.ParseInventoryType(c.inventory); typ != kassa.InventoryNone {
		details = kassa.IngredientPurchase{Type: typ, Qty: c.inventoryQty}
	}

	ledger := OpenLedger()
	expense, err := ledger.AddExpense(amount, c.category, c.description, details)
	if err != nil {
		return reportLedgerErr(err)
	}
	fmt.Printf("Recorded expense %s: %d ₽ (%s)\n", expense.ID, expense.Amount, expense.Category)
	return subcommands.ExitSuccess
}
