package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ovz/kassa"
)

// voidCmd holds the flags for the 'void' subcommand.
type voidCmd struct {
	expense bool
}

func (*voidCmd) Name() string     { return "void" }
func (*voidCmd) Synopsis() string { return "void a recorded sale or expense" }
func (*voidCmd) Usage() string {
	return `kass void [-expense] <id>...

  Marks the given records as deleted. The records stay in the journal for
  audit; they just stop counting. Voiding an unknown or already voided id
  is a no-op.

Usage Examples:
$ kass void sale_3f9k2m81xq0z
$ kass void -expense exp_8d12yq0o5mvb
`
}

func (c *voidCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.expense, "expense", false, "Void expenses instead of sales")
}

func (c *voidCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: void takes at least one record id")
		return subcommands.ExitUsageError
	}
	kind := kassa.KindSale
	if c.expense {
		kind = kassa.KindExpense
	}

	ledger := OpenLedger()
	for _, id := range f.Args() {
		if err := ledger.SoftDelete(id, kind); err != nil {
			return reportLedgerErr(err)
		}
		fmt.Printf("Voided %s\n", id)
	}
	return subcommands.ExitSuccess
}
