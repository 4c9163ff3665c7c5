package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ovz/kassa/renderer"
)

// closeCmd holds the flags for the 'close' subcommand.
type closeCmd struct {
	htmlFile string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "close the open shift and archive its Z-report" }
func (*closeCmd) Usage() string {
	return `kass close [-html <file>]

  Closes the currently open shift: freezes its figures into an archived
  Z-report and starts a fresh shift window. With -html, also writes the
  printable Z-report receipt.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.htmlFile, "html", "", "Also write the printable Z-report to this file")
}

func (c *closeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := OpenLedger()
	report, err := ledger.CloseShift()
	if err != nil {
		return reportLedgerErr(err)
	}

	fmt.Printf("Shift closed: %d ₽ revenue, %d ₽ expenses, %d ₽ profit, %d sales\n",
		report.Revenue, report.Expenses, report.Profit, report.SaleCount)

	if c.htmlFile != "" {
		html, err := renderer.ZReportHTML(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.htmlFile, []byte(html), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.htmlFile, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote Z-report to %s\n", c.htmlFile)
	}
	return subcommands.ExitSuccess
}
