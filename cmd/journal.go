package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ovz/kassa"
	"github.com/ovz/kassa/renderer"
)

// journalCmd holds the flags for the 'journal' subcommand.
type journalCmd struct {
	htmlFile string
}

func (*journalCmd) Name() string     { return "journal" }
func (*journalCmd) Synopsis() string { return "display the open shift operation journal" }
func (*journalCmd) Usage() string {
	return `kass journal [-html <file>]

  Displays the interleaved sales and expenses of the open shift, most
  recent first. With -html, additionally writes the printable shift report.
`
}

func (c *journalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.htmlFile, "html", "", "Also write the printable HTML report to this file")
}

func (c *journalCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := OpenLedger()
	sales := ledger.ActiveSales(ledger.ShiftStart())
	expenses := ledger.ActiveExpenses(ledger.ShiftStart())

	printMarkdown(renderer.JournalMarkdown(sales, expenses))

	if c.htmlFile != "" {
		html, err := renderer.ShiftJournalHTML(sales, expenses, kassa.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.htmlFile, []byte(html), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.htmlFile, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote shift report to %s\n", c.htmlFile)
	}
	return subcommands.ExitSuccess
}
