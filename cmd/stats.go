package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/ovz/kassa/renderer"
)

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	watch int
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the open shift dashboard" }
func (*statsCmd) Usage() string {
	return `kass stats [-w n]

  Displays revenue, expenses, profit, the sales-by-category breakdown and
  the inventory movement of the currently open shift.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *statsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for {
		ledger := OpenLedger()
		md := renderer.StatsMarkdown(ledger.Stats(), ledger.ShiftStart())
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(md)

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
