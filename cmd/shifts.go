package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ovz/kassa/renderer"
)

// shiftsCmd holds the flags for the 'shifts' subcommand.
type shiftsCmd struct{}

func (*shiftsCmd) Name() string     { return "shifts" }
func (*shiftsCmd) Synopsis() string { return "display the archive of closed shifts" }
func (*shiftsCmd) Usage() string {
	return `kass shifts

  Displays the archived Z-reports of all closed shifts, most recent first.
`
}

func (*shiftsCmd) SetFlags(_ *flag.FlagSet) {}

func (*shiftsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := OpenLedger()
	printMarkdown(renderer.ShiftsMarkdown(ledger.Reports()))
	return subcommands.ExitSuccess
}
