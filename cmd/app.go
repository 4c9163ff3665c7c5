// Package cmd implements the CLI application to run the cash register.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/ovz/kassa"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&saleCmd{}, "ledger")
	c.Register(&expenseCmd{}, "ledger")
	c.Register(&voidCmd{}, "ledger")

	c.Register(&statsCmd{}, "reports")
	c.Register(&journalCmd{}, "reports")
	c.Register(&shiftsCmd{}, "reports")
	c.Register(&closeCmd{}, "reports")
	c.Register(&menuCmd{}, "reports")

	c.Register(&chatCmd{}, "assistant")
	c.Register(&askCmd{}, "assistant")
	c.Register(&speakCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", ".kassa", "Path to the data directory holding the ledger files")

// OpenLedger loads the ledger from the app data directory. Missing files
// mean a fresh ledger; corrupt ones degrade with a logged warning.
func OpenLedger() *kassa.Ledger {
	return kassa.NewFileStore(*dataDir).Load()
}

// reportLedgerErr prints a mutation error and picks the exit status. A
// validation error means nothing was applied; a persistence error means the
// change is applied in memory but was not written, which for a short-lived
// CLI process is a failure the operator must see.
func reportLedgerErr(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
