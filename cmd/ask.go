package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/ovz/kassa/assistant"
)

// askCmd is the subcommand for one-shot analyst questions.
type askCmd struct{}

func (*askCmd) Name() string     { return "ask" }
func (*askCmd) Synopsis() string { return "ask the business analyst a question" }
func (*askCmd) Usage() string {
	return `kass ask <question...>

  Sends the recorded history together with the question to the business
  analyst and prints the advice.

Usage Examples:
$ kass ask "какая маржа за сегодня?"
`
}

func (*askCmd) SetFlags(_ *flag.FlagSet) {}

func (*askCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: ask takes a question")
		return subcommands.ExitUsageError
	}

	a, err := assistant.New(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	ledger := OpenLedger()
	advice := a.Advise(ctx, assistant.HistoryJSON(ledger), strings.Join(f.Args(), " "))
	printMarkdown(advice)
	return subcommands.ExitSuccess
}
