package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/ovz/kassa/assistant"
)

// chatCmd is the subcommand for the interactive cashier session.
type chatCmd struct{}

func (*chatCmd) Name() string     { return "chat" }
func (*chatCmd) Synopsis() string { return "start an interactive session with the smart cashier" }
func (*chatCmd) Usage() string {
	return `kass chat [initial command...]

  Starts an interactive session. Each line is interpreted by the cashier
  assistant into sales and expenses, shown for review and applied only
  after an explicit confirmation. Type 'bye' to exit.
`
}

func (*chatCmd) SetFlags(_ *flag.FlagSet) {}

func (c *chatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	a, err := assistant.New(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	chat := assistant.NewChat(os.Stdout, os.Stdin, OpenLedger(), a)
	chat.Render = func(md string) string {
		out, err := glamour.Render(md, "auto")
		if err != nil {
			return md
		}
		return out
	}

	if err := chat.Run(ctx, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Chat failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
