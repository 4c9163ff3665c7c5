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

// speakCmd holds the flags for the 'speak' subcommand.
type speakCmd struct {
	outFile string
}

func (*speakCmd) Name() string     { return "speak" }
func (*speakCmd) Synopsis() string { return "synthesize speech for a text" }
func (*speakCmd) Usage() string {
	return `kass speak [-o <file>] <text...>

  Synthesizes the text with the assistant's voice and writes the raw audio
  bytes to the output file.
`
}

func (c *speakCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outFile, "o", "speech.pcm", "Output file for the raw audio bytes")
}

func (c *speakCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: speak takes a text")
		return subcommands.ExitUsageError
	}

	a, err := assistant.New(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	audio, err := a.Speak(ctx, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.outFile, audio, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.outFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %d audio bytes to %s\n", len(audio), c.outFile)
	return subcommands.ExitSuccess
}
