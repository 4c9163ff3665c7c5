package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"

	"github.com/ovz/kassa/cmd"
)

// completion describes the command tree for shell completion.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"sale":    {Flags: map[string]complete.Predictor{"card": nil, "custom": nil}},
		"expense": {Flags: map[string]complete.Predictor{"c": nil, "d": nil, "t": nil, "q": nil}},
		"void":    {Flags: map[string]complete.Predictor{"expense": nil}},
		"stats":   {Flags: map[string]complete.Predictor{"w": nil}},
		"journal": {Flags: map[string]complete.Predictor{"html": nil}},
		"shifts":  {},
		"close":   {Flags: map[string]complete.Predictor{"html": nil}},
		"menu":    {},
		"chat":    {},
		"ask":     {},
		"speak":   {Flags: map[string]complete.Predictor{"o": nil}},
	},
	Flags: map[string]complete.Predictor{"data-dir": nil},
}

func main() {
	// The API key may live in a local .env file; absence is fine.
	godotenv.Load()

	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
