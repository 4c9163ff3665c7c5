package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/ovz/kassa"
)

// menuCmd holds the flags for the 'menu' subcommand.
type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "display the menu catalog" }
func (*menuCmd) Usage() string {
	return `kass menu

  Displays the menu item ids, names and prices used by 'kass sale'.
`
}

func (*menuCmd) SetFlags(_ *flag.FlagSet) {}

func (*menuCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	b.WriteString("# Меню\n\n")
	for _, cat := range kassa.MenuCategories {
		b.WriteString("## " + cat.Name + "\n\n")
		b.WriteString("| ID | Позиция | Цена |\n")
		b.WriteString("|:---|:---|---:|\n")
		for _, item := range kassa.MenuItems {
			if item.Category == cat.ID {
				fmt.Fprintf(&b, "| %s | %s | %d ₽ |\n", item.ID, item.Name, item.Price)
			}
		}
		b.WriteString("\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
