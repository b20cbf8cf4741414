// Command sk is the point of sale of a small retail shop.
//
// Run "sk help" for the list of commands, and "sk topic" for the documentation.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/shopkeeper/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Shell completion exits here when invoked by the shell.
	completion().Complete("sk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a built-in command.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
