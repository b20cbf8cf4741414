package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type restockCmd struct{}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add units to the stock of an item" }
func (*restockCmd) Usage() string {
	return `sk restock <item> <quantity>

  Adds quantity units to the stock of an existing item. A zero quantity changes nothing.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: restock requires an item and a quantity.")
		return subcommands.ExitUsageError
	}
	item := f.Arg(0)
	quantity, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	cfg, log, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	shop, err := openShop(cfg, log, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := retryPersistence(log, func() error { return shop.Restock(item, quantity) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error restocking: %v\n", err)
		return subcommands.ExitFailure
	}
	it, _ := shop.Inventory().Item(item)
	fmt.Printf("%s: %d in stock\n", it.Name, it.Stock)
	return subcommands.ExitSuccess
}
