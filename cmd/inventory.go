package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/shopkeeper/renderer"
	"github.com/google/subcommands"
)

type inventoryCmd struct{}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list items with their stock and price" }
func (*inventoryCmd) Usage() string {
	return `sk inventory

  Lists the items of the inventory, with their stock, unit price and stock value.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.RenderInventory(renderer.NewInventory(shop.Inventory(), cfg.Store.Currency)))
	return subcommands.ExitSuccess
}
