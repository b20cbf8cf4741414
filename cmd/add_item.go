package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/shopkeeper"
	"github.com/google/subcommands"
)

type addItemCmd struct {
	stock int
	price string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add a new item to the inventory" }
func (*addItemCmd) Usage() string {
	return `sk add-item -price <price> [-stock <n>] <name>

  Adds a new item to the inventory. The inventory file is created if it does not exist.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.stock, "stock", 0, "Initial stock.")
	f.StringVar(&c.price, "price", "", "Unit price, in the shop currency.")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: add-item requires exactly one item name.")
		return subcommands.ExitUsageError
	}
	if c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -price is required.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	cfg, log, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	price, err := shopkeeper.ParseMoney(c.price, cfg.Store.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	shop, err := openShop(cfg, log, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	err = retryPersistence(log, func() error { return shop.AddItem(name, c.stock, price) })
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding item: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s: %d units at %s\n", name, c.stock, price)
	return subcommands.ExitSuccess
}
