package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/shopkeeper"
	"github.com/etnz/shopkeeper/renderer"
	"github.com/google/subcommands"
)

type orderCmd struct {
	name      string
	email     string
	noInvoice bool
}

func (*orderCmd) Name() string     { return "order" }
func (*orderCmd) Synopsis() string { return "sell an item and issue its invoice" }
func (*orderCmd) Usage() string {
	return `sk order [-name <customer>] [-email <email>] [-no-invoice] <item> <quantity>

  Sells quantity units of item. The stock is decremented, the order is recorded
  in the ledger, and the invoice is written to the invoice directory as markdown
  and printable HTML.
`
}

func (c *orderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name.")
	f.StringVar(&c.email, "email", "", "Customer email.")
	f.BoolVar(&c.noInvoice, "no-invoice", false, "Do not write the invoice documents.")
}

func (c *orderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: order requires an item and a quantity.")
		return subcommands.ExitUsageError
	}
	quantity, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}
	req := shopkeeper.OrderRequest{
		Item:          f.Arg(0),
		Quantity:      quantity,
		CustomerName:  c.name,
		CustomerEmail: c.email,
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

	var order shopkeeper.Order
	err = retryPersistence(log, func() (err error) {
		order, err = shop.PlaceOrder(req)
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Order rejected: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderInvoice(renderer.NewInvoice(cfg.Store.Name, order)))
	if c.noInvoice {
		return subcommands.ExitSuccess
	}
	// The order is recorded: failing to write its documents is reported but
	// they can be written again with "sk invoice -w".
	paths, err := writeInvoice(ctx, cfg, log, order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Order %s recorded, but its invoice was not written: %v\n", order.Invoice, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Invoice written to %s\n", paths[1])
	return subcommands.ExitSuccess
}
