package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/shopkeeper"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output    string
	inventory bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "download the order history as CSV" }
func (*exportCmd) Usage() string {
	return `sk export [-inventory] [-o <file>]

  Writes the order history (or the inventory with -inventory) as CSV to stdout, or to a file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
	f.BoolVar(&c.inventory, "inventory", false, "Export the inventory instead of the orders.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, _, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	if err := export(w, newStore(cfg), c.inventory); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// export writes the ledger, or the inventory, of store as CSV to w.
func export(w io.Writer, store shopkeeper.Store, inventory bool) error {
	if inventory {
		inv, err := store.LoadInventory()
		if err != nil {
			return err
		}
		return shopkeeper.EncodeInventory(w, inv)
	}
	ledger, err := store.LoadLedger()
	if err != nil {
		return err
	}
	return shopkeeper.EncodeLedger(w, ledger)
}
