package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/shopkeeper/font"
	"github.com/etnz/shopkeeper/logger"
	"github.com/google/subcommands"
)

type fontCmd struct {
	force bool
}

func (*fontCmd) Name() string     { return "font" }
func (*fontCmd) Synopsis() string { return "download the font embedded in invoices" }
func (*fontCmd) Usage() string {
	return `sk font [-f]

  Downloads the invoice font into its cache file, unless it is already there.
  Invoices are still written without it, using system fonts.
`
}

func (c *fontCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Download the font even if it is already cached.")
}

func (c *fontCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	p := font.NewProvider(cfg.Invoice.FontURL, cfg.Invoice.FontCache, logger.Named(log, "font"))
	if c.force {
		if err := os.Remove(p.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error removing cached font: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	path, err := p.Fetch(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Font available at %s\n", path)
	return subcommands.ExitSuccess
}
