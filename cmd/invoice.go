package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/shopkeeper"
	"github.com/etnz/shopkeeper/config"
	"github.com/etnz/shopkeeper/font"
	"github.com/etnz/shopkeeper/logger"
	"github.com/etnz/shopkeeper/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type invoiceCmd struct {
	write bool
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "show the invoice of a past order" }
func (*invoiceCmd) Usage() string {
	return `sk invoice [-w] [<invoice id>]

  Shows the invoice of a recorded order, the last one if no id is given.
  With -w the markdown and printable HTML documents are written again to the invoice directory.
`
}

func (c *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "Write the invoice documents to the invoice directory.")
}

func (c *invoiceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: invoice accepts at most one invoice id.")
		return subcommands.ExitUsageError
	}
	cfg, log, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := newStore(cfg).LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var order shopkeeper.Order
	var ok bool
	if f.NArg() == 1 {
		order, ok = ledger.Order(f.Arg(0))
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no order with invoice %q.\n", f.Arg(0))
			return subcommands.ExitFailure
		}
	} else {
		order, ok = ledger.Last()
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: there are no orders yet.")
			return subcommands.ExitFailure
		}
	}

	md := renderer.RenderInvoice(renderer.NewInvoice(cfg.Store.Name, order))
	printMarkdown(md)
	if c.write {
		if order.Invoice == "" {
			fmt.Fprintln(os.Stderr, "Error: this order has no invoice id, its documents cannot be named.")
			return subcommands.ExitFailure
		}
		paths, err := writeInvoice(ctx, cfg, log, order)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Invoice written to %s\n", paths[1])
	}
	return subcommands.ExitSuccess
}

// fontTimeout bounds the font download before an invoice is written.
const fontTimeout = 20 * time.Second

// invoiceFont returns the invoice font, or nil when it cannot be provisioned.
func invoiceFont(ctx context.Context, cfg *config.Config, log *zap.Logger) []byte {
	ctx, cancel := context.WithTimeout(ctx, fontTimeout)
	defer cancel()
	p := font.NewProvider(cfg.Invoice.FontURL, cfg.Invoice.FontCache, logger.Named(log, "font"))
	data, err := p.Load(ctx)
	if err != nil {
		log.Warn("invoice font unavailable, falling back to system fonts", zap.Error(err))
		return nil
	}
	return data
}

// writeInvoice writes the markdown and HTML documents of order into the
// invoice directory, and returns their paths.
func writeInvoice(ctx context.Context, cfg *config.Config, log *zap.Logger, order shopkeeper.Order) ([2]string, error) {
	md := renderer.RenderInvoice(renderer.NewInvoice(cfg.Store.Name, order))
	page, err := renderer.HTML("Invoice "+order.Invoice, md, invoiceFont(ctx, cfg, log))
	if err != nil {
		return [2]string{}, fmt.Errorf("could not render invoice %s: %w", order.Invoice, err)
	}

	if err := os.MkdirAll(cfg.Invoice.Dir, 0755); err != nil {
		return [2]string{}, fmt.Errorf("could not create invoice directory: %w", err)
	}
	paths := [2]string{
		filepath.Join(cfg.Invoice.Dir, order.Invoice+".md"),
		filepath.Join(cfg.Invoice.Dir, order.Invoice+".html"),
	}
	if err := os.WriteFile(paths[0], []byte(md), 0644); err != nil {
		return [2]string{}, fmt.Errorf("could not write invoice: %w", err)
	}
	if err := os.WriteFile(paths[1], page, 0644); err != nil {
		return [2]string{}, fmt.Errorf("could not write invoice: %w", err)
	}
	log.Info("invoice written", zap.String("invoice", order.Invoice), zap.String("path", paths[1]))
	return paths, nil
}
