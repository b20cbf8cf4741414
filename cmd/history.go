package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/shopkeeper"
	"github.com/etnz/shopkeeper/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	period string
	start  string
	date   string
	item   string
	query  string
	head   int
	tail   int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list orders from the ledger" }
func (*historyCmd) Usage() string {
	return `sk history [-p <period> | -s <start_date>] [-d <end_date>] [-item <item>] [-q <query>] [-head <n>] [-tail <n>]

  Lists orders from the ledger, with options for filtering and limiting the output.

  -q filters orders with a JSONPath expression over the fields invoice, date,
  customer, email, item, quantity, price, gst and total. For instance:

    sk history -q '@.quantity >= 3 && @.total > 1000'
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
	f.StringVar(&c.item, "item", "", "Show only orders of this item.")
	f.StringVar(&c.query, "q", "", "JSONPath filter expression on orders.")
	f.IntVar(&c.head, "head", 0, "Show only the first N orders.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N orders.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	r, err := dateRange(c.period, c.start, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	cfg, _, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := newStore(cfg).LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var orders []shopkeeper.Order
	for o := range ledger.Orders() {
		if r != nil && !r.Contains(o.Date) {
			continue
		}
		if c.item != "" && o.Item != c.item {
			continue
		}
		orders = append(orders, o)
	}
	if orders, err = filterOrders(orders, c.query); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if c.head > 0 && len(orders) > c.head {
		orders = orders[:c.head]
	}
	if c.tail > 0 && len(orders) > c.tail {
		orders = orders[len(orders)-c.tail:]
	}

	printMarkdown(renderer.RenderOrders(renderer.NewOrders(orders, r, cfg.Store.Currency)))
	return subcommands.ExitSuccess
}
