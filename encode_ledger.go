package shopkeeper

import (
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/shopkeeper/date"
)

// DecodeLedger reads an order ledger from r. Amounts are read in the given currency.
//
// The Date, Item, Quantity and Total columns are required. Ledgers written by
// older versions may lack Invoice, Customer, Email, Price or GST: missing text
// is left empty, a missing GST is zero and a missing Price is derived from
// (Total - GST) / Quantity.
func DecodeLedger(r io.Reader, currency string) (*Ledger, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	ledger := NewLedger()
	if len(t.rows) == 0 && len(t.columns) == 0 {
		return ledger, nil
	}
	if err := t.require(colDate, colItem, colQuantity, colTotal); err != nil {
		return nil, fmt.Errorf("invalid ledger: %w", err)
	}

	for i, row := range t.rows {
		if blank(row) {
			continue
		}
		line := i + 2
		o, err := decodeOrder(t, row, currency)
		if err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", line, err)
		}
		if o.Invoice != "" && ledger.Has(o.Invoice) {
			return nil, fmt.Errorf("ledger line %d: duplicate invoice %q", line, o.Invoice)
		}
		ledger.Append(o)
	}
	return ledger, nil
}

func decodeOrder(t *table, row []string, currency string) (o Order, err error) {
	o.Invoice = t.cell(row, colInvoice)
	o.CustomerName = t.cell(row, colCustomer)
	o.CustomerEmail = t.cell(row, colEmail)
	o.Item = t.cell(row, colItem)

	if o.Date, err = date.Parse(t.cell(row, colDate)); err != nil {
		return o, err
	}
	if o.Quantity, err = parseInt(t.cell(row, colQuantity)); err != nil {
		return o, fmt.Errorf("quantity: %w", err)
	}
	if o.Quantity < 1 {
		return o, fmt.Errorf("%w: %d", ErrInvalidQuantity, o.Quantity)
	}
	if o.Total, err = ParseMoney(t.cell(row, colTotal), currency); err != nil {
		return o, fmt.Errorf("total: %w", err)
	}
	o.Tax = M(0, currency)
	if s := t.cell(row, colTax); s != "" {
		if o.Tax, err = ParseMoney(s, currency); err != nil {
			return o, fmt.Errorf("tax: %w", err)
		}
	}
	if s := t.cell(row, colPrice); s != "" {
		if o.UnitPrice, err = ParseMoney(s, currency); err != nil {
			return o, fmt.Errorf("price: %w", err)
		}
	} else {
		o.UnitPrice = o.Total.Sub(o.Tax).Div(o.Quantity).Round()
	}
	return o, nil
}

// EncodeLedger writes the full ledger to w, with all the LedgerColumns.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	rows := make([][]string, 0, ledger.Len())
	for o := range ledger.Orders() {
		rows = append(rows, []string{
			o.Invoice,
			o.Date.String(),
			o.CustomerName,
			o.CustomerEmail,
			o.Item,
			strconv.Itoa(o.Quantity),
			o.UnitPrice.Amount(),
			o.Tax.Amount(),
			o.Total.Amount(),
		})
	}
	return writeTable(w, LedgerColumns, rows)
}
