package renderer

import (
	"github.com/etnz/shopkeeper"
	"github.com/etnz/shopkeeper/date"
)

// Invoice holds the data printed on an invoice.
type Invoice struct {
	Store         string
	ID            string
	Date          date.Date
	CustomerName  string
	CustomerEmail string
	Item          string
	Quantity      int
	UnitPrice     shopkeeper.Money
	Subtotal      shopkeeper.Money
	Tax           shopkeeper.Money
	Total         shopkeeper.Money
}

// NewInvoice creates the invoice of order o issued by store.
func NewInvoice(store string, o shopkeeper.Order) *Invoice {
	return &Invoice{
		Store:         store,
		ID:            o.Invoice,
		Date:          o.Date,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Item:          o.Item,
		Quantity:      o.Quantity,
		UnitPrice:     o.UnitPrice,
		Subtotal:      o.Subtotal(),
		Tax:           o.Tax,
		Total:         o.Total,
	}
}

// HasTax reports whether a tax line is printed.
func (i *Invoice) HasTax() bool { return !i.Tax.IsZero() }
