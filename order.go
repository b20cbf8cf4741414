package shopkeeper

import "github.com/etnz/shopkeeper/date"

// Order is one completed sale of a single item.
//
// UnitPrice is a snapshot of the item price at transaction time, later price
// changes never alter a recorded order.
type Order struct {
	Invoice       string
	Date          date.Date
	CustomerName  string
	CustomerEmail string
	Item          string
	Quantity      int
	UnitPrice     Money
	Tax           Money
	Total         Money
}

// Subtotal returns quantity times unit price, before tax.
func (o Order) Subtotal() Money { return o.UnitPrice.Mul(o.Quantity) }

// HasTax reports whether a tax amount was charged.
func (o Order) HasTax() bool { return !o.Tax.IsZero() }

// HasCustomer reports whether customer details were recorded.
func (o Order) HasCustomer() bool { return o.CustomerName != "" || o.CustomerEmail != "" }

// Equal compares all recorded fields.
func (o Order) Equal(p Order) bool {
	return o.Invoice == p.Invoice &&
		o.Date == p.Date &&
		o.CustomerName == p.CustomerName &&
		o.CustomerEmail == p.CustomerEmail &&
		o.Item == p.Item &&
		o.Quantity == p.Quantity &&
		o.UnitPrice.Equal(p.UnitPrice) &&
		o.Tax.Equal(p.Tax) &&
		o.Total.Equal(p.Total)
}

// OrderRequest is what the operator submits to place an order.
type OrderRequest struct {
	Item          string
	Quantity      int
	CustomerName  string
	CustomerEmail string
}
