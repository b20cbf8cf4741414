package shopkeeper

import (
	"iter"
	"slices"
)

// Ledger is the append-only record of orders.
//
// Orders are kept in the order they were placed, which is the order of the
// data file.
type Ledger struct {
	orders   []Order
	invoices map[string]int // index orders by invoice id
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{invoices: make(map[string]int)}
}

// Append appends orders to this ledger.
// Orders without invoice id (legacy rows) are not indexed.
func (l *Ledger) Append(orders ...Order) {
	for _, o := range orders {
		if o.Invoice != "" {
			l.invoices[o.Invoice] = len(l.orders)
		}
		l.orders = append(l.orders, o)
	}
}

// Orders iterates over all orders in placement order.
func (l *Ledger) Orders() iter.Seq[Order] { return slices.Values(l.orders) }

// Order returns the order with this invoice id.
func (l *Ledger) Order(invoice string) (Order, bool) {
	i, ok := l.invoices[invoice]
	if !ok {
		return Order{}, false
	}
	return l.orders[i], true
}

// Has reports whether the invoice id is already used.
func (l *Ledger) Has(invoice string) bool {
	_, ok := l.invoices[invoice]
	return ok
}

// Last returns the most recent order.
func (l *Ledger) Last() (Order, bool) {
	if len(l.orders) == 0 {
		return Order{}, false
	}
	return l.orders[len(l.orders)-1], true
}

// Len returns the number of orders.
func (l *Ledger) Len() int { return len(l.orders) }

// Equal reports whether both ledgers hold the same orders in the same order.
func (l *Ledger) Equal(other *Ledger) bool {
	return slices.EqualFunc(l.orders, other.orders, Order.Equal)
}

// clone returns an independent copy, used to stage a transaction.
func (l *Ledger) clone() *Ledger {
	c := &Ledger{
		orders:   slices.Clone(l.orders),
		invoices: make(map[string]int, len(l.invoices)),
	}
	for k, v := range l.invoices {
		c.invoices[k] = v
	}
	return c
}
