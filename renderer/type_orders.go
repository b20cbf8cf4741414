package renderer

import (
	"github.com/etnz/shopkeeper"
	"github.com/etnz/shopkeeper/date"
)

// Orders is the order history table.
type Orders struct {
	Range    *date.Range // nil for the full history
	Orders   []shopkeeper.Order
	Quantity int
	Tax      shopkeeper.Money
	Total    shopkeeper.Money
}

// NewOrders creates the history table of orders, optionally restricted to a date range.
func NewOrders(orders []shopkeeper.Order, r *date.Range, currency string) *Orders {
	h := &Orders{
		Range:  r,
		Orders: orders,
		Tax:    shopkeeper.M(0, currency),
		Total:  shopkeeper.M(0, currency),
	}
	for _, o := range orders {
		h.Quantity += o.Quantity
		h.Tax = h.Tax.Add(o.Tax)
		h.Total = h.Total.Add(o.Total)
	}
	return h
}
