package renderer

import "github.com/etnz/shopkeeper"

// Inventory is the stock table.
type Inventory struct {
	Items      []InventoryItem
	TotalStock int
	TotalValue shopkeeper.Money
}

// InventoryItem is a row of the stock table.
type InventoryItem struct {
	Name  string
	Stock int
	Price shopkeeper.Money
	Value shopkeeper.Money // Stock at Price
}

// NewInventory creates the stock table of inv.
func NewInventory(inv *shopkeeper.Inventory, currency string) *Inventory {
	r := &Inventory{TotalValue: shopkeeper.M(0, currency)}
	for it := range inv.Items() {
		row := InventoryItem{Name: it.Name, Stock: it.Stock, Price: it.Price, Value: it.Price.Mul(it.Stock)}
		r.Items = append(r.Items, row)
		r.TotalStock += it.Stock
		r.TotalValue = r.TotalValue.Add(row.Value)
	}
	return r
}
