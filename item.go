package shopkeeper

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Item is a sellable product.
type Item struct {
	Name  string
	Stock int
	Price Money
}

// Validate checks the item invariants: non empty name, non negative stock and price.
func (it Item) Validate() error {
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidItem)
	}
	if it.Stock < 0 {
		return fmt.Errorf("%w: negative stock %d for %q", ErrInvalidItem, it.Stock, it.Name)
	}
	if it.Price.IsNegative() {
		return fmt.Errorf("%w: negative price %s for %q", ErrInvalidItem, it.Price.Amount(), it.Name)
	}
	return nil
}

// Inventory is the table of items, one row per item name.
//
// Items keep the order in which they were added, which is the order of the
// data file.
type Inventory struct {
	items []Item
	index map[string]int // index items by name
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{index: make(map[string]int)}
}

// Add appends a new item to the inventory.
func (inv *Inventory) Add(it Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if _, exists := inv.index[it.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateItem, it.Name)
	}
	inv.index[it.Name] = len(inv.items)
	inv.items = append(inv.items, it)
	return nil
}

// Item returns the item with this name.
func (inv *Inventory) Item(name string) (Item, bool) {
	i, ok := inv.index[name]
	if !ok {
		return Item{}, false
	}
	return inv.items[i], true
}

// Items iterates over items in file order.
func (inv *Inventory) Items() iter.Seq[Item] { return slices.Values(inv.items) }

// Names returns the item names in file order.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.items))
	for _, it := range inv.items {
		names = append(names, it.Name)
	}
	return names
}

// Len returns the number of items.
func (inv *Inventory) Len() int { return len(inv.items) }

// Equal reports whether both inventories hold the same rows in the same order.
func (inv *Inventory) Equal(other *Inventory) bool {
	return slices.EqualFunc(inv.items, other.items, func(a, b Item) bool {
		return a.Name == b.Name && a.Stock == b.Stock && a.Price.Equal(b.Price)
	})
}

// setStock changes the stock of an existing item.
func (inv *Inventory) setStock(name string, stock int) {
	inv.items[inv.index[name]].Stock = stock
}

// clone returns an independent copy, used to stage a transaction.
func (inv *Inventory) clone() *Inventory {
	c := &Inventory{
		items: slices.Clone(inv.items),
		index: make(map[string]int, len(inv.index)),
	}
	for k, v := range inv.index {
		c.index[k] = v
	}
	return c
}
