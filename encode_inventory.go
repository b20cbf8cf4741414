package shopkeeper

import (
	"fmt"
	"io"
	"strconv"
)

// DecodeInventory reads an inventory table (columns Item, Stock, Price) from r.
// Amounts are read in the given currency.
func DecodeInventory(r io.Reader, currency string) (*Inventory, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	inv := NewInventory()
	if len(t.rows) == 0 && len(t.columns) == 0 {
		return inv, nil
	}
	if err := t.require(InventoryColumns...); err != nil {
		return nil, fmt.Errorf("invalid inventory: %w", err)
	}
	for i, row := range t.rows {
		if blank(row) {
			continue
		}
		line := i + 2 // header is line 1
		stock, err := parseInt(t.cell(row, colStock))
		if err != nil {
			return nil, fmt.Errorf("inventory line %d: stock: %w", line, err)
		}
		price, err := ParseMoney(t.cell(row, colPrice), currency)
		if err != nil {
			return nil, fmt.Errorf("inventory line %d: price: %w", line, err)
		}
		it := Item{Name: t.cell(row, colItem), Stock: stock, Price: price}
		if err := inv.Add(it); err != nil {
			return nil, fmt.Errorf("inventory line %d: %w", line, err)
		}
	}
	return inv, nil
}

// EncodeInventory writes the full inventory table to w.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	rows := make([][]string, 0, inv.Len())
	for it := range inv.Items() {
		rows = append(rows, []string{it.Name, strconv.Itoa(it.Stock), it.Price.Amount()})
	}
	return writeTable(w, InventoryColumns, rows)
}
