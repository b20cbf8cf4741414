package shopkeeper

import (
	"errors"
	"slices"
	"testing"

	"github.com/etnz/shopkeeper/date"
)

func TestLedger(t *testing.T) {
	ledger := NewLedger()
	if _, ok := ledger.Last(); ok {
		t.Fatal("Last() on an empty ledger returned an order")
	}

	on := date.MustParse("2025-07-01")
	ledger.Append(
		Order{Invoice: "INV20250701143000", Date: on, Item: "Shoes", Quantity: 2, UnitPrice: INR(750), Tax: INR(0), Total: INR(1500)},
		Order{Date: on, Item: "Rice", Quantity: 1, UnitPrice: INR(60), Tax: INR(0), Total: INR(60)}, // legacy row without invoice
		Order{Invoice: "INV20250701143000-2", Date: on, Item: "Rice", Quantity: 3, UnitPrice: INR(60), Tax: INR(0), Total: INR(180)},
	)

	if ledger.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ledger.Len())
	}
	if !ledger.Has("INV20250701143000") || !ledger.Has("INV20250701143000-2") {
		t.Errorf("Has() does not find appended invoices")
	}
	if ledger.Has("") {
		t.Errorf("Has(\"\") = true, orders without invoice must not be indexed")
	}
	o, ok := ledger.Order("INV20250701143000-2")
	if !ok || o.Quantity != 3 {
		t.Errorf("Order() = %v, %v, want the second Rice order", o, ok)
	}
	last, _ := ledger.Last()
	if last.Invoice != "INV20250701143000-2" {
		t.Errorf("Last() = %q, want %q", last.Invoice, "INV20250701143000-2")
	}

	var items []string
	for o := range ledger.Orders() {
		items = append(items, o.Item)
	}
	if want := []string{"Shoes", "Rice", "Rice"}; !slices.Equal(items, want) {
		t.Errorf("Orders() = %v, want %v", items, want)
	}
}

func TestLedger_Clone(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(Order{Invoice: "INV1", Item: "Shoes", Quantity: 1, UnitPrice: INR(750), Tax: INR(0), Total: INR(750)})

	staged := ledger.clone()
	staged.Append(Order{Invoice: "INV2", Item: "Rice", Quantity: 1, UnitPrice: INR(60), Tax: INR(0), Total: INR(60)})

	if ledger.Len() != 1 || ledger.Has("INV2") {
		t.Errorf("appending to a clone changed the original ledger")
	}
	if ledger.Equal(staged) {
		t.Errorf("Equal() = true for ledgers of different length")
	}
}

func TestInventory(t *testing.T) {
	inv := newTestInventory(t, shoes, rice)

	if got, want := inv.Names(), []string{"Shoes", "Rice"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if _, ok := inv.Item("shoes"); ok {
		t.Errorf("Item() matched a name with a different case")
	}

	testCases := []struct {
		name string
		item Item
		want error
	}{
		{"Duplicate", Item{Name: "Shoes", Stock: 1, Price: INR(1)}, ErrDuplicateItem},
		{"Empty name", Item{Name: "  ", Stock: 1, Price: INR(1)}, ErrInvalidItem},
		{"Negative stock", Item{Name: "Bread", Stock: -1, Price: INR(1)}, ErrInvalidItem},
		{"Negative price", Item{Name: "Bread", Stock: 1, Price: INR(-1)}, ErrInvalidItem},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := inv.Add(tc.item); !errors.Is(err, tc.want) {
				t.Errorf("Add() error = %v, want %v", err, tc.want)
			}
		})
	}
	if inv.Len() != 2 {
		t.Errorf("rejected items were added: Len() = %d, want 2", inv.Len())
	}

	staged := inv.clone()
	staged.setStock("Shoes", 0)
	if stockOf(t, inv, "Shoes") != shoes.Stock {
		t.Errorf("changing the stock of a clone changed the original inventory")
	}
	if inv.Equal(staged) {
		t.Errorf("Equal() = true for inventories with different stock")
	}
}
