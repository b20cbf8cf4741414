package shopkeeper

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// memStore is an in memory Store that can be told to fail.
type memStore struct {
	inventory *Inventory
	ledger    *Ledger
	fail      bool // fail every write
	writes    int  // number of successful writes
}

var errDiskFull = errors.New("disk full")

func (m *memStore) LoadInventory() (*Inventory, error) {
	if m.inventory == nil {
		return nil, ErrMissingDataFile
	}
	return m.inventory.clone(), nil
}

func (m *memStore) LoadLedger() (*Ledger, error) {
	if m.ledger == nil {
		return NewLedger(), nil
	}
	return m.ledger.clone(), nil
}

func (m *memStore) SaveInventory(inv *Inventory) error {
	if m.fail {
		return fmt.Errorf("%w: %v", ErrPersistence, errDiskFull)
	}
	m.inventory = inv.clone()
	m.writes++
	return nil
}

func (m *memStore) Commit(inv *Inventory, ledger *Ledger) error {
	if m.fail {
		return fmt.Errorf("%w: %v", ErrPersistence, errDiskFull)
	}
	m.inventory, m.ledger = inv.clone(), ledger.clone()
	m.writes++
	return nil
}

// newTestInventory builds an inventory from name, stock, price triplets.
func newTestInventory(t *testing.T, items ...Item) *Inventory {
	t.Helper()
	inv := NewInventory()
	for _, it := range items {
		if err := inv.Add(it); err != nil {
			t.Fatalf("Add(%v) error = %v", it, err)
		}
	}
	return inv
}

// newTestShop opens a shop on a memStore holding items, with a fixed clock.
func newTestShop(t *testing.T, opts Options, items ...Item) (*Shop, *memStore) {
	t.Helper()
	store := &memStore{inventory: newTestInventory(t, items...)}
	shop, err := Open(store, opts, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	shop.SetClock(func() time.Time { return time.Date(2025, time.July, 1, 14, 30, 0, 0, time.UTC) })
	return shop, store
}

func stockOf(t *testing.T, inv *Inventory, name string) int {
	t.Helper()
	it, ok := inv.Item(name)
	if !ok {
		t.Fatalf("item %q not found", name)
	}
	return it.Stock
}
