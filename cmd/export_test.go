package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/etnz/shopkeeper"
	"go.uber.org/zap"
)

func TestExport(t *testing.T) {
	cfg := testConfig(t)
	writeInventory(t, cfg, "Item,Stock,Price\nShoes,20,750\nRice,100,60\n")
	t.Setenv(EnvTestingNow, "2025-07-01 14:30:00")

	shop, err := openShop(cfg, zap.NewNop(), false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := shop.PlaceOrder(shopkeeper.OrderRequest{Item: "Shoes", Quantity: 2, CustomerName: "Asha", CustomerEmail: "asha@example.com"}); err != nil {
		t.Fatal(err)
	}

	var ledger bytes.Buffer
	if err := export(&ledger, newStore(cfg), false); err != nil {
		t.Fatalf("export() error = %v", err)
	}
	want := "Invoice,Date,Customer,Email,Item,Quantity,Price,GST,Total\n" +
		"INV20250701143000,2025-07-01,Asha,asha@example.com,Shoes,2,750,195,1695\n"
	if ledger.String() != want {
		t.Errorf("export() ledger:\ngot:\n%s\nwant:\n%s", ledger.String(), want)
	}

	var inv bytes.Buffer
	if err := export(&inv, newStore(cfg), true); err != nil {
		t.Fatalf("export(inventory) error = %v", err)
	}
	if want := "Item,Stock,Price\nShoes,18,750\nRice,100,60\n"; inv.String() != want {
		t.Errorf("export() inventory:\ngot:\n%s\nwant:\n%s", inv.String(), want)
	}
}

func TestExport_MissingInventory(t *testing.T) {
	cfg := testConfig(t)
	var b bytes.Buffer
	if err := export(&b, newStore(cfg), true); !errors.Is(err, shopkeeper.ErrMissingDataFile) {
		t.Errorf("export() error = %v, want %v", err, shopkeeper.ErrMissingDataFile)
	}
	b.Reset()
	if err := export(&b, newStore(cfg), false); err != nil {
		t.Errorf("export() of a missing ledger error = %v", err)
	}
}
