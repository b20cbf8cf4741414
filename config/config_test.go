package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// clearEnv makes sure the test does not depend on the caller environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDataDir, EnvInventoryFile, EnvLedgerFile, EnvInvoiceDir, EnvStoreName, EnvCurrency, EnvTaxRate, EnvRequireCustomer, EnvFontURL, EnvFontCache} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir()) // no .env file around

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Currency != "INR" {
		t.Errorf("Currency = %q, want INR", cfg.Store.Currency)
	}
	if !cfg.Store.TaxRate.IsZero() {
		t.Errorf("TaxRate = %s, want 0", cfg.Store.TaxRate)
	}
	if cfg.Store.RequireCustomer {
		t.Errorf("RequireCustomer = true, want false")
	}
	if want := "inventory.csv"; cfg.Data.InventoryFile != want {
		t.Errorf("InventoryFile = %q, want %q", cfg.Data.InventoryFile, want)
	}
	if want := "orders.csv"; cfg.Data.LedgerFile != want {
		t.Errorf("LedgerFile = %q, want %q", cfg.Data.LedgerFile, want)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty.
	for _, k := range []string{EnvDataDir, EnvTaxRate, EnvRequireCustomer, EnvStoreName} {
		os.Unsetenv(k)
	}
	envFile := filepath.Join(t.TempDir(), "shop.env")
	content := "SK_DATA_DIR=/srv/shop\nSK_TAX_RATE=0.13\nSK_REQUIRE_CUSTOMER=true\nSK_STORE_NAME=\"Velair Store\"\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		for _, k := range []string{EnvDataDir, EnvTaxRate, EnvRequireCustomer, EnvStoreName} {
			os.Unsetenv(k)
		}
	})

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Store.TaxRate.Equal(decimal.RequireFromString("0.13")) {
		t.Errorf("TaxRate = %s, want 0.13", cfg.Store.TaxRate)
	}
	if !cfg.Store.RequireCustomer {
		t.Errorf("RequireCustomer = false, want true")
	}
	if cfg.Store.Name != "Velair Store" {
		t.Errorf("Name = %q, want %q", cfg.Store.Name, "Velair Store")
	}
	if want := filepath.Join("/srv/shop", "inventory.csv"); cfg.Data.InventoryFile != want {
		t.Errorf("InventoryFile = %q, want %q", cfg.Data.InventoryFile, want)
	}
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name, key, value string
	}{
		{"Tax rate not a number", EnvTaxRate, "13%"},
		{"Tax rate as percent", EnvTaxRate, "13"},
		{"Negative tax rate", EnvTaxRate, "-0.1"},
		{"Bad currency", EnvCurrency, "RUPEE"},
		{"Bad boolean", EnvRequireCustomer, "maybe"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			t.Setenv(tc.key, tc.value)
			if _, err := Load(""); err == nil {
				t.Errorf("Load() with %s=%q expected an error", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Errorf("Load() with a missing env file expected an error")
	}
}
