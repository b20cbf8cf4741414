// Package config loads the shopkeeper configuration from the environment,
// optionally read from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/etnz/shopkeeper/font"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Environment variables.
const (
	EnvDataDir         = "SK_DATA_DIR"
	EnvInventoryFile   = "SK_INVENTORY_FILE"
	EnvLedgerFile      = "SK_LEDGER_FILE"
	EnvInvoiceDir      = "SK_INVOICE_DIR"
	EnvStoreName       = "SK_STORE_NAME"
	EnvCurrency        = "SK_CURRENCY"
	EnvTaxRate         = "SK_TAX_RATE"
	EnvRequireCustomer = "SK_REQUIRE_CUSTOMER"
	EnvFontURL         = "SK_FONT_URL"
	EnvFontCache       = "SK_FONT_CACHE"
)

// Config is the full configuration of the shop.
type Config struct {
	Store   StoreConfig
	Data    DataConfig
	Invoice InvoiceConfig
}

// StoreConfig describes the shop variant.
type StoreConfig struct {
	Name            string
	Currency        string
	TaxRate         decimal.Decimal
	RequireCustomer bool
}

// DataConfig locates the data files.
type DataConfig struct {
	Dir           string
	InventoryFile string
	LedgerFile    string
}

// InvoiceConfig locates invoice documents and their font.
type InvoiceConfig struct {
	Dir       string
	FontURL   string
	FontCache string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance. A missing default .env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	dir := getenvWithDefault(EnvDataDir, ".")
	cfg := &Config{
		Store: StoreConfig{
			Name:     getenvWithDefault(EnvStoreName, "New Footwear & Rice Merchants"),
			Currency: getenvWithDefault(EnvCurrency, "INR"),
		},
		Data: DataConfig{
			Dir:           dir,
			InventoryFile: getenvWithDefault(EnvInventoryFile, filepath.Join(dir, "inventory.csv")),
			LedgerFile:    getenvWithDefault(EnvLedgerFile, filepath.Join(dir, "orders.csv")),
		},
		Invoice: InvoiceConfig{
			Dir:       getenvWithDefault(EnvInvoiceDir, "invoices"),
			FontURL:   getenvWithDefault(EnvFontURL, font.DefaultURL),
			FontCache: getenvWithDefault(EnvFontCache, filepath.Join(dir, "fonts", "invoice.ttf")),
		},
	}

	var err error
	if cfg.Store.TaxRate, err = decimal.NewFromString(getenvWithDefault(EnvTaxRate, "0")); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvTaxRate, err)
	}
	if cfg.Store.RequireCustomer, err = strconv.ParseBool(getenvWithDefault(EnvRequireCustomer, "false")); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvRequireCustomer, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that required configuration fields are consistent.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch {
	case c.Store.Name == "":
		return errors.New(EnvStoreName + " must not be empty")
	case len(c.Store.Currency) != 3:
		return fmt.Errorf("%s must be an ISO 4217 code, got %q", EnvCurrency, c.Store.Currency)
	case c.Store.TaxRate.IsNegative():
		return fmt.Errorf("%s must not be negative, got %s", EnvTaxRate, c.Store.TaxRate)
	case c.Store.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return fmt.Errorf("%s is a rate, e.g. 0.13, got %s", EnvTaxRate, c.Store.TaxRate)
	case c.Data.InventoryFile == "":
		return errors.New(EnvInventoryFile + " must not be empty")
	case c.Data.LedgerFile == "":
		return errors.New(EnvLedgerFile + " must not be empty")
	case c.Invoice.Dir == "":
		return errors.New(EnvInvoiceDir + " must not be empty")
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
