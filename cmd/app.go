// Package cmd implements the sk command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/shopkeeper"
	"github.com/etnz/shopkeeper/config"
	"github.com/etnz/shopkeeper/logger"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&inventoryCmd{}, "inventory")
	c.Register(&addItemCmd{}, "inventory")
	c.Register(&restockCmd{}, "inventory")

	c.Register(&orderCmd{}, "orders")
	c.Register(&historyCmd{}, "orders")
	c.Register(&invoiceCmd{}, "orders")
	c.Register(&exportCmd{}, "orders")

	c.Register(&fontCmd{}, "documents")
	c.Register(&topicCmd{}, "documents")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var envFile = flag.String("env", "", "Path to a .env file with SK_* settings. Defaults to .env if it exists.")
var dataDir = flag.String("data", "", "Directory of inventory.csv and orders.csv. Overrides "+config.EnvDataDir+".")

// EnvTestingNow freezes the clock of the shop, e.g. "2006-01-02 15:04:05".
// Documentation examples use it to get stable invoice ids and dates.
const EnvTestingNow = "SK_TESTING_NOW"

// Verbose enables info and debug logs on stderr.
var Verbose = flag.Bool("v", false, "Verbose logging.")

// setup loads the configuration and builds the logger for a command.
func setup() (*config.Config, *zap.Logger, error) {
	if *dataDir != "" {
		// The flag wins over both the environment and the .env file.
		os.Setenv(config.EnvDataDir, *dataDir)
	}
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, nil, err
	}
	// stderr is always writable, failing to build the logger is a bug.
	return cfg, logger.Must(logger.New(*Verbose)), nil
}

// newStore returns the file store configured by cfg.
func newStore(cfg *config.Config) *shopkeeper.FileStore {
	return &shopkeeper.FileStore{
		InventoryPath: cfg.Data.InventoryFile,
		LedgerPath:    cfg.Data.LedgerFile,
		Currency:      cfg.Store.Currency,
	}
}

// openShop opens the shop configured by cfg.
//
// A missing inventory file is an error, unless allowMissing is set: then the
// shop starts with an empty inventory, created on the first save.
func openShop(cfg *config.Config, log *zap.Logger, allowMissing bool) (*shopkeeper.Shop, error) {
	store := newStore(cfg)
	opts := shopkeeper.Options{
		Currency:        cfg.Store.Currency,
		TaxRate:         cfg.Store.TaxRate,
		RequireCustomer: cfg.Store.RequireCustomer,
	}
	shop, err := shopkeeper.Open(store, opts, logger.Named(log, "shop"))
	if errors.Is(err, shopkeeper.ErrMissingDataFile) && allowMissing {
		ledger, lerr := store.LoadLedger()
		if lerr != nil {
			return nil, lerr
		}
		log.Warn("inventory file does not exist, starting with an empty inventory", zap.String("path", store.InventoryPath))
		shop, err = shopkeeper.New(store, shopkeeper.NewInventory(), ledger, opts, logger.Named(log, "shop"))
	}
	if err != nil {
		return nil, err
	}

	if now := os.Getenv(EnvTestingNow); now != "" {
		at, err := time.Parse(time.DateTime, now)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvTestingNow, err)
		}
		shop.SetClock(func() time.Time { return at })
	}
	return shop, nil
}

// retryPersistence runs op, and runs it once more if its changes could not be persisted.
// A failed operation leaves the shop unchanged, so running it again is safe.
func retryPersistence(log *zap.Logger, op func() error) error {
	err := op()
	if errors.Is(err, shopkeeper.ErrPersistence) {
		log.Warn("could not persist changes, retrying", zap.Error(err))
		err = op()
	}
	return err
}
