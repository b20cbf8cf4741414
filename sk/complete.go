package main

import (
	"os"
	"path/filepath"

	"github.com/etnz/shopkeeper"
	"github.com/etnz/shopkeeper/config"
	"github.com/etnz/shopkeeper/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
// Install it with COMP_INSTALL=1 sk.
func completion() *complete.Command {
	items := complete.PredictFunc(predictItems)
	topics := predict.Set(append(docs.Topics(), docs.Readme, docs.All))
	dates := predict.Set{"0d", "-1d", "-1w", "-1m", "-1y"}
	periods := predict.Set{"day", "week", "month", "quarter", "year"}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"env":  predict.Files("*.env"),
			"data": predict.Dirs("*"),
			"v":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"inventory": {},
			"add-item": {
				Flags: map[string]complete.Predictor{
					"stock": predict.Something,
					"price": predict.Something,
				},
			},
			"restock": {Args: items},
			"order": {
				Flags: map[string]complete.Predictor{
					"name":       predict.Something,
					"email":      predict.Something,
					"no-invoice": predict.Nothing,
				},
				Args: items,
			},
			"history": {
				Flags: map[string]complete.Predictor{
					"p":    periods,
					"s":    dates,
					"d":    dates,
					"item": items,
					"q":    predict.Something,
					"head": predict.Something,
					"tail": predict.Something,
				},
			},
			"invoice": {
				Flags: map[string]complete.Predictor{"w": predict.Nothing},
			},
			"export": {
				Flags: map[string]complete.Predictor{
					"o":         predict.Files("*.csv"),
					"inventory": predict.Nothing,
				},
			},
			"font":  {Flags: map[string]complete.Predictor{"f": predict.Nothing}},
			"topic": {Flags: map[string]complete.Predictor{"l": predict.Nothing}, Args: topics},
			"help":  {},
		},
	}
}

// predictItems completes item names from the inventory file.
// Flags are not parsed yet, so only the environment locates the file.
func predictItems(prefix string) []string {
	path := os.Getenv(config.EnvInventoryFile)
	if path == "" {
		dir := os.Getenv(config.EnvDataDir)
		if dir == "" {
			dir = "."
		}
		path = filepath.Join(dir, "inventory.csv")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	currency := os.Getenv(config.EnvCurrency)
	if currency == "" {
		currency = shopkeeper.DefaultCurrency
	}
	inv, err := shopkeeper.DecodeInventory(f, currency)
	if err != nil {
		return nil
	}
	return inv.Names()
}
