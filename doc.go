// Package shopkeeper provides the inventory, the order ledger and the order
// engine of a small retail shop. It is local-first: the data lives in two CSV
// files that stay readable and editable with a spreadsheet.
//
// The core functionalities include:
//   - Inventory: the table of items with their stock and unit price.
//   - Ledger: the append-only record of orders, each with its invoice id.
//   - Shop: places orders and restocks items. Every change is staged, then
//     persisted through a Store, and only then made visible, so that a failed
//     write never leaves the shop half updated.
//   - Persistence: the CSV codecs and the FileStore, which replaces files
//     atomically and writes an order to both files or to none.
//
// This package serves as the foundational logic for the `sk` command-line
// tool. Rendering lives in the renderer package.
package shopkeeper
