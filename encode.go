package shopkeeper

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column names of the data files.
const (
	colItem     = "Item"
	colStock    = "Stock"
	colPrice    = "Price"
	colInvoice  = "Invoice"
	colDate     = "Date"
	colCustomer = "Customer"
	colEmail    = "Email"
	colQuantity = "Quantity"
	colTax      = "GST"
	colTotal    = "Total"
)

// InventoryColumns is the header written to inventory files.
var InventoryColumns = []string{colItem, colStock, colPrice}

// LedgerColumns is the header written to ledger files.
var LedgerColumns = []string{colInvoice, colDate, colCustomer, colEmail, colItem, colQuantity, colPrice, colTax, colTotal}

// table is a decoded CSV file with columns located by name.
type table struct {
	columns map[string]int // lower cased header name to index
	rows    [][]string
}

// readTable reads a full CSV table, the first record being the header.
// An empty input is an empty table.
func readTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, missing cells are empty
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}
	t := &table{columns: make(map[string]int)}
	if len(records) == 0 {
		return t, nil
	}
	for i, name := range records[0] {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if name != "" {
			t.columns[name] = i
		}
	}
	t.rows = records[1:]
	return t, nil
}

// has reports whether the column exists.
func (t *table) has(col string) bool {
	_, ok := t.columns[strings.ToLower(col)]
	return ok
}

// require returns an error listing the missing columns.
func (t *table) require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns %s", strings.Join(missing, ", "))
	}
	return nil
}

// cell returns the trimmed value of col in row, "" if absent.
func (t *table) cell(row []string, col string) string {
	i, ok := t.columns[strings.ToLower(col)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// blank reports whether the row has no content at all.
func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseInt parses integer cells, accepting "3.0" as written by spreadsheet tools.
func parseInt(s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int(f), nil
}

// writeTable writes the header and rows, flushing at the end.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil { // WriteAll flushes
		return fmt.Errorf("could not write csv: %w", err)
	}
	return nil
}
