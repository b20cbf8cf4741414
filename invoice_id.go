package shopkeeper

import (
	"fmt"
	"time"
)

// InvoicePrefix is the literal prefix of every generated invoice id.
const InvoicePrefix = "INV"

const invoiceTimeFormat = "20060102150405"

// InvoiceIDs generates invoice ids from the transaction time.
//
// Ids have the form INV20250701143000. Further ids generated within the same
// second get a monotonic suffix (INV20250701143000-2, -3, ...).
type InvoiceIDs struct {
	base string // last timestamp part used
	seq  int    // number of ids issued for base
}

// Next returns the next id for a transaction at time t.
func (g *InvoiceIDs) Next(t time.Time) string {
	base := InvoicePrefix + t.Format(invoiceTimeFormat)
	if base != g.base {
		g.base, g.seq = base, 1
		return base
	}
	g.seq++
	return fmt.Sprintf("%s-%d", base, g.seq)
}
