package shopkeeper

import (
	"testing"
	"time"
)

func TestInvoiceIDs_Next(t *testing.T) {
	t0 := time.Date(2025, time.July, 1, 14, 30, 0, 0, time.UTC)
	var g InvoiceIDs
	got := []string{
		g.Next(t0),
		g.Next(t0.Add(300 * time.Millisecond)),
		g.Next(t0.Add(900 * time.Millisecond)),
		g.Next(t0.Add(time.Second)),
		g.Next(t0.Add(time.Second)),
	}
	want := []string{
		"INV20250701143000",
		"INV20250701143000-2",
		"INV20250701143000-3",
		"INV20250701143001",
		"INV20250701143001-2",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Next() #%d = %q, want %q", i, got[i], want[i])
		}
	}
}
