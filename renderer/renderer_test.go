package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/shopkeeper"
	"github.com/etnz/shopkeeper/date"
)

func inr(v int) shopkeeper.Money { return shopkeeper.M(v, "INR") }

var taxedOrder = shopkeeper.Order{
	Invoice:       "INV20250701143000",
	Date:          date.MustParse("2025-07-01"),
	CustomerName:  "Anand",
	CustomerEmail: "anand@example.in",
	Item:          "Shoes",
	Quantity:      3,
	UnitPrice:     inr(500),
	Tax:           inr(195),
	Total:         inr(1695),
}

var plainOrder = shopkeeper.Order{
	Invoice:   "INV20250701150000",
	Date:      date.MustParse("2025-07-01"),
	Item:      "Rice",
	Quantity:  2,
	UnitPrice: inr(60),
	Tax:       inr(0),
	Total:     inr(120),
}

func TestRenderInvoice(t *testing.T) {
	testCases := []struct {
		name    string
		order   shopkeeper.Order
		want    []string
		notWant []string
	}{
		{
			name:  "With customer and tax",
			order: taxedOrder,
			want: []string{
				"# Velair Store\n",
				"## Tax Invoice INV20250701143000\n",
				"* **Date:** 2025-07-01\n",
				"* **Customer:** Anand\n",
				"* **Email:** anand@example.in\n",
				"| Shoes | 3 | " + inr(500).String() + " | " + inr(1500).String() + " |\n",
				"| GST | " + inr(195).String() + " |\n",
				"| **Total** | **" + inr(1695).String() + "** |\n",
			},
		},
		{
			name:  "Without customer nor tax",
			order: plainOrder,
			want: []string{
				"* **Invoice:** INV20250701150000\n* **Date:** 2025-07-01\n\n",
				"| Rice | 2 | " + inr(60).String() + " | " + inr(120).String() + " |\n",
				"| Subtotal | " + inr(120).String() + " |\n| **Total** | **" + inr(120).String() + "** |\n",
			},
			notWant: []string{"Customer", "Email", "GST"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderInvoice(NewInvoice("Velair Store", tc.order))
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("RenderInvoice() does not contain %q, got:\n%s", w, got)
				}
			}
			for _, w := range tc.notWant {
				if strings.Contains(got, w) {
					t.Errorf("RenderInvoice() contains %q, got:\n%s", w, got)
				}
			}
		})
	}
}

func TestRenderInvoice_Deterministic(t *testing.T) {
	a := RenderInvoice(NewInvoice("Velair Store", taxedOrder))
	b := RenderInvoice(NewInvoice("Velair Store", taxedOrder))
	if a != b {
		t.Errorf("RenderInvoice() is not deterministic:\n%s\n---\n%s", a, b)
	}

	font := []byte("not really a font")
	h1, err := HTML(taxedOrder.Invoice, a, font)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	h2, err := HTML(taxedOrder.Invoice, b, font)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if !bytes.Equal(h1, h2) {
		t.Errorf("HTML() is not deterministic")
	}
}

func TestRenderInventory(t *testing.T) {
	inv := shopkeeper.NewInventory()
	for _, it := range []shopkeeper.Item{
		{Name: "Shoes", Stock: 10, Price: inr(500)},
		{Name: "Rice", Stock: 5, Price: inr(60)},
	} {
		if err := inv.Add(it); err != nil {
			t.Fatal(err)
		}
	}
	got := RenderInventory(NewInventory(inv, "INR"))
	for _, w := range []string{
		"| Item | Stock | Price | Value |\n",
		"| Shoes | 10 | " + inr(500).String() + " | " + inr(5000).String() + " |\n",
		"| Rice | 5 | " + inr(60).String() + " | " + inr(300).String() + " |\n",
		"| **Total** | **15** | | **" + inr(5300).String() + "** |",
	} {
		if !strings.Contains(got, w) {
			t.Errorf("RenderInventory() does not contain %q, got:\n%s", w, got)
		}
	}

	empty := RenderInventory(NewInventory(shopkeeper.NewInventory(), "INR"))
	if !strings.Contains(empty, "No items in stock.") {
		t.Errorf("RenderInventory(empty) = %q", empty)
	}
}

func TestRenderOrders(t *testing.T) {
	r := date.NewRange(date.MustParse("2025-07-01"), date.Monthly)
	got := RenderOrders(NewOrders([]shopkeeper.Order{taxedOrder, plainOrder}, &r, "INR"))
	for _, w := range []string{
		"Orders from 2025-07-01 to 2025-07-31.",
		"| INV20250701143000 | 2025-07-01 | Anand | Shoes | 3 | " + inr(195).String() + " | " + inr(1695).String() + " |\n",
		"| INV20250701150000 | 2025-07-01 |  | Rice | 2 | " + inr(0).String() + " | " + inr(120).String() + " |\n",
		"| **2 orders** | | | | **5** | **" + inr(195).String() + "** | **" + inr(1815).String() + "** |",
	} {
		if !strings.Contains(got, w) {
			t.Errorf("RenderOrders() does not contain %q, got:\n%s", w, got)
		}
	}

	empty := RenderOrders(NewOrders(nil, nil, "INR"))
	if empty != "# Order History\n\nNo orders.\n" {
		t.Errorf("RenderOrders(empty) = %q", empty)
	}
}

func TestHTML(t *testing.T) {
	md := RenderInvoice(NewInvoice("Velair Store", taxedOrder))

	page, err := HTML("INV20250701143000", md, nil)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	for _, w := range []string{"<title>INV20250701143000</title>", "<h1>Velair Store</h1>", "<table>", "Shoes</td>"} {
		if !bytes.Contains(page, []byte(w)) {
			t.Errorf("HTML() does not contain %q, got:\n%s", w, page)
		}
	}
	if bytes.Contains(page, []byte("@font-face")) {
		t.Errorf("HTML() without font declares a font face")
	}

	withFont, err := HTML("INV20250701143000", md, []byte{0, 1, 0, 0})
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if !bytes.Contains(withFont, []byte("@font-face")) || !bytes.Contains(withFont, []byte("base64,AAEAAA==")) {
		t.Errorf("HTML() with font does not embed it, got:\n%s", withFont)
	}
}
