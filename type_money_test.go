package shopkeeper

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{M(1500, "EUR"), "€1,500.00"},
		{M(19.999, "EUR"), "€20.00"},
		{M(0.5, "USD"), "$0.50"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%s.String() = %q, want %q", tc.in.Amount(), got, tc.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	price := INR(500)
	subtotal := price.Mul(3)
	if !subtotal.Equal(INR(1500)) {
		t.Errorf("Mul(3) = %s, want 1500", subtotal.Amount())
	}
	tax := subtotal.MulRate(decimal.RequireFromString("0.13")).Round()
	if !tax.Equal(INR(195)) {
		t.Errorf("MulRate(0.13) = %s, want 195", tax.Amount())
	}
	if got := INR(33.333).Round(); !got.Equal(INR(33.33)) {
		t.Errorf("Round() = %s, want 33.33", got.Amount())
	}
	if got := INR(100).Div(3).Mul(3).Round(); !got.Equal(INR(100)) {
		t.Errorf("Div(3).Mul(3) = %s, want 100", got.Amount())
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("60.50", "INR")
	if err != nil {
		t.Fatalf("ParseMoney() error = %v", err)
	}
	if !m.Equal(INR(60.5)) || m.Currency() != "INR" {
		t.Errorf("ParseMoney() = %v", m)
	}
	if _, err := ParseMoney("sixty", "INR"); err == nil {
		t.Errorf("ParseMoney(%q) expected an error", "sixty")
	}
}
