package cart

import (
	"math"
	"testing"

	"github.com/syedahad2205/dajaj-pos/internal/domain/menu"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateTotalsEmpty(t *testing.T) {
	totals := CalculateTotals(nil)
	if totals.Subtotal != 0 || totals.CGST != 0 || totals.SGST != 0 || totals.GrandTotal != 0 {
		t.Errorf("empty cart totals should all be zero, got %+v", totals)
	}
}

func TestCalculateTotalsInclusiveTax(t *testing.T) {
	// Two Roll shawarmas with cheese (50+20 = 70 each) plus three khubbus:
	// subtotal 140 + 30 = 170, tax split 4.25 each, grand total unchanged.
	catalog := menu.NewCatalog()
	c := New(catalog)

	reg, _ := catalog.Product("shw-reg")
	khubbus, _ := catalog.Product("khubbus")
	c.SetQuantity(reg, "Roll", []string{"cheese"}, 2)
	c.SetQuantity(khubbus, "", nil, 3)

	totals := c.Totals()
	if !almostEqual(totals.Subtotal, 170) {
		t.Errorf("Subtotal = %v, want 170", totals.Subtotal)
	}
	if !almostEqual(totals.CGST, 4.25) {
		t.Errorf("CGST = %v, want 4.25", totals.CGST)
	}
	if !almostEqual(totals.SGST, 4.25) {
		t.Errorf("SGST = %v, want 4.25", totals.SGST)
	}
	if !almostEqual(totals.GrandTotal, 170) {
		t.Errorf("GrandTotal = %v, want 170 (tax-inclusive)", totals.GrandTotal)
	}
}

func TestTaxHalvesAreSymmetric(t *testing.T) {
	items := []LineItem{
		{LineTotal: 99.99},
		{LineTotal: 0.01},
	}
	totals := CalculateTotals(items)
	if totals.CGST != totals.SGST {
		t.Errorf("CGST (%v) and SGST (%v) must be identical", totals.CGST, totals.SGST)
	}
	if !almostEqual(totals.CGST, totals.GrandTotal*SplitGSTRate) {
		t.Errorf("CGST = %v, want %v", totals.CGST, totals.GrandTotal*SplitGSTRate)
	}
}
