package cart

// SplitGSTRate is each half of the combined 5% GST, presented as an
// informational breakdown of an already-tax-inclusive total.
const SplitGSTRate = 0.025

// Totals is the derived pricing summary of a set of line items. CGST and
// SGST are always the symmetric 2.5% halves of the grand total; they are
// informational, not additive, so subtotal + cgst + sgst is generally not
// equal to the grand total. Values carry full float precision and are
// rounded at display time only.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	CGST       float64 `json:"cgst"`
	SGST       float64 `json:"sgst"`
	GrandTotal float64 `json:"grand_total"`
}

// CalculateTotals derives the pricing summary from line items.
func CalculateTotals(items []LineItem) Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.LineTotal
	}
	// Prices are tax-inclusive: the grand total is the subtotal.
	grandTotal := subtotal
	return Totals{
		Subtotal:   subtotal,
		CGST:       grandTotal * SplitGSTRate,
		SGST:       grandTotal * SplitGSTRate,
		GrandTotal: grandTotal,
	}
}

// Totals derives the pricing summary for the cart's current lines.
func (c *Cart) Totals() Totals {
	items := make([]LineItem, len(c.items))
	for i, item := range c.items {
		items[i] = *item
	}
	return CalculateTotals(items)
}
