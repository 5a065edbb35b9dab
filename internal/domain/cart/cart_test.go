package cart

import (
	"testing"

	"github.com/syedahad2205/dajaj-pos/internal/domain/menu"
)

func testCart(t *testing.T) (*Cart, *menu.Catalog) {
	t.Helper()
	catalog := menu.NewCatalog()
	return New(catalog), catalog
}

func product(t *testing.T, catalog *menu.Catalog, id string) *menu.Product {
	t.Helper()
	p, ok := catalog.Product(id)
	if !ok {
		t.Fatalf("product %q should exist", id)
	}
	return p
}

func TestSetQuantityAddsLine(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	c.SetQuantity(reg, "Roll", nil, 2)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	line := items[0]
	if line.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", line.Quantity)
	}
	if line.UnitBasePrice != 50 {
		t.Errorf("UnitBasePrice = %v, want 50", line.UnitBasePrice)
	}
	if line.LineTotal != 100 {
		t.Errorf("LineTotal = %v, want 100", line.LineTotal)
	}
	if line.SKU != "SHW-REG-ROLL" {
		t.Errorf("SKU = %q, want SHW-REG-ROLL", line.SKU)
	}
}

func TestIdenticalSelectionsMerge(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	c.Increment(reg, "Roll", []string{"cheese", "fries"}, 1)
	c.Increment(reg, "Roll", []string{"fries", "cheese"}, 1)

	if c.Len() != 1 {
		t.Fatalf("same selection in different add-on order should merge, got %d lines", c.Len())
	}
	if got := c.Items()[0].Quantity; got != 2 {
		t.Errorf("merged quantity = %d, want 2", got)
	}
}

func TestDistinctAddonSetsStaySeparate(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	c.Increment(reg, "Roll", nil, 1)
	c.Increment(reg, "Roll", []string{"cheese"}, 1)

	if c.Len() != 2 {
		t.Fatalf("distinct add-on sets should be separate lines, got %d", c.Len())
	}
	if got := c.VariantQuantity("shw-reg", "Roll"); got != 2 {
		t.Errorf("VariantQuantity = %d, want 2", got)
	}
}

func TestZeroQuantityRemovesLine(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	c.SetQuantity(reg, "Roll", nil, 3)
	c.SetQuantity(reg, "Roll", nil, 0)

	if c.Len() != 0 {
		t.Errorf("zero quantity should remove the line, got %d lines", c.Len())
	}

	// Negative quantities behave the same; removing an absent line is a no-op.
	c.SetQuantity(reg, "Roll", nil, -1)
	if c.Len() != 0 {
		t.Errorf("negative quantity should leave the cart empty, got %d lines", c.Len())
	}
}

func TestIncrementBelowZeroRemoves(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	c.SetQuantity(reg, "Roll", nil, 1)
	c.Increment(reg, "Roll", nil, -2)

	if c.Len() != 0 {
		t.Errorf("decrement past zero should remove the line, got %d lines", c.Len())
	}
}

func TestLineTotalRecomputedOnUpdate(t *testing.T) {
	c, catalog := testCart(t)
	peri := product(t, catalog, "shw-peri")

	c.SetQuantity(peri, "Plate", []string{"cheese"}, 1)
	c.SetQuantity(peri, "Plate", []string{"cheese"}, 3)

	line := c.Items()[0]
	// Plate 110 + cheese on Plate 30 = 140 per unit.
	if line.LineTotal != 420 {
		t.Errorf("LineTotal = %v, want 420", line.LineTotal)
	}
}

func TestUpdatePreservesPosition(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")
	peri := product(t, catalog, "shw-peri")
	khubbus := product(t, catalog, "khubbus")

	c.SetQuantity(reg, "Roll", nil, 1)
	c.SetQuantity(peri, "Roll", nil, 1)
	c.SetQuantity(khubbus, "", nil, 1)

	// Updating the middle line must not move it.
	c.SetQuantity(peri, "Roll", nil, 5)

	items := c.Items()
	want := []string{"shw-reg", "shw-peri", "khubbus"}
	for i, id := range want {
		if items[i].ProductID != id {
			t.Errorf("position %d = %q, want %q", i, items[i].ProductID, id)
		}
	}
	if items[1].Quantity != 5 {
		t.Errorf("updated quantity = %d, want 5", items[1].Quantity)
	}
}

func TestRemoveReindexes(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")
	peri := product(t, catalog, "shw-peri")
	khubbus := product(t, catalog, "khubbus")

	c.SetQuantity(reg, "Roll", nil, 1)
	c.SetQuantity(peri, "Roll", nil, 1)
	c.SetQuantity(khubbus, "", nil, 1)

	c.Remove(menu.NewLineKey("shw-peri", "Roll", nil))

	if c.Len() != 2 {
		t.Fatalf("expected 2 lines after removal, got %d", c.Len())
	}
	// The index must still resolve the shifted line.
	if got := c.QuantityFor(menu.NewLineKey("khubbus", "", nil)); got != 1 {
		t.Errorf("khubbus quantity after reindex = %d, want 1", got)
	}
}

func TestDecrementVariantPrefersBareLine(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	c.SetQuantity(reg, "Roll", []string{"cheese"}, 2)
	c.SetQuantity(reg, "Roll", nil, 2)

	if !c.DecrementVariant(reg, "Roll") {
		t.Fatal("decrement should succeed")
	}

	if got := c.QuantityFor(menu.NewLineKey("shw-reg", "Roll", nil)); got != 1 {
		t.Errorf("bare line quantity = %d, want 1", got)
	}
	if got := c.QuantityFor(menu.NewLineKey("shw-reg", "Roll", []string{"cheese"})); got != 2 {
		t.Errorf("add-on line quantity = %d, want 2 (untouched)", got)
	}
}

func TestDecrementVariantRemovesExhaustedBareLine(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	c.SetQuantity(reg, "Roll", nil, 1)
	c.SetQuantity(reg, "Roll", []string{"cheese"}, 2)

	if !c.DecrementVariant(reg, "Roll") {
		t.Fatal("decrement should succeed")
	}

	// The bare line hits zero and disappears; the add-on line is never
	// partially decremented while a bare line exists.
	if c.Len() != 1 {
		t.Fatalf("expected 1 remaining line, got %d", c.Len())
	}
	if got := c.QuantityFor(menu.NewLineKey("shw-reg", "Roll", []string{"cheese"})); got != 2 {
		t.Errorf("cheese line quantity = %d, want 2", got)
	}
}

func TestDecrementVariantFallsBackToFirstLine(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	c.SetQuantity(reg, "Roll", []string{"cheese"}, 1)
	c.SetQuantity(reg, "Roll", []string{"fries"}, 3)

	if !c.DecrementVariant(reg, "Roll") {
		t.Fatal("decrement should succeed")
	}

	// No bare line exists; the first line in insertion order loses a unit
	// and, reaching zero, disappears.
	if got := c.QuantityFor(menu.NewLineKey("shw-reg", "Roll", []string{"cheese"})); got != 0 {
		t.Errorf("cheese line quantity = %d, want 0", got)
	}
	if got := c.QuantityFor(menu.NewLineKey("shw-reg", "Roll", []string{"fries"})); got != 3 {
		t.Errorf("fries line quantity = %d, want 3", got)
	}
}

func TestDecrementVariantEmptyReturnsFalse(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	if c.DecrementVariant(reg, "Roll") {
		t.Error("decrement on an empty cart should report false")
	}
}

func TestVariantlessDisplayLabel(t *testing.T) {
	c, catalog := testCart(t)
	khubbus := product(t, catalog, "khubbus")

	c.SetQuantity(khubbus, "", nil, 1)

	line := c.Items()[0]
	if line.Variant != StandardVariantLabel {
		t.Errorf("Variant = %q, want %q", line.Variant, StandardVariantLabel)
	}
	// The merge key keeps the raw empty label.
	if got := c.QuantityFor(menu.NewLineKey("khubbus", "", nil)); got != 1 {
		t.Errorf("lookup by raw empty variant = %d, want 1", got)
	}
}

func TestAggregateQuantity(t *testing.T) {
	c, catalog := testCart(t)
	grill := product(t, catalog, "grill-chicken")

	c.SetQuantity(grill, "Qtr", nil, 2)
	c.SetQuantity(grill, "Half", nil, 1)

	if got := c.AggregateQuantity("grill-chicken"); got != 3 {
		t.Errorf("AggregateQuantity = %d, want 3", got)
	}
}

func TestItemsReturnsSnapshot(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	c.SetQuantity(reg, "Roll", []string{"cheese"}, 1)

	items := c.Items()
	items[0].Quantity = 99
	items[0].Addons[0].UnitPrice = 0

	fresh := c.Items()[0]
	if fresh.Quantity != 1 {
		t.Errorf("snapshot mutation leaked into cart: quantity = %d", fresh.Quantity)
	}
	if fresh.Addons[0].UnitPrice != 20 {
		t.Errorf("snapshot addon mutation leaked into cart: price = %v", fresh.Addons[0].UnitPrice)
	}
}

func TestReset(t *testing.T) {
	c, catalog := testCart(t)
	reg := product(t, catalog, "shw-reg")

	c.SetQuantity(reg, "Roll", nil, 2)
	c.Reset()

	if c.Len() != 0 {
		t.Errorf("reset cart should be empty, got %d lines", c.Len())
	}

	// The cart is reusable after reset.
	c.SetQuantity(reg, "Roll", nil, 1)
	if c.Len() != 1 {
		t.Errorf("cart should accept lines after reset, got %d", c.Len())
	}
}
