package cart

import (
	"github.com/syedahad2205/dajaj-pos/internal/domain/menu"
)

// StandardVariantLabel is the display label stored on lines of variant-less
// products (the key keeps the raw empty label).
const StandardVariantLabel = "Standard"

// AppliedAddon is one add-on applied to a line, priced per unit.
type AppliedAddon struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// LineItem is one priced, quantity-bearing entry in a cart, uniquely keyed
// by product+variant+add-on-set. LineTotal is always recomputed from the
// unit prices and quantity, never accumulated incrementally.
type LineItem struct {
	Key           menu.LineKey   `json:"-"`
	SKU           string         `json:"sku"`
	ProductID     string         `json:"product_id"`
	ProductName   string         `json:"name"`
	Variant       string         `json:"variant"`
	Quantity      int            `json:"qty"`
	UnitBasePrice float64        `json:"base_price"`
	Addons        []AppliedAddon `json:"addons"`
	LineTotal     float64        `json:"item_total"`
}

// Cart owns the in-progress order: an ordered sequence of line items keyed
// by their merge identity. Absence of a key means quantity zero; there is
// no separate zero-quantity state. A cart belongs to one interactive
// session and is not safe for concurrent use.
type Cart struct {
	catalog *menu.Catalog
	items   []*LineItem
	index   map[menu.LineKey]int
}

// New creates an empty cart backed by the given catalog.
func New(catalog *menu.Catalog) *Cart {
	return &Cart{
		catalog: catalog,
		index:   make(map[menu.LineKey]int),
	}
}

// SetQuantity sets the quantity for a (product, variant, add-on set)
// selection. Quantities <= 0 remove the line (a no-op if absent). On
// update the line's prices are recomputed fresh from the catalog and its
// position in the cart is preserved; new lines append at the end.
func (c *Cart) SetQuantity(product *menu.Product, variant string, addonIDs []string, quantity int) {
	key := menu.NewLineKey(product.ID, variant, addonIDs)

	if quantity <= 0 {
		c.removeKey(key)
		return
	}

	item := c.buildLine(product, variant, key, quantity, addonIDs)
	if pos, ok := c.index[key]; ok {
		c.items[pos] = item
		return
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, item)
}

// Increment adjusts the quantity for a selection by delta (negative deltas
// decrement; at or below zero the line is removed).
func (c *Cart) Increment(product *menu.Product, variant string, addonIDs []string, delta int) {
	key := menu.NewLineKey(product.ID, variant, addonIDs)
	c.SetQuantity(product, variant, addonIDs, c.QuantityFor(key)+delta)
}

// Remove deletes the line for a key. No-op if the key is absent.
func (c *Cart) Remove(key menu.LineKey) {
	c.removeKey(key)
}

// QuantityFor returns the quantity for an exact key, 0 if absent.
func (c *Cart) QuantityFor(key menu.LineKey) int {
	if pos, ok := c.index[key]; ok {
		return c.items[pos].Quantity
	}
	return 0
}

// VariantQuantity sums quantities across all lines for a product variant
// regardless of add-on set. Drives the one-number-per-variant stepper while
// distinct add-on combinations stay separate lines internally.
func (c *Cart) VariantQuantity(productID, variant string) int {
	total := 0
	for _, item := range c.items {
		if item.Key.ProductID == productID && item.Key.Variant == variant {
			total += item.Quantity
		}
	}
	return total
}

// AggregateQuantity sums quantities across all lines for a product
// regardless of variant. Used for variant-less product categories.
func (c *Cart) AggregateQuantity(productID string) int {
	total := 0
	for _, item := range c.items {
		if item.Key.ProductID == productID {
			total += item.Quantity
		}
	}
	return total
}

// DecrementVariant removes one unit from the variant's lines: the
// add-on-free line first if present, otherwise the first matching line in
// insertion order. Returns false when the variant has no lines.
func (c *Cart) DecrementVariant(product *menu.Product, variant string) bool {
	bareKey := menu.NewLineKey(product.ID, variant, nil)
	if qty := c.QuantityFor(bareKey); qty > 0 {
		c.SetQuantity(product, variant, nil, qty-1)
		return true
	}
	for _, item := range c.items {
		if item.Key.ProductID == product.ID && item.Key.Variant == variant {
			c.SetQuantity(product, variant, item.Key.AddonIDs(), item.Quantity-1)
			return true
		}
	}
	return false
}

// Items returns a snapshot copy of the cart lines in insertion order.
func (c *Cart) Items() []LineItem {
	snapshot := make([]LineItem, len(c.items))
	for i, item := range c.items {
		snapshot[i] = *item
		snapshot[i].Addons = append([]AppliedAddon(nil), item.Addons...)
	}
	return snapshot
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Reset empties the cart. Called after a bill is finalized.
func (c *Cart) Reset() {
	c.items = nil
	c.index = make(map[menu.LineKey]int)
}

func (c *Cart) buildLine(product *menu.Product, variant string, key menu.LineKey, quantity int, addonIDs []string) *LineItem {
	basePrice := product.VariantPrice(variant)

	var applied []AppliedAddon
	addonTotal := 0.0
	for _, addonID := range addonIDs {
		addon, ok := c.catalog.Addon(addonID)
		if !ok {
			continue
		}
		price := addon.PriceFor(variant)
		applied = append(applied, AppliedAddon{Name: addon.Name, UnitPrice: price})
		addonTotal += price
	}

	display := variant
	if display == "" {
		display = StandardVariantLabel
	}

	return &LineItem{
		Key:           key,
		SKU:           menu.GenerateSKU(product.ID, variant, addonIDs),
		ProductID:     product.ID,
		ProductName:   product.Name,
		Variant:       display,
		Quantity:      quantity,
		UnitBasePrice: basePrice,
		Addons:        applied,
		LineTotal:     (basePrice + addonTotal) * float64(quantity),
	}
}

func (c *Cart) removeKey(key menu.LineKey) {
	pos, ok := c.index[key]
	if !ok {
		return
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, key)
	for i := pos; i < len(c.items); i++ {
		c.index[c.items[i].Key] = i
	}
}
