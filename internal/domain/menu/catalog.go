package menu

import (
	"github.com/syedahad2205/dajaj-pos/internal/domain/enum"
)

// Product is an immutable menu product. Variants maps a variant label to its
// price; variant-less products carry a single entry under the empty label.
type Product struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category enum.Category      `json:"category"`
	Variants map[string]float64 `json:"variants"`
}

// VariantPrice returns the price for a variant label, or 0 if the product
// does not offer that variant.
func (p *Product) VariantPrice(variant string) float64 {
	return p.Variants[variant]
}

// HasVariant reports whether the product offers the given variant label.
func (p *Product) HasVariant(variant string) bool {
	_, ok := p.Variants[variant]
	return ok
}

// Addon is an immutable add-on definition. PriceByVariant maps a variant
// label to the add-on price for that variant; the empty label is the
// fallback price used for any variant without an exact entry.
type Addon struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	PriceByVariant map[string]float64 `json:"price_by_variant"`
}

// PriceFor resolves the add-on price for a variant label: exact variant
// match first, then the empty-label fallback, else 0.
func (a *Addon) PriceFor(variant string) float64 {
	if price, ok := a.PriceByVariant[variant]; ok {
		return price
	}
	return a.PriceByVariant[""]
}

// AppliesTo reports whether the add-on is available for a variant label.
func (a *Addon) AppliesTo(variant string) bool {
	if _, ok := a.PriceByVariant[variant]; ok {
		return true
	}
	_, ok := a.PriceByVariant[""]
	return ok
}

// Catalog holds the static menu reference data. Loaded once at process
// start; all lookups are pure and side-effect free.
type Catalog struct {
	products  []Product
	byID      map[string]*Product
	addons    []Addon
	addonByID map[string]*Addon
}

// NewCatalog builds the DAJAJ menu catalog.
func NewCatalog() *Catalog {
	c := &Catalog{
		products: defaultProducts(),
		addons:   defaultAddons(),
	}
	c.byID = make(map[string]*Product, len(c.products))
	for i := range c.products {
		c.byID[c.products[i].ID] = &c.products[i]
	}
	c.addonByID = make(map[string]*Addon, len(c.addons))
	for i := range c.addons {
		c.addonByID[c.addons[i].ID] = &c.addons[i]
	}
	return c
}

// Products returns all menu products in menu order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Product looks up a product by ID.
func (c *Catalog) Product(id string) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Addons returns all add-on definitions.
func (c *Catalog) Addons() []Addon {
	return c.addons
}

// Addon looks up an add-on by ID.
func (c *Catalog) Addon(id string) (*Addon, bool) {
	a, ok := c.addonByID[id]
	return a, ok
}

func defaultProducts() []Product {
	return []Product{
		// Shawarmas
		{
			ID:       "shw-reg",
			Name:     "Regular Shawarma",
			Category: enum.CategoryShawarmas,
			Variants: map[string]float64{"Roll": 50, "Plate": 100},
		},
		{
			ID:       "shw-peri",
			Name:     "Peri Peri Shawarma",
			Category: enum.CategoryShawarmas,
			Variants: map[string]float64{"Roll": 60, "Plate": 110},
		},
		{
			ID:       "shw-tandoori",
			Name:     "Tandoori Shawarma",
			Category: enum.CategoryShawarmas,
			Variants: map[string]float64{"Roll": 60, "Plate": 110},
		},
		{
			ID:       "shw-wm",
			Name:     "Whole Meat Shawarma",
			Category: enum.CategoryShawarmas,
			Variants: map[string]float64{"Roll": 80, "Plate": 140},
		},
		{
			ID:       "shw-wm-peri",
			Name:     "Whole Meat Peri Peri Shawarma",
			Category: enum.CategoryShawarmas,
			Variants: map[string]float64{"Roll": 90, "Plate": 150},
		},
		{
			ID:       "shw-wm-tandoori",
			Name:     "Whole Meat Tandoori Shawarma",
			Category: enum.CategoryShawarmas,
			Variants: map[string]float64{"Roll": 90, "Plate": 150},
		},
		{
			ID:       "shw-jumbo",
			Name:     "Jumbo Shawarma",
			Category: enum.CategoryShawarmas,
			Variants: map[string]float64{"Roll": 130},
		},
		// Grill Chicken
		{
			ID:       "grill-chicken",
			Name:     "Grill Chicken",
			Category: enum.CategoryGrillChicken,
			Variants: map[string]float64{"Qtr": 120, "Half": 210, "Full": 399},
		},
		{
			ID:       "grill-spcl",
			Name:     "Spcl Grilled Dajaj",
			Category: enum.CategoryGrillChicken,
			Variants: map[string]float64{"Qtr": 140, "Half": 250, "Full": 449},
		},
		// Breads & Dips
		{
			ID:       "khubbus",
			Name:     "Khubbus",
			Category: enum.CategoryBreadsAndDips,
			Variants: map[string]float64{"": 10},
		},
		{
			ID:       "rumali",
			Name:     "Rumali Roti",
			Category: enum.CategoryBreadsAndDips,
			Variants: map[string]float64{"": 15},
		},
		{
			ID:       "garlic-mayo",
			Name:     "Garlic Mayo",
			Category: enum.CategoryBreadsAndDips,
			Variants: map[string]float64{"": 20},
		},
		{
			ID:       "peri-mayo",
			Name:     "Peri Peri Mayo",
			Category: enum.CategoryBreadsAndDips,
			Variants: map[string]float64{"": 20},
		},
		{
			ID:       "tandoori-mayo",
			Name:     "Tandoori Mayo",
			Category: enum.CategoryBreadsAndDips,
			Variants: map[string]float64{"": 20},
		},
	}
}

func defaultAddons() []Addon {
	return []Addon{
		{
			ID:             "extra-spicy",
			Name:           "Extra Spicy",
			PriceByVariant: map[string]float64{"": 5},
		},
		{
			ID:             "fries",
			Name:           "French Fries",
			PriceByVariant: map[string]float64{"Roll": 10, "Plate": 15},
		},
		{
			ID:             "cheese",
			Name:           "Cheese",
			PriceByVariant: map[string]float64{"Roll": 20, "Plate": 30},
		},
	}
}
