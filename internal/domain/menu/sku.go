package menu

import (
	"sort"
	"strings"
)

// LineKey is the merge identity of a cart line: product, variant, and the
// normalized add-on set. Two selections collapse into one line iff their
// keys are equal. The add-on set is sorted ascending and deduplicated, so
// equality is independent of selection order and repeats. Being a
// comparable value, LineKey is usable directly as a map key.
type LineKey struct {
	ProductID string
	Variant   string
	addonSet  string // sorted, deduplicated add-on IDs joined by ","
}

// NewLineKey builds the key for a (product, variant, add-on set) selection.
func NewLineKey(productID, variant string, addonIDs []string) LineKey {
	return LineKey{
		ProductID: productID,
		Variant:   variant,
		addonSet:  strings.Join(normalizeAddonIDs(addonIDs), ","),
	}
}

// AddonIDs returns the normalized add-on ID set (sorted, deduplicated).
func (k LineKey) AddonIDs() []string {
	if k.addonSet == "" {
		return nil
	}
	return strings.Split(k.addonSet, ",")
}

func (k LineKey) String() string {
	return k.ProductID + "-" + k.Variant + "-" + k.addonSet
}

func normalizeAddonIDs(addonIDs []string) []string {
	if len(addonIDs) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(addonIDs))
	normalized := make([]string, 0, len(addonIDs))
	for _, id := range addonIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		normalized = append(normalized, id)
	}
	sort.Strings(normalized)
	return normalized
}

// GenerateSKU derives the human-readable stock code for a selection. Unlike
// LineKey this is a display/audit code: add-on tokens appear in selection
// order, and unrecognized product or add-on IDs simply contribute no token.
func GenerateSKU(productID, variant string, addonIDs []string) string {
	var parts []string

	switch {
	case strings.HasPrefix(productID, "shw-"):
		parts = append(parts, "SHW")
		switch {
		case strings.Contains(productID, "reg"):
			parts = append(parts, "REG")
		case strings.Contains(productID, "peri"):
			parts = append(parts, "PERI")
		case strings.Contains(productID, "tandoori"):
			parts = append(parts, "TANDOORI")
		case strings.Contains(productID, "wm"):
			parts = append(parts, "WM")
		}
		if strings.Contains(productID, "jumbo") {
			parts = append(parts, "JUMBO")
		}
	case strings.HasPrefix(productID, "grill-"):
		parts = append(parts, "GRILL")
		if strings.Contains(productID, "spcl") {
			parts = append(parts, "SPCL")
		} else {
			parts = append(parts, "CHICKEN")
		}
	case strings.Contains(productID, "khubbus"):
		parts = append(parts, "BREAD-KHUBBUS")
	case strings.Contains(productID, "rumali"):
		parts = append(parts, "BREAD-RUMALI")
	case strings.Contains(productID, "garlic-mayo"):
		parts = append(parts, "DIP-GARLIC")
	case strings.Contains(productID, "peri-mayo"):
		parts = append(parts, "DIP-PERI")
	case strings.Contains(productID, "tandoori-mayo"):
		parts = append(parts, "DIP-TANDOORI")
	}

	if variant != "" {
		parts = append(parts, strings.ToUpper(variant))
	}

	for _, addonID := range addonIDs {
		switch addonID {
		case "extra-spicy":
			parts = append(parts, "SPICY")
		case "fries":
			parts = append(parts, "FRIES")
		case "cheese":
			parts = append(parts, "CHEESE")
		}
	}

	return strings.Join(parts, "-")
}
