package menu

import (
	"testing"
)

func TestNewLineKeyOrderIndependence(t *testing.T) {
	a := NewLineKey("shw-reg", "Roll", []string{"cheese", "fries"})
	b := NewLineKey("shw-reg", "Roll", []string{"fries", "cheese"})
	if a != b {
		t.Errorf("keys differ for same add-on set in different order: %v vs %v", a, b)
	}
}

func TestNewLineKeyDeduplication(t *testing.T) {
	a := NewLineKey("shw-reg", "Roll", []string{"fries", "fries", "cheese"})
	b := NewLineKey("shw-reg", "Roll", []string{"cheese", "fries"})
	if a != b {
		t.Errorf("duplicate add-on IDs should collapse: %v vs %v", a, b)
	}
}

func TestNewLineKeyDistinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b LineKey
	}{
		{
			name: "different variant",
			a:    NewLineKey("shw-reg", "Roll", nil),
			b:    NewLineKey("shw-reg", "Plate", nil),
		},
		{
			name: "different product",
			a:    NewLineKey("shw-reg", "Roll", nil),
			b:    NewLineKey("shw-peri", "Roll", nil),
		},
		{
			name: "with and without add-ons",
			a:    NewLineKey("shw-reg", "Roll", nil),
			b:    NewLineKey("shw-reg", "Roll", []string{"cheese"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a == tt.b {
				t.Errorf("keys should differ: %v vs %v", tt.a, tt.b)
			}
		})
	}
}

func TestLineKeyAddonIDs(t *testing.T) {
	key := NewLineKey("shw-reg", "Roll", []string{"fries", "cheese", "fries"})
	got := key.AddonIDs()
	want := []string{"cheese", "fries"}
	if len(got) != len(want) {
		t.Fatalf("AddonIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AddonIDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if ids := NewLineKey("khubbus", "", nil).AddonIDs(); ids != nil {
		t.Errorf("empty add-on set should return nil, got %v", ids)
	}
}

func TestGenerateSKU(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		variant   string
		addonIDs  []string
		want      string
	}{
		{"regular roll", "shw-reg", "Roll", nil, "SHW-REG-ROLL"},
		{"peri plate", "shw-peri", "Plate", nil, "SHW-PERI-PLATE"},
		{"tandoori roll", "shw-tandoori", "Roll", nil, "SHW-TANDOORI-ROLL"},
		{"whole meat roll", "shw-wm", "Roll", nil, "SHW-WM-ROLL"},
		// The peri check precedes the wm check, so whole-meat peri
		// collapses to the PERI token.
		{"whole meat peri", "shw-wm-peri", "Plate", nil, "SHW-PERI-PLATE"},
		{"whole meat tandoori", "shw-wm-tandoori", "Roll", nil, "SHW-TANDOORI-ROLL"},
		{"jumbo", "shw-jumbo", "Roll", nil, "SHW-JUMBO-ROLL"},
		{"grill chicken qtr", "grill-chicken", "Qtr", nil, "GRILL-CHICKEN-QTR"},
		{"grill special full", "grill-spcl", "Full", nil, "GRILL-SPCL-FULL"},
		{"khubbus", "khubbus", "", nil, "BREAD-KHUBBUS"},
		{"rumali", "rumali", "", nil, "BREAD-RUMALI"},
		{"garlic mayo", "garlic-mayo", "", nil, "DIP-GARLIC"},
		{"peri mayo", "peri-mayo", "", nil, "DIP-PERI"},
		{"tandoori mayo", "tandoori-mayo", "", nil, "DIP-TANDOORI"},
		{"single addon", "shw-reg", "Roll", []string{"cheese"}, "SHW-REG-ROLL-CHEESE"},
		// Add-on tokens follow selection order, not sorted order.
		{"addons in selection order", "shw-reg", "Roll", []string{"fries", "extra-spicy"}, "SHW-REG-ROLL-FRIES-SPICY"},
		{"all addons", "shw-peri", "Plate", []string{"extra-spicy", "fries", "cheese"}, "SHW-PERI-PLATE-SPICY-FRIES-CHEESE"},
		{"unknown addon skipped", "shw-reg", "Roll", []string{"gold-leaf", "cheese"}, "SHW-REG-ROLL-CHEESE"},
		{"unknown product yields variant only", "mystery-item", "Roll", nil, "ROLL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSKU(tt.productID, tt.variant, tt.addonIDs)
			if got != tt.want {
				t.Errorf("GenerateSKU(%q, %q, %v) = %q, want %q", tt.productID, tt.variant, tt.addonIDs, got, tt.want)
			}
		})
	}
}
