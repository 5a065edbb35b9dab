package enum

// Category groups menu products for display and SKU derivation
type Category string

const (
	CategoryShawarmas     Category = "Shawarmas"
	CategoryGrillChicken  Category = "Grill Chicken"
	CategoryBreadsAndDips Category = "Breads & Dips"
)

func (c Category) String() string {
	return string(c)
}
