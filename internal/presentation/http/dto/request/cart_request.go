package request

// LineSelection identifies one product/variant/add-on combination in a cart.
// Variant is empty for variant-less products; add-on order does not matter.
type LineSelection struct {
	ProductID string   `json:"product_id" binding:"required"`
	Variant   string   `json:"variant"`
	AddonIDs  []string `json:"addon_ids"`
}

// SetLineRequest sets an absolute quantity for a selection. Zero or a
// negative quantity removes the line.
type SetLineRequest struct {
	LineSelection
	Quantity int `json:"quantity"`
}

// AdjustLineRequest changes a selection's quantity by a signed delta.
type AdjustLineRequest struct {
	LineSelection
	Delta int `json:"delta" binding:"required"`
}

// DecrementVariantRequest removes one unit from a product variant without
// naming a specific add-on combination.
type DecrementVariantRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Variant   string `json:"variant"`
}

// RemoveLineRequest deletes a line entirely, regardless of its quantity.
type RemoveLineRequest struct {
	LineSelection
}
