package request

// CreateBillRequest finalizes a cart session into an immutable bill.
type CreateBillRequest struct {
	SessionID      string `json:"session_id" binding:"required,uuid"`
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerMobile string `json:"customer_mobile"`
	PaymentMode    string `json:"payment_mode"`
}

// WhatsAppLinkRequest requests a wa.me share link for a bill. Mobile
// overrides the number captured on the bill when present.
type WhatsAppLinkRequest struct {
	Mobile string `json:"mobile"`
}
