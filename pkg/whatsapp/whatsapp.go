// Package whatsapp builds shareable WhatsApp links for finalized bills.
// It performs no recomputation: callers supply already-finalized values.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/syedahad2205/dajaj-pos/pkg/apperror"
)

// ShareLinkInput carries the finalized bill values embedded in the message.
type ShareLinkInput struct {
	Mobile      string
	BillNo      string
	GrandTotal  float64
	PublicToken string
	BaseURL     string
}

// NormalizeMobile strips an optional +91/91 country-code prefix and all
// non-digit characters, and requires the result to be exactly 10 digits.
func NormalizeMobile(mobile string) (string, error) {
	cleaned := strings.TrimPrefix(mobile, "+91")
	cleaned = strings.TrimPrefix(cleaned, "91")

	var digits strings.Builder
	for _, r := range cleaned {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() != 10 {
		return "", apperror.NewBadRequestError("Invalid mobile number. Please enter a 10-digit mobile number.")
	}
	return digits.String(), nil
}

// BuildShareLink validates the recipient mobile number and constructs the
// wa.me link with a pre-filled message containing the bill number, the
// formatted grand total, and the token-protected bill viewing URL. No
// partial link is ever constructed for an invalid mobile number.
func BuildShareLink(input ShareLinkInput) (string, error) {
	mobile, err := NormalizeMobile(input.Mobile)
	if err != nil {
		return "", err
	}
	if input.BillNo == "" {
		return "", apperror.NewBadRequestError("Bill number is required")
	}
	if input.PublicToken == "" {
		return "", apperror.NewBadRequestError("Bill token is required")
	}

	billURL := fmt.Sprintf("%s/bill/%s?token=%s",
		strings.TrimSuffix(input.BaseURL, "/"),
		input.BillNo,
		url.QueryEscape(input.PublicToken),
	)

	message := fmt.Sprintf("Thank you for ordering from DAJAJ 🍗\nBill No: %s\nTotal: ₹%.2f\n\nView & Download Bill:\n%s",
		input.BillNo,
		input.GrandTotal,
		billURL,
	)

	return "https://wa.me/91" + mobile + "?text=" + url.QueryEscape(message), nil
}
