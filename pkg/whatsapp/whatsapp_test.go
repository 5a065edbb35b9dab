package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain 10 digits", "9876543210", "9876543210", false},
		{"plus country code", "+919876543210", "9876543210", false},
		{"bare country code", "919876543210", "9876543210", false},
		{"spaces and dashes", "98765 432-10", "9876543210", false},
		{"too short", "12345", "", true},
		{"too long", "98765432101", "", true},
		{"empty", "", "", true},
		{"letters only", "notanumber", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMobile(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeMobile(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeMobile(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildShareLink(t *testing.T) {
	link, err := BuildShareLink(ShareLinkInput{
		Mobile:      "+91 98765 43210",
		BillNo:      "DAJAJ-000042",
		GrandTotal:  170,
		PublicToken: "deadbeefdeadbeefdeadbeefdeadbeef",
		BaseURL:     "https://pos.example.com/",
	})
	if err != nil {
		t.Fatalf("BuildShareLink: %v", err)
	}

	if !strings.HasPrefix(link, "https://wa.me/919876543210?text=") {
		t.Errorf("link prefix wrong: %q", link)
	}

	encoded := strings.TrimPrefix(link, "https://wa.me/919876543210?text=")
	message, err := url.QueryUnescape(encoded)
	if err != nil {
		t.Fatalf("message should be URL-encoded: %v", err)
	}
	if !strings.Contains(message, "Bill No: DAJAJ-000042") {
		t.Errorf("message missing bill number: %q", message)
	}
	if !strings.Contains(message, "₹170.00") {
		t.Errorf("message missing formatted total: %q", message)
	}
	// The trailing slash on the base URL must not double up.
	if !strings.Contains(message, "https://pos.example.com/bill/DAJAJ-000042?token=deadbeefdeadbeefdeadbeefdeadbeef") {
		t.Errorf("message missing bill URL: %q", message)
	}
}

func TestBuildShareLinkRejectsInvalidInput(t *testing.T) {
	valid := ShareLinkInput{
		Mobile:      "9876543210",
		BillNo:      "DAJAJ-000001",
		GrandTotal:  50,
		PublicToken: "tok",
		BaseURL:     "http://localhost:3000",
	}

	tests := []struct {
		name   string
		mutate func(*ShareLinkInput)
	}{
		{"bad mobile", func(in *ShareLinkInput) { in.Mobile = "123" }},
		{"missing bill number", func(in *ShareLinkInput) { in.BillNo = "" }},
		{"missing token", func(in *ShareLinkInput) { in.PublicToken = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			if _, err := BuildShareLink(input); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
