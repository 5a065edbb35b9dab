package service

import (
	"context"
	"fmt"
	"log"

	"github.com/syedahad2205/dajaj-pos/internal/domain/entity"
	"github.com/syedahad2205/dajaj-pos/internal/domain/repository"
	"github.com/syedahad2205/dajaj-pos/pkg/apperror"
	"github.com/syedahad2205/dajaj-pos/pkg/printer"
)

// PrinterService renders finalized bills to ESC/POS receipt documents and
// sends them to the configured thermal printer. It is a read-only consumer
// of the immutable bill snapshot.
type PrinterService struct {
	printer     printer.Printer
	billRepo    repository.BillRepository
	header      entity.ReceiptHeader
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, billRepo repository.BillRepository, header entity.ReceiptHeader, printerType string) *PrinterService {
	return &PrinterService{
		printer:     p,
		billRepo:    billRepo,
		header:      header,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer. Returns the receipt data so
// the handler can return it as JSON when no printer is configured.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:      s.header,
		BillNo:      "DAJAJ-000000",
		Date:        "Test Date",
		Customer:    "Test Customer",
		PaymentMode: "Cash",
		Items: []entity.ReceiptItem{
			{Name: "Regular Shawarma", Variant: "Roll", Quantity: 2, UnitPrice: 50.00, Total: 100.00},
			{Name: "Khubbus", Variant: "Standard", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
		},
		Subtotal:   110.00,
		CGST:       2.75,
		SGST:       2.75,
		GrandTotal: 110.00,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintBillReceipt fetches a bill by number and prints its receipt.
func (s *PrinterService) PrintBillReceipt(ctx context.Context, billNo string) (*entity.Receipt, error) {
	receipt, err := s.GetReceipt(ctx, billNo)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (bill %s): %v", billNo, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// GetReceipt fetches a bill by number and builds its receipt without
// printing it.
func (s *PrinterService) GetReceipt(ctx context.Context, billNo string) (*entity.Receipt, error) {
	bill, err := s.billRepo.GetByBillNo(ctx, billNo)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return s.BuildReceipt(bill), nil
}

// BuildReceipt composes the printable receipt from a bill snapshot.
func (s *PrinterService) BuildReceipt(bill *entity.Bill) *entity.Receipt {
	receipt := &entity.Receipt{
		Header:      s.header,
		BillNo:      bill.BillNo,
		Date:        bill.CreatedAt.Format("2006-01-02 15:04"),
		Customer:    bill.CustomerName,
		PaymentMode: bill.PaymentMode.String(),
		Subtotal:    bill.Subtotal,
		CGST:        bill.CGST,
		SGST:        bill.SGST,
		GrandTotal:  bill.GrandTotal,
	}

	for _, item := range bill.Items {
		ri := entity.ReceiptItem{
			SKU:       item.SKU,
			Name:      item.Name,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitBasePrice,
			Total:     item.LineTotal,
		}
		for _, addon := range item.Addons {
			ri.Addons = append(ri.Addons, fmt.Sprintf("%s (+%.2f)", addon.Name, addon.UnitPrice))
		}
		receipt.Items = append(receipt.Items, ri)
	}

	return receipt
}

// FormatReceipt renders a receipt into an ESC/POS byte stream for 58mm
// thermal paper. CGST/SGST lines are an informational breakdown of the
// tax-inclusive total, not additions to it.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Bill info
	doc.KeyValue("Bill No:", r.BillNo).
		KeyValue("Date:", r.Date)

	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.PaymentMode != "" {
		doc.KeyValue("Payment:", r.PaymentMode)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		name := item.Name
		if item.Variant != "" && item.Variant != "Standard" {
			name = fmt.Sprintf("%s (%s)", item.Name, item.Variant)
		}
		doc.ItemLine(item.Quantity, name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
		for _, addon := range item.Addons {
			doc.TextF("  + %s", addon)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.Subtotal)).
		KeyValue("CGST (2.5%):", fmt.Sprintf("%.2f", r.CGST)).
		KeyValue("SGST (2.5%):", fmt.Sprintf("%.2f", r.SGST))
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.GrandTotal)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for ordering!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
