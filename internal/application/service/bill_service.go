package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/syedahad2205/dajaj-pos/internal/domain/cart"
	"github.com/syedahad2205/dajaj-pos/internal/domain/entity"
	"github.com/syedahad2205/dajaj-pos/internal/domain/enum"
	"github.com/syedahad2205/dajaj-pos/internal/domain/repository"
	"github.com/syedahad2205/dajaj-pos/pkg/apperror"
	"github.com/syedahad2205/dajaj-pos/pkg/pagination"
	"github.com/syedahad2205/dajaj-pos/pkg/utils"
	"github.com/syedahad2205/dajaj-pos/pkg/whatsapp"
)

const (
	billNoPrefix = "DAJAJ-"
	counterName  = "bills"

	// maxTokenAttempts bounds the token collision retry loop.
	maxTokenAttempts = 10
)

// BillService implements the bill issuance protocol and retrieval with
// token-gated access.
type BillService struct {
	billRepo    repository.BillRepository
	counterRepo repository.CounterRepository
	baseURL     string
}

// NewBillService creates a new bill service
func NewBillService(billRepo repository.BillRepository, counterRepo repository.CounterRepository, baseURL string) *BillService {
	return &BillService{
		billRepo:    billRepo,
		counterRepo: counterRepo,
		baseURL:     baseURL,
	}
}

// IssueBillInput carries the finalized order data for a new bill.
type IssueBillInput struct {
	CustomerName   string
	CustomerMobile string
	PaymentMode    enum.PaymentMode
	Items          []cart.LineItem
	Totals         cart.Totals
}

// IssueBill allocates the next sequential bill number and a unique public
// token, then persists the immutable bill. The counter allocation is
// atomic across concurrent issuance calls; on persistence failure the
// counter is not rolled back (numbering gaps are acceptable, duplicate
// numbers are not).
func (s *BillService) IssueBill(ctx context.Context, input *IssueBillInput) (*entity.Bill, error) {
	if input.CustomerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Cannot issue a bill for an empty cart")
	}
	paymentMode := input.PaymentMode
	if paymentMode == "" {
		paymentMode = enum.PaymentModeCash
	}
	if !paymentMode.Valid() {
		return nil, apperror.NewBadRequestError("Unknown payment mode: " + paymentMode.String())
	}

	seq, err := s.counterRepo.Allocate(ctx, counterName)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate bill number: %w", err)
	}
	billNo := fmt.Sprintf("%s%06d", billNoPrefix, seq)

	token, err := s.generateUniqueToken(ctx)
	if err != nil {
		return nil, err
	}

	bill := &entity.Bill{
		BillNo:         billNo,
		PublicToken:    token,
		CustomerName:   input.CustomerName,
		CustomerMobile: input.CustomerMobile,
		Subtotal:       input.Totals.Subtotal,
		CGST:           input.Totals.CGST,
		SGST:           input.Totals.SGST,
		GrandTotal:     input.Totals.GrandTotal,
		PaymentMode:    paymentMode,
		CreatedAt:      time.Now(),
		Items:          snapshotItems(input.Items),
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to persist bill %s: %w", billNo, err)
	}

	return bill, nil
}

// generateUniqueToken draws random tokens until one is unused, bounded by
// maxTokenAttempts. Token uniqueness is independent of bill numbering:
// one identifier is sequential and guessable, the other random and secret.
func (s *BillService) generateUniqueToken(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token := utils.GeneratePublicToken()
		exists, err := s.billRepo.ExistsByToken(ctx, token)
		if err != nil {
			return "", err
		}
		if !exists {
			return token, nil
		}
	}
	return "", apperror.ErrTokenExhausted
}

func snapshotItems(items []cart.LineItem) []entity.BillItem {
	snapshot := make([]entity.BillItem, len(items))
	for i, item := range items {
		addons := make([]entity.BillItemAddon, len(item.Addons))
		for j, addon := range item.Addons {
			addons[j] = entity.BillItemAddon{
				Name:      addon.Name,
				UnitPrice: addon.UnitPrice,
			}
		}
		snapshot[i] = entity.BillItem{
			SKU:           item.SKU,
			Name:          item.ProductName,
			Variant:       item.Variant,
			Quantity:      item.Quantity,
			UnitBasePrice: item.UnitBasePrice,
			LineTotal:     item.LineTotal,
			Position:      i,
			Addons:        addons,
		}
	}
	return snapshot
}

// GetBill fetches a persisted bill by number. Not-found is distinct from
// access denial.
func (s *BillService) GetBill(ctx context.Context, billNo string) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByBillNo(ctx, billNo)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// AuthorizeView decides whether a bill may be viewed. Authenticated
// operators bypass the token check entirely; everyone else must supply a
// token that, after URL-decoding, byte-exactly equals the bill's public
// token. The missing-token and mismatched-token cases are logged
// distinctly but both surface as the same generic denial, so the response
// does not leak which case occurred.
func (s *BillService) AuthorizeView(bill *entity.Bill, isOperator bool, providedToken string, tokenPresent bool) error {
	if isOperator {
		return nil
	}

	if !tokenPresent {
		log.Printf("bill %s: view denied (missing token)", bill.BillNo)
		return apperror.ErrAccessDenied
	}

	// Links embedded in WhatsApp messages may arrive double-encoded.
	decoded, err := url.QueryUnescape(providedToken)
	if err != nil {
		decoded = providedToken
	}

	if decoded != bill.PublicToken {
		log.Printf("bill %s: view denied (token mismatch)", bill.BillNo)
		return apperror.ErrAccessDenied
	}

	return nil
}

// ListBillsByDate returns the bills created on the given calendar day,
// newest first.
func (s *BillService) ListBillsByDate(ctx context.Context, day time.Time, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Bill], error) {
	params.Validate()

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24*time.Hour - time.Nanosecond)

	bills, total, err := s.billRepo.ListByDateRange(ctx, from, to, params.Page, params.PerPage)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// WhatsAppShareLink builds the wa.me share link for a bill. The mobile
// number defaults to the one captured on the bill; an override may be
// supplied. Validation happens before any link is constructed.
func (s *BillService) WhatsAppShareLink(ctx context.Context, billNo, mobileOverride string) (string, error) {
	bill, err := s.GetBill(ctx, billNo)
	if err != nil {
		return "", err
	}

	mobile := mobileOverride
	if mobile == "" {
		mobile = bill.CustomerMobile
	}

	return whatsapp.BuildShareLink(whatsapp.ShareLinkInput{
		Mobile:      mobile,
		BillNo:      bill.BillNo,
		GrandTotal:  bill.GrandTotal,
		PublicToken: bill.PublicToken,
		BaseURL:     s.baseURL,
	})
}
