package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/syedahad2205/dajaj-pos/internal/application/service"
	"github.com/syedahad2205/dajaj-pos/internal/domain/enum"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/dto/request"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/dto/response"
	"github.com/syedahad2205/dajaj-pos/pkg/pagination"
)

// BillHandler handles bill issuance and retrieval HTTP requests
type BillHandler struct {
	billService    *service.BillService
	sessionService *service.CartSessionService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService, sessionService *service.CartSessionService) *BillHandler {
	return &BillHandler{
		billService:    billService,
		sessionService: sessionService,
	}
}

// CreateBill finalizes a cart session into an immutable, numbered bill
// @Summary Create bill
// @Description Finalize a cart session: allocate the next bill number and persist the bill
// @Tags bills
// @Accept json
// @Produce json
// @Param request body request.CreateBillRequest true "Finalize data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sid, err := uuid.Parse(req.SessionID)
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	items, totals, err := h.sessionService.Snapshot(sid)
	if err != nil {
		response.Error(c, err)
		return
	}

	bill, err := h.billService.IssueBill(c.Request.Context(), &service.IssueBillInput{
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,
		PaymentMode:    enum.PaymentMode(req.PaymentMode),
		Items:          items,
		Totals:         totals,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// The session survives a persist failure; it only resets once the bill
	// is safely stored.
	if err := h.sessionService.Reset(sid); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created", gin.H{
		"bill":         bill,
		"public_token": bill.PublicToken,
	})
}

// GetBill returns a bill by number. Operators see any bill; everyone else
// must present the bill's public token as a query parameter.
// @Summary Get bill
// @Tags bills
// @Produce json
// @Param billNo path string true "Bill number"
// @Param token query string false "Public access token"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /bills/{billNo} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	bill, err := h.billService.GetBill(c.Request.Context(), c.Param("billNo"))
	if err != nil {
		response.Error(c, err)
		return
	}

	tokenPresent := c.Request.URL.Query().Has("token")
	if err := h.billService.AuthorizeView(bill, IsOperator(c), c.Query("token"), tokenPresent); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved", bill)
}

// ListBills returns the bills issued on a calendar day, newest first.
// The date query parameter defaults to today.
func (h *BillHandler) ListBills(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.billService.ListBillsByDate(c.Request.Context(), day, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved", result)
}

// WhatsAppLink builds a wa.me share link carrying the bill's public URL
func (h *BillHandler) WhatsAppLink(c *gin.Context) {
	var req request.WhatsAppLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.billService.WhatsAppShareLink(c.Request.Context(), c.Param("billNo"), req.Mobile)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Share link generated", gin.H{
		"link": link,
	})
}
