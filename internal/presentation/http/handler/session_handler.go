package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/syedahad2205/dajaj-pos/internal/application/service"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/dto/request"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/dto/response"
)

// SessionHandler handles cart session HTTP requests. Every mutation
// returns the full cart view so the terminal never has to derive state.
type SessionHandler struct {
	sessionService *service.CartSessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.CartSessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateSession opens a new empty cart session
// @Summary Create cart session
// @Tags sessions
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	view := h.sessionService.CreateSession()
	response.Created(c, "Cart session created", view)
}

// GetSession returns the current cart state for a session
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.sessionService.View(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart retrieved", view)
}

// SetLine sets the absolute quantity for a selection
func (h *SessionHandler) SetLine(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req request.SetLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.sessionService.SetLine(id, service.LineSelection{
		ProductID: req.ProductID,
		Variant:   req.Variant,
		AddonIDs:  req.AddonIDs,
	}, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart updated", view)
}

// AdjustLine changes a selection's quantity by a signed delta
func (h *SessionHandler) AdjustLine(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req request.AdjustLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.sessionService.IncrementLine(id, service.LineSelection{
		ProductID: req.ProductID,
		Variant:   req.Variant,
		AddonIDs:  req.AddonIDs,
	}, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart updated", view)
}

// DecrementVariant removes one unit of a product variant, preferring the
// add-on-free line
func (h *SessionHandler) DecrementVariant(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req request.DecrementVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.sessionService.DecrementVariant(id, req.ProductID, req.Variant)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart updated", view)
}

// RemoveLine deletes a line entirely, regardless of quantity
func (h *SessionHandler) RemoveLine(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req request.RemoveLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.sessionService.RemoveLine(id, service.LineSelection{
		ProductID: req.ProductID,
		Variant:   req.Variant,
		AddonIDs:  req.AddonIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line removed", view)
}

// DestroySession discards an abandoned cart session
func (h *SessionHandler) DestroySession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	h.sessionService.Destroy(id)
	response.NoContent(c)
}
