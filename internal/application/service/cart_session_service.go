package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/syedahad2205/dajaj-pos/internal/domain/cart"
	"github.com/syedahad2205/dajaj-pos/internal/domain/menu"
	"github.com/syedahad2205/dajaj-pos/pkg/apperror"
)

// CartSessionService owns the in-progress carts, one per interactive
// cashier session. Carts live in memory only: an abandoned session leaves
// no persisted trace and never touches the bill counter. The registry map
// is guarded for concurrent terminals, but each cart itself is the state
// of a single logical session.
type CartSessionService struct {
	catalog *menu.Catalog

	mu    sync.Mutex
	carts map[uuid.UUID]*cart.Cart
}

// NewCartSessionService creates a new cart session service
func NewCartSessionService(catalog *menu.Catalog) *CartSessionService {
	return &CartSessionService{
		catalog: catalog,
		carts:   make(map[uuid.UUID]*cart.Cart),
	}
}

// CartView is the cart state returned after every mutation: the ordered
// line items plus totals derived fresh from them.
type CartView struct {
	SessionID uuid.UUID       `json:"session_id"`
	Items     []cart.LineItem `json:"items"`
	Totals    cart.Totals     `json:"totals"`
}

// LineSelection identifies one (product, variant, add-on set) selection.
type LineSelection struct {
	ProductID string
	Variant   string
	AddonIDs  []string
}

// CreateSession opens a new empty cart session.
func (s *CartSessionService) CreateSession() *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	c := cart.New(s.catalog)
	s.carts[id] = c
	return s.view(id, c)
}

// View returns the current cart state for a session.
func (s *CartSessionService) View(sessionID uuid.UUID) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sessionID, c), nil
}

// SetLine sets the quantity for a selection. Quantities at or below zero
// remove the line.
func (s *CartSessionService) SetLine(sessionID uuid.UUID, sel LineSelection, quantity int) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	product, err := s.resolve(sel)
	if err != nil {
		return nil, err
	}

	c.SetQuantity(product, sel.Variant, sel.AddonIDs, quantity)
	return s.view(sessionID, c), nil
}

// IncrementLine adjusts the quantity for a selection by delta.
func (s *CartSessionService) IncrementLine(sessionID uuid.UUID, sel LineSelection, delta int) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	product, err := s.resolve(sel)
	if err != nil {
		return nil, err
	}

	c.Increment(product, sel.Variant, sel.AddonIDs, delta)
	return s.view(sessionID, c), nil
}

// DecrementVariant removes one unit from a product variant, preferring the
// add-on-free line, then the first matching line in insertion order.
func (s *CartSessionService) DecrementVariant(sessionID uuid.UUID, productID, variant string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	product, err := s.resolve(LineSelection{ProductID: productID, Variant: variant})
	if err != nil {
		return nil, err
	}

	c.DecrementVariant(product, variant)
	return s.view(sessionID, c), nil
}

// RemoveLine deletes the line for a selection regardless of quantity.
func (s *CartSessionService) RemoveLine(sessionID uuid.UUID, sel LineSelection) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	c.Remove(menu.NewLineKey(sel.ProductID, sel.Variant, sel.AddonIDs))
	return s.view(sessionID, c), nil
}

// Snapshot returns a frozen copy of the session's lines and totals, for
// bill finalization.
func (s *CartSessionService) Snapshot(sessionID uuid.UUID) ([]cart.LineItem, cart.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(sessionID)
	if err != nil {
		return nil, cart.Totals{}, err
	}
	return c.Items(), c.Totals(), nil
}

// Reset empties a session's cart after its bill is finalized.
func (s *CartSessionService) Reset(sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(sessionID)
	if err != nil {
		return err
	}
	c.Reset()
	return nil
}

// Destroy discards a session entirely (abandoned cart).
func (s *CartSessionService) Destroy(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func (s *CartSessionService) get(sessionID uuid.UUID) (*cart.Cart, error) {
	c, ok := s.carts[sessionID]
	if !ok {
		return nil, apperror.NewNotFoundError("Cart session")
	}
	return c, nil
}

// resolve turns a raw product ID into a typed catalog reference. Unknown
// products or variants are rejected here, at selection time, so the cart
// itself only ever sees valid references.
func (s *CartSessionService) resolve(sel LineSelection) (*menu.Product, error) {
	product, ok := s.catalog.Product(sel.ProductID)
	if !ok {
		return nil, apperror.NewBadRequestError("Unknown product: " + sel.ProductID)
	}
	if !product.HasVariant(sel.Variant) {
		return nil, apperror.NewBadRequestError("Unknown variant for " + sel.ProductID + ": " + sel.Variant)
	}
	return product, nil
}

func (s *CartSessionService) view(sessionID uuid.UUID, c *cart.Cart) *CartView {
	return &CartView{
		SessionID: sessionID,
		Items:     c.Items(),
		Totals:    c.Totals(),
	}
}
