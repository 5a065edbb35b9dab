package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/syedahad2205/dajaj-pos/internal/domain/menu"
	"github.com/syedahad2205/dajaj-pos/pkg/apperror"
)

func testSessionService() *CartSessionService {
	return NewCartSessionService(menu.NewCatalog())
}

func TestCreateSessionStartsEmpty(t *testing.T) {
	svc := testSessionService()

	view := svc.CreateSession()
	if view.SessionID == uuid.Nil {
		t.Error("session ID should be assigned")
	}
	if len(view.Items) != 0 {
		t.Errorf("new session should be empty, got %d items", len(view.Items))
	}
	if view.Totals.GrandTotal != 0 {
		t.Errorf("new session grand total = %v, want 0", view.Totals.GrandTotal)
	}
}

func TestSetLineAndView(t *testing.T) {
	svc := testSessionService()
	session := svc.CreateSession()

	view, err := svc.SetLine(session.SessionID, LineSelection{
		ProductID: "shw-reg",
		Variant:   "Roll",
		AddonIDs:  []string{"cheese"},
	}, 2)
	if err != nil {
		t.Fatalf("SetLine: %v", err)
	}

	if len(view.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(view.Items))
	}
	if view.Items[0].LineTotal != 140 {
		t.Errorf("LineTotal = %v, want 140", view.Items[0].LineTotal)
	}
	if view.Totals.GrandTotal != 140 {
		t.Errorf("GrandTotal = %v, want 140", view.Totals.GrandTotal)
	}
}

func TestUnknownProductRejectedAtSelection(t *testing.T) {
	svc := testSessionService()
	session := svc.CreateSession()

	_, err := svc.SetLine(session.SessionID, LineSelection{ProductID: "no-such", Variant: "Roll"}, 1)
	if apperror.GetAppError(err).Code != 400 {
		t.Errorf("unknown product should be a 400, got %v", err)
	}

	_, err = svc.SetLine(session.SessionID, LineSelection{ProductID: "shw-jumbo", Variant: "Plate"}, 1)
	if apperror.GetAppError(err).Code != 400 {
		t.Errorf("unknown variant should be a 400, got %v", err)
	}
}

func TestUnknownSessionIsNotFound(t *testing.T) {
	svc := testSessionService()

	_, err := svc.View(uuid.New())
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("unknown session should be a 404, got %v", err)
	}
}

func TestIncrementAndDecrementFlow(t *testing.T) {
	svc := testSessionService()
	session := svc.CreateSession()
	sel := LineSelection{ProductID: "shw-peri", Variant: "Plate"}

	if _, err := svc.IncrementLine(session.SessionID, sel, 1); err != nil {
		t.Fatalf("IncrementLine: %v", err)
	}
	view, err := svc.IncrementLine(session.SessionID, sel, 1)
	if err != nil {
		t.Fatalf("IncrementLine: %v", err)
	}
	if view.Items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", view.Items[0].Quantity)
	}

	view, err = svc.DecrementVariant(session.SessionID, "shw-peri", "Plate")
	if err != nil {
		t.Fatalf("DecrementVariant: %v", err)
	}
	if view.Items[0].Quantity != 1 {
		t.Errorf("quantity after decrement = %d, want 1", view.Items[0].Quantity)
	}
}

func TestRemoveLine(t *testing.T) {
	svc := testSessionService()
	session := svc.CreateSession()
	sel := LineSelection{ProductID: "shw-reg", Variant: "Roll", AddonIDs: []string{"fries", "cheese"}}

	if _, err := svc.SetLine(session.SessionID, sel, 5); err != nil {
		t.Fatalf("SetLine: %v", err)
	}

	// Removal matches by normalized key, so add-on order is irrelevant.
	view, err := svc.RemoveLine(session.SessionID, LineSelection{
		ProductID: "shw-reg",
		Variant:   "Roll",
		AddonIDs:  []string{"cheese", "fries"},
	})
	if err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	if len(view.Items) != 0 {
		t.Errorf("line should be removed, got %d items", len(view.Items))
	}
}

func TestSnapshotAndReset(t *testing.T) {
	svc := testSessionService()
	session := svc.CreateSession()

	if _, err := svc.SetLine(session.SessionID, LineSelection{ProductID: "khubbus"}, 3); err != nil {
		t.Fatalf("SetLine: %v", err)
	}

	items, totals, err := svc.Snapshot(session.SessionID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(items) != 1 || totals.GrandTotal != 30 {
		t.Errorf("snapshot = %d items, total %v; want 1 item, total 30", len(items), totals.GrandTotal)
	}

	if err := svc.Reset(session.SessionID); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	view, err := svc.View(session.SessionID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(view.Items) != 0 {
		t.Errorf("session should be empty after reset, got %d items", len(view.Items))
	}

	// The snapshot taken before the reset is unaffected.
	if len(items) != 1 {
		t.Errorf("pre-reset snapshot mutated, got %d items", len(items))
	}
}

func TestDestroySession(t *testing.T) {
	svc := testSessionService()
	session := svc.CreateSession()

	svc.Destroy(session.SessionID)
	if _, err := svc.View(session.SessionID); err == nil {
		t.Error("destroyed session should not resolve")
	}

	// Destroying twice is harmless.
	svc.Destroy(session.SessionID)
}
