package bot

import (
	"testing"

	"github.com/starbuy/shop/internal/domain/model"
)

func TestParseOrderCallback(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		action  model.OrderAction
		orderID string
		ok      bool
	}{
		{"processing", "order_processing_ORD12345678", model.OrderActionProcessing, "ORD12345678", true},
		{"success", "order_success_ORD12345678", model.OrderActionSuccess, "ORD12345678", true},
		{"cancel", "order_cancel_ORD12345678", model.OrderActionCancel, "ORD12345678", true},
		{"unknown action", "order_refund_ORD12345678", "", "", false},
		{"missing id", "order_success_", "", "", false},
		{"missing separator", "order_success", "", "", false},
		{"wrong prefix", "deposit_approve_DEP12345678", "", "", false},
		{"screenshot payload", "screenshot_order_ORD12345678", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, orderID, ok := parseOrderCallback(tt.data)
			if ok != tt.ok || action != tt.action || orderID != tt.orderID {
				t.Fatalf("parseOrderCallback(%q) = %q, %q, %v", tt.data, action, orderID, ok)
			}
		})
	}
}

func TestParseDepositCallback(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		action    model.DepositAction
		depositID string
		ok        bool
	}{
		{"approve", "deposit_approve_DEP12345678", model.DepositActionApprove, "DEP12345678", true},
		{"reject", "deposit_reject_DEP12345678", model.DepositActionReject, "DEP12345678", true},
		{"unknown action", "deposit_hold_DEP12345678", "", "", false},
		{"wrong prefix", "order_success_ORD12345678", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, depositID, ok := parseDepositCallback(tt.data)
			if ok != tt.ok || action != tt.action || depositID != tt.depositID {
				t.Fatalf("parseDepositCallback(%q) = %q, %q, %v", tt.data, action, depositID, ok)
			}
		})
	}
}

func TestParseScreenshotCallbacks(t *testing.T) {
	if id, ok := parseOrderScreenshotCallback("screenshot_order_ORD12345678"); !ok || id != "ORD12345678" {
		t.Fatalf("order screenshot parse = %q, %v", id, ok)
	}
	if _, ok := parseOrderScreenshotCallback("screenshot_order_"); ok {
		t.Fatal("expected empty order id rejected")
	}
	if id, ok := parseDepositScreenshotCallback("screenshot_deposit_DEP12345678"); !ok || id != "DEP12345678" {
		t.Fatalf("deposit screenshot parse = %q, %v", id, ok)
	}
	if _, ok := parseDepositScreenshotCallback("screenshot_order_ORD12345678"); ok {
		t.Fatal("expected order payload rejected by deposit parser")
	}
}

func TestCallbackRoundTrip(t *testing.T) {
	data := orderActionCallback(model.OrderActionSuccess, "ORD00000042")
	action, orderID, ok := parseOrderCallback(data)
	if !ok || action != model.OrderActionSuccess || orderID != "ORD00000042" {
		t.Fatalf("round trip failed: %q, %q, %v", action, orderID, ok)
	}

	data = depositActionCallback(model.DepositActionReject, "DEP00000042")
	depositAction, depositID, ok := parseDepositCallback(data)
	if !ok || depositAction != model.DepositActionReject || depositID != "DEP00000042" {
		t.Fatalf("round trip failed: %q, %q, %v", depositAction, depositID, ok)
	}
}
