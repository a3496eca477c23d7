package tool

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestApproveDiscount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		discountType string
		value        float64
		wantStatus   string
	}{
		{name: "small percentage", discountType: "percentage", value: 5, wantStatus: "ok"},
		{name: "cap boundary", discountType: "percentage", value: 10, wantStatus: "ok"},
		{name: "just above cap", discountType: "percentage", value: 10.5, wantStatus: "rejected"},
		{name: "large flat", discountType: "flat", value: 50, wantStatus: "rejected"},
		// The cap is not scaled by type: flat 11 is rejected too.
		{name: "flat above cap", discountType: "flat", value: 11, wantStatus: "rejected"},
		{name: "zero", discountType: "flat", value: 0, wantStatus: "ok"},
	}

	gateway := NewMockGateway(zerolog.Nop())
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			decision := gateway.ApproveDiscount(tc.discountType, tc.value, "customer loyalty")
			if decision.Status != tc.wantStatus {
				t.Fatalf("Status = %q, want %q", decision.Status, tc.wantStatus)
			}
			if tc.wantStatus == "rejected" && !strings.Contains(decision.Message, "10") {
				t.Fatalf("rejection message must mention the cap, got %q", decision.Message)
			}
		})
	}
}

func TestGenerateQRCodeCaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		discountType string
		value        float64
		wantStatus   string
	}{
		{name: "percentage within cap", discountType: "percentage", value: 10, wantStatus: "success"},
		{name: "percentage above cap", discountType: "percentage", value: 10.5, wantStatus: "error"},
		// The empty type defaults to the percentage cap.
		{name: "unset type above cap", discountType: "", value: 15, wantStatus: "error"},
		{name: "unset type within cap", discountType: "", value: 10, wantStatus: "success"},
		{name: "fixed within cap", discountType: "fixed", value: 20, wantStatus: "success"},
		{name: "fixed above cap", discountType: "fixed", value: 20.5, wantStatus: "error"},
		{name: "fixed between caps", discountType: "fixed", value: 15, wantStatus: "success"},
	}

	gateway := NewMockGateway(zerolog.Nop())
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			voucher, err := gateway.GenerateQRCode(context.Background(), "123", tc.value, tc.discountType, 30)
			if err != nil {
				t.Fatalf("GenerateQRCode() error = %v", err)
			}
			if voucher.Status != tc.wantStatus {
				t.Fatalf("Status = %q, want %q (message %q)", voucher.Status, tc.wantStatus, voucher.Message)
			}
			if tc.wantStatus == "error" && voucher.Message == "" {
				t.Fatal("error result must carry a message")
			}
			if tc.wantStatus == "error" && voucher.QRCodeData != "" {
				t.Fatal("error result must not carry voucher data")
			}
		})
	}
}

func TestGenerateQRCodeExpirationDate(t *testing.T) {
	t.Parallel()

	gateway := NewMockGateway(zerolog.Nop())
	voucher, err := gateway.GenerateQRCode(context.Background(), "123", 10, "percentage", 30)
	if err != nil {
		t.Fatalf("GenerateQRCode() error = %v", err)
	}
	want := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	if voucher.ExpirationDate != want {
		t.Fatalf("ExpirationDate = %q, want %q", voucher.ExpirationDate, want)
	}
}

func TestCollectFeedbackRatingBounds(t *testing.T) {
	t.Parallel()

	gateway := NewMockGateway(zerolog.Nop())
	for rating := 1; rating <= 5; rating++ {
		out, err := gateway.CollectFeedback(context.Background(), "123", rating, "좋아요", "보톡스")
		if err != nil {
			t.Fatalf("CollectFeedback(%d) error = %v", rating, err)
		}
		if out.Status != "success" {
			t.Fatalf("CollectFeedback(%d).Status = %q, want success", rating, out.Status)
		}
	}

	for _, rating := range []int{0, 6, -1, 100} {
		out, err := gateway.CollectFeedback(context.Background(), "123", rating, "x", "보톡스")
		if err != nil {
			t.Fatalf("CollectFeedback(%d) error = %v", rating, err)
		}
		if out.Status != "error" {
			t.Fatalf("CollectFeedback(%d).Status = %q, want error", rating, out.Status)
		}
		if out.Message == "" {
			t.Fatal("out-of-range rating must carry a reason")
		}
	}
}
