package tool

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/elitebeauty/clinic-concierge/agent/contract"
)

// dispatchArgs holds a minimal valid argument set per catalog entry.
var dispatchArgs = map[string]map[string]any{
	ToolSendCallCompanionLink: {"phone_number": "010-1234-5678"},
	ToolApproveDiscount:       {"discount_type": "percentage", "value": 5.0, "reason": "loyalty"},
	ToolAskForApproval:        {"discount_type": "flat", "value": 25.0, "reason": "vip"},
	ToolUpdateSalesforceCRM:   {"customer_id": "123", "details": map[string]any{"note": "called"}},
	ToolAccessCartInformation: {"customer_id": "123"},
	ToolModifyCart: {
		"customer_id":     "123",
		"items_to_add":    []any{map[string]any{"product_id": "laser-456", "quantity": 1.0}},
		"items_to_remove": []any{"botox-123"},
	},
	ToolProductRecommendations: {"skin_concern": "주름", "customer_id": "123"},
	ToolCheckAvailability:      {"product_id": "botox-123", "store_id": "gangnam"},
	ToolScheduleService: {
		"customer_id": "123",
		"date":        "2024-07-29",
		"time_range":  "9-12",
		"details":     "보톡스 시술",
	},
	ToolAvailableTimes:       {"date": "2024-07-29"},
	ToolSendCareInstructions: {"customer_id": "123", "treatment_type": "보톡스", "delivery_method": "email"},
	ToolGenerateQRCode: {
		"customer_id":     "123",
		"discount_value":  10.0,
		"discount_type":   "percentage",
		"expiration_days": 30.0,
	},
	ToolSendSurvey:      {"customer_id": "123", "treatment_type": "보톡스", "delivery_method": "email"},
	ToolCollectFeedback: {"customer_id": "123", "rating": 5.0, "feedback": "좋았어요", "treatment_type": "보톡스"},
	ToolSatisfactionStats: {
		"clinic_id": "gangnam",
	},
	ToolSendReminder: {"customer_id": "123", "appointment_id": "apt123", "reminder_type": "24h"},
	ToolSetNotifications: {
		"customer_id":    "123",
		"appointment_id": "apt123",
		"notifications":  map[string]any{"email": true, "sms": false},
	},
	ToolUpcomingAppointments: {"customer_id": "123"},
	ToolSendPushNotification: {"customer_id": "123", "message": "예약이 확정되었습니다", "notification_type": "appointment"},
	ToolGenerateDeepLink:     {"customer_id": "123", "target_screen": "appointment"},
	ToolSyncCustomerData:     {"customer_id": "123"},
	ToolMobileAppAnalytics:   {"customer_id": "123"},
}

func TestExecutorDispatchesEveryCatalogEntry(t *testing.T) {
	t.Parallel()

	executor := NewMockGateway(zerolog.Nop()).Executor()
	for _, info := range Infos() {
		args, ok := dispatchArgs[info.Name]
		if !ok {
			t.Fatalf("no dispatch args for catalog entry %q", info.Name)
		}
		out, err := executor(context.Background(), info.Name, args)
		if err != nil {
			t.Fatalf("executor(%q) error = %v", info.Name, err)
		}
		if out.Error != "" {
			t.Fatalf("executor(%q) tool error = %q", info.Name, out.Error)
		}
		if out.Tool != info.Name {
			t.Fatalf("executor(%q) echoed tool %q", info.Name, out.Tool)
		}
		if out.Result == nil {
			t.Fatalf("executor(%q) returned no result", info.Name)
		}
	}
}

func TestExecutorUnknownTool(t *testing.T) {
	t.Parallel()

	executor := NewMockGateway(zerolog.Nop()).Executor()
	out, err := executor(context.Background(), "water_plants", nil)
	if err != nil {
		t.Fatalf("unknown tool must not fail the executor, got %v", err)
	}
	if out.Error == "" {
		t.Fatal("unknown tool must be reported through ToolResult.Error")
	}
	if !strings.Contains(out.Error, "water_plants") {
		t.Fatalf("error must name the tool, got %q", out.Error)
	}
}

func TestExecutorMissingArgument(t *testing.T) {
	t.Parallel()

	executor := NewMockGateway(zerolog.Nop()).Executor()
	out, err := executor(context.Background(), ToolScheduleService, map[string]any{
		"customer_id": "123",
		"date":        "2024-07-29",
	})
	if err != nil {
		t.Fatalf("missing argument must not fail the executor, got %v", err)
	}
	if !strings.Contains(out.Error, "time_range") {
		t.Fatalf("error must name the missing argument, got %q", out.Error)
	}
}

func TestExecutorWrongArgumentType(t *testing.T) {
	t.Parallel()

	executor := NewMockGateway(zerolog.Nop()).Executor()
	out, err := executor(context.Background(), ToolCollectFeedback, map[string]any{
		"customer_id":    "123",
		"rating":         4.5,
		"feedback":       "x",
		"treatment_type": "보톡스",
	})
	if err != nil {
		t.Fatalf("bad argument must not fail the executor, got %v", err)
	}
	if !strings.Contains(out.Error, "rating") {
		t.Fatalf("error must name the bad argument, got %q", out.Error)
	}
}

func TestExecutorScheduleAssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	executor := NewMockGateway(zerolog.Nop()).Executor()
	args := dispatchArgs[ToolScheduleService]

	first, err := executor(context.Background(), ToolScheduleService, args)
	if err != nil {
		t.Fatalf("first schedule error = %v", err)
	}
	second, err := executor(context.Background(), ToolScheduleService, args)
	if err != nil {
		t.Fatalf("second schedule error = %v", err)
	}

	a, ok := first.Result.(contract.Appointment)
	if !ok {
		t.Fatalf("Result = %T, want contract.Appointment", first.Result)
	}
	b := second.Result.(contract.Appointment)
	if a.AppointmentID == b.AppointmentID {
		t.Fatalf("identical bookings must get distinct ids, both %q", a.AppointmentID)
	}
	if a.ConfirmationTime != "2024-07-29 9:00" {
		t.Fatalf("ConfirmationTime = %q, want %q", a.ConfirmationTime, "2024-07-29 9:00")
	}
}

func TestExecutorDeepLink(t *testing.T) {
	t.Parallel()

	executor := NewMockGateway(zerolog.Nop()).Executor()
	out, err := executor(context.Background(), ToolGenerateDeepLink, map[string]any{
		"customer_id":   "123",
		"target_screen": "appointment",
		"parameters":    map[string]any{"appointment_id": "apt123"},
	})
	if err != nil {
		t.Fatalf("deep link error = %v", err)
	}
	link, ok := out.Result.(contract.DeepLink)
	if !ok {
		t.Fatalf("Result = %T, want contract.DeepLink", out.Result)
	}
	want := "elitebeauty://appointment?customer_id=123&appointment_id=apt123"
	if link.DeepLink != want {
		t.Fatalf("DeepLink = %q, want %q", link.DeepLink, want)
	}
	if !strings.HasSuffix(link.QRCode, want) {
		t.Fatalf("QRCode = %q must embed the link", link.QRCode)
	}
}

func TestExecutorDefaultsOptionalArguments(t *testing.T) {
	t.Parallel()

	executor := NewMockGateway(zerolog.Nop()).Executor()

	// reminder_type falls back to 24h.
	out, err := executor(context.Background(), ToolSendReminder, map[string]any{
		"customer_id":    "123",
		"appointment_id": "apt123",
	})
	if err != nil {
		t.Fatalf("reminder error = %v", err)
	}
	receipt, ok := out.Result.(contract.ReminderReceipt)
	if !ok {
		t.Fatalf("Result = %T, want contract.ReminderReceipt", out.Result)
	}
	if receipt.ReminderType != "24h" {
		t.Fatalf("ReminderType = %q, want 24h", receipt.ReminderType)
	}

	// discount_type falls back to percentage, so 15 is over the cap.
	out, err = executor(context.Background(), ToolGenerateQRCode, map[string]any{
		"customer_id":     "123",
		"discount_value":  15.0,
		"expiration_days": 30.0,
	})
	if err != nil {
		t.Fatalf("qr code error = %v", err)
	}
	voucher := out.Result.(contract.QRVoucher)
	if voucher.Status != contract.StatusError {
		t.Fatalf("Status = %q, want error for defaulted percentage over cap", voucher.Status)
	}
}

func TestExecuteBatchPreservesOrder(t *testing.T) {
	t.Parallel()

	gateway := NewMockGateway(zerolog.Nop())
	reqs := []contract.ToolRequest{
		{Tool: ToolAccessCartInformation, Args: map[string]any{"customer_id": "123"}},
		{Tool: ToolAvailableTimes, Args: map[string]any{"date": "2024-07-29"}},
		{Tool: "no_such_tool"},
	}

	results, err := gateway.Execute(context.Background(), reqs)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(results) != len(reqs) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(reqs))
	}
	for i, res := range results {
		if res.Tool != reqs[i].Tool {
			t.Fatalf("results[%d].Tool = %q, want %q", i, res.Tool, reqs[i].Tool)
		}
	}
	if results[2].Error == "" {
		t.Fatal("unknown tool in a batch must carry its error in place")
	}
}

func TestCustomerSnapshot(t *testing.T) {
	t.Parallel()

	gateway := NewMockGateway(zerolog.Nop())
	snapshot, err := gateway.CustomerSnapshot(context.Background(), "123")
	if err != nil {
		t.Fatalf("CustomerSnapshot() error = %v", err)
	}
	if !strings.Contains(snapshot, `"customer_id": "123"`) {
		t.Fatalf("snapshot must embed the customer id, got %q", snapshot)
	}

	if _, err := gateway.CustomerSnapshot(context.Background(), ""); err == nil {
		t.Fatal("blank customer id must fail the lookup")
	}
}
