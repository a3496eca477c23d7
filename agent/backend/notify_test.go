package backend

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestMockNotifySendCareInstructions(t *testing.T) {
	t.Parallel()

	notify := NewMockNotify(zerolog.Nop())

	email, err := notify.SendCareInstructions(context.Background(), "123", "보톡스", "email")
	if err != nil {
		t.Fatalf("SendCareInstructions() error = %v", err)
	}
	if email.Message != "보톡스 시술 후 관리 안내를 이메일로 발송했습니다." {
		t.Fatalf("email message = %q", email.Message)
	}

	sms, err := notify.SendCareInstructions(context.Background(), "123", "필러", "sms")
	if err != nil {
		t.Fatalf("SendCareInstructions() error = %v", err)
	}
	if sms.Message != "필러 시술 후 관리 안내를 SMS로 발송했습니다." {
		t.Fatalf("sms message = %q", sms.Message)
	}
}

func TestMockNotifySendSatisfactionSurvey(t *testing.T) {
	t.Parallel()

	notify := NewMockNotify(zerolog.Nop())
	out, err := notify.SendSatisfactionSurvey(context.Background(), "123", "보톡스", "email")
	if err != nil {
		t.Fatalf("SendSatisfactionSurvey() error = %v", err)
	}
	if out.Status != "success" {
		t.Fatalf("Status = %q", out.Status)
	}
	if out.SurveyLink != "https://survey.elitebeauty.com/123/보톡스" {
		t.Fatalf("SurveyLink = %q", out.SurveyLink)
	}
}

func TestMockNotifySendReminder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reminderType string
		wantMessage  string
	}{
		{reminderType: "24h", wantMessage: "24시간 전 예약 알림을 발송했습니다."},
		{reminderType: "2h", wantMessage: "2시간 전 예약 알림을 발송했습니다."},
		{reminderType: "30min", wantMessage: "30분 전 예약 알림을 발송했습니다."},
		{reminderType: "1week", wantMessage: genericReminderMessage},
		{reminderType: "", wantMessage: genericReminderMessage},
	}

	notify := NewMockNotify(zerolog.Nop())
	for _, tc := range tests {
		out, err := notify.SendReminder(context.Background(), "123", "apt123", tc.reminderType)
		if err != nil {
			t.Fatalf("SendReminder(%q) error = %v", tc.reminderType, err)
		}
		if out.Status != "success" {
			t.Fatalf("SendReminder(%q).Status = %q, want success", tc.reminderType, out.Status)
		}
		if out.Message != tc.wantMessage {
			t.Fatalf("SendReminder(%q).Message = %q, want %q", tc.reminderType, out.Message, tc.wantMessage)
		}
		if out.AppointmentID != "apt123" || out.ReminderType != tc.reminderType {
			t.Fatalf("unexpected receipt: %+v", out)
		}
	}
}

func TestMockNotifySetAppointmentNotifications(t *testing.T) {
	t.Parallel()

	notify := NewMockNotify(zerolog.Nop())
	prefs := map[string]any{"email": true, "sms": true, "push": false}
	out, err := notify.SetAppointmentNotifications(context.Background(), "123", "apt123", prefs)
	if err != nil {
		t.Fatalf("SetAppointmentNotifications() error = %v", err)
	}
	if out.Message != "알림 설정이 완료되었습니다." {
		t.Fatalf("Message = %q", out.Message)
	}
	if out.Notifications["push"] != false {
		t.Fatalf("Notifications not echoed: %+v", out.Notifications)
	}
}

func TestMockNotifySendPushFreshIDs(t *testing.T) {
	t.Parallel()

	notify := NewMockNotify(zerolog.Nop())
	first, err := notify.SendPush(context.Background(), "123", "예약 확인", "appointment")
	if err != nil {
		t.Fatalf("SendPush() error = %v", err)
	}
	second, err := notify.SendPush(context.Background(), "123", "예약 확인", "appointment")
	if err != nil {
		t.Fatalf("SendPush() error = %v", err)
	}
	if first.NotificationID == second.NotificationID {
		t.Fatalf("notification ids must differ, both %q", first.NotificationID)
	}
	if first.Type != "appointment" || first.CustomerID != "123" {
		t.Fatalf("unexpected receipt: %+v", first)
	}
}

func TestMockNotifySendCallCompanionLink(t *testing.T) {
	t.Parallel()

	notify := NewMockNotify(zerolog.Nop())
	out, err := notify.SendCallCompanionLink(context.Background(), "+12065550123")
	if err != nil {
		t.Fatalf("SendCallCompanionLink() error = %v", err)
	}
	if out.Message != "Link sent to +12065550123" {
		t.Fatalf("Message = %q", out.Message)
	}
}
