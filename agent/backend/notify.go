package backend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/elitebeauty/clinic-concierge/agent/contract"
)

// Reminder message per reminder type; anything else falls back to the
// generic message rather than failing.
var reminderMessages = map[string]string{
	"24h":   "24시간 전 예약 알림을 발송했습니다.",
	"2h":    "2시간 전 예약 알림을 발송했습니다.",
	"30min": "30분 전 예약 알림을 발송했습니다.",
}

const genericReminderMessage = "예약 알림을 발송했습니다."

// MockNotify simulates the email/SMS/push delivery backend. Nothing is
// actually sent.
type MockNotify struct {
	log   zerolog.Logger
	newID func() string
}

func NewMockNotify(log zerolog.Logger) *MockNotify {
	return &MockNotify{log: log, newID: uuid.NewString}
}

func deliveryMethodKR(deliveryMethod string) string {
	if deliveryMethod == "email" {
		return "이메일"
	}
	return "SMS"
}

func (m *MockNotify) SendCareInstructions(_ context.Context, customerID, treatmentType, deliveryMethod string) (contract.CareDelivery, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Str("treatment_type", treatmentType).
		Str("delivery_method", deliveryMethod).
		Msg("sending aftercare instructions")

	return contract.CareDelivery{
		Status:  contract.StatusSuccess,
		Message: fmt.Sprintf("%s 시술 후 관리 안내를 %s로 발송했습니다.", treatmentType, deliveryMethodKR(deliveryMethod)),
	}, nil
}

func (m *MockNotify) SendSatisfactionSurvey(_ context.Context, customerID, treatmentType, deliveryMethod string) (contract.SurveyDelivery, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Str("treatment_type", treatmentType).
		Str("delivery_method", deliveryMethod).
		Msg("sending satisfaction survey")

	return contract.SurveyDelivery{
		Status:     contract.StatusSuccess,
		Message:    fmt.Sprintf("%s 시술 만족도 조사를 %s로 발송했습니다.", treatmentType, deliveryMethodKR(deliveryMethod)),
		SurveyLink: fmt.Sprintf("https://survey.elitebeauty.com/%s/%s", customerID, treatmentType),
	}, nil
}

func (m *MockNotify) SendReminder(_ context.Context, customerID, appointmentID, reminderType string) (contract.ReminderReceipt, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Str("appointment_id", appointmentID).
		Str("reminder_type", reminderType).
		Msg("sending appointment reminder")

	message, ok := reminderMessages[reminderType]
	if !ok {
		message = genericReminderMessage
	}

	return contract.ReminderReceipt{
		Status:        contract.StatusSuccess,
		Message:       message,
		AppointmentID: appointmentID,
		ReminderType:  reminderType,
	}, nil
}

func (m *MockNotify) SetAppointmentNotifications(_ context.Context, customerID, appointmentID string, notifications map[string]any) (contract.NotificationSettings, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Str("appointment_id", appointmentID).
		Interface("notifications", notifications).
		Msg("setting appointment notification preferences")

	return contract.NotificationSettings{
		Status:        contract.StatusSuccess,
		Message:       "알림 설정이 완료되었습니다.",
		AppointmentID: appointmentID,
		Notifications: notifications,
	}, nil
}

func (m *MockNotify) SendPush(_ context.Context, customerID, message, notificationType string) (contract.PushReceipt, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Str("message", message).
		Str("notification_type", notificationType).
		Msg("sending mobile app notification")

	return contract.PushReceipt{
		Status:         contract.StatusSuccess,
		Message:        "모바일 앱 알림이 발송되었습니다.",
		NotificationID: m.newID(),
		CustomerID:     customerID,
		Type:           notificationType,
	}, nil
}

func (m *MockNotify) SendCallCompanionLink(_ context.Context, phoneNumber string) (contract.LinkDelivery, error) {
	m.log.Info().Str("phone_number", phoneNumber).Msg("sending call companion link")

	return contract.LinkDelivery{
		Status:  contract.StatusSuccess,
		Message: fmt.Sprintf("Link sent to %s", phoneNumber),
	}, nil
}
