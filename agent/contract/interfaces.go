package contract

import "context"

// The capability boundary. Every tool body in this repo is a stand-in for
// a real backend call; these interfaces are what a production deployment
// implements to replace the mocks without touching tool signatures.

type CartService interface {
	Cart(ctx context.Context, customerID string) (CartSnapshot, error)
	ModifyCart(ctx context.Context, customerID string, add []CartAddition, remove []string) (CartModification, error)
	CheckAvailability(ctx context.Context, productID, storeID string) (Availability, error)
	Recommendations(ctx context.Context, skinConcern, customerID string) (RecommendationSet, error)
}

type SchedulingService interface {
	AvailableTimes(ctx context.Context, date string) ([]string, error)
	Schedule(ctx context.Context, customerID, date, timeRange, details string) (Appointment, error)
	Upcoming(ctx context.Context, customerID string) (AppointmentList, error)
}

type NotificationService interface {
	SendCareInstructions(ctx context.Context, customerID, treatmentType, deliveryMethod string) (CareDelivery, error)
	SendSatisfactionSurvey(ctx context.Context, customerID, treatmentType, deliveryMethod string) (SurveyDelivery, error)
	SendReminder(ctx context.Context, customerID, appointmentID, reminderType string) (ReminderReceipt, error)
	SetAppointmentNotifications(ctx context.Context, customerID, appointmentID string, notifications map[string]any) (NotificationSettings, error)
	SendPush(ctx context.Context, customerID, message, notificationType string) (PushReceipt, error)
	SendCallCompanionLink(ctx context.Context, phoneNumber string) (LinkDelivery, error)
}

type EngagementService interface {
	StoreFeedback(ctx context.Context, customerID string, rating int, feedback, treatmentType string) (FeedbackReceipt, error)
	SatisfactionStatistics(ctx context.Context, clinicID string) (SatisfactionStats, error)
	IssueQRVoucher(ctx context.Context, customerID string, discountValue float64, discountType string, expirationDays int) (QRVoucher, error)
}

type CRMService interface {
	UpdateRecord(ctx context.Context, customerID string, details map[string]any) (CRMUpdate, error)
	DeepLink(ctx context.Context, customerID, targetScreen string, parameters []Parameter) (DeepLink, error)
	SyncToApp(ctx context.Context, customerID string) (AppSync, error)
	Analytics(ctx context.Context, customerID string) (AppAnalytics, error)
}

// ToolGateway is the orchestrator-facing boundary: named tools invoked
// with JSON-compatible argument maps. Failures come back inside the
// ToolResult, never as a raised error.
type ToolGateway interface {
	Execute(ctx context.Context, reqs []ToolRequest) ([]ToolResult, error)
}

// ApprovalGateway escalates a discount to a human manager. The mock
// approves immediately; a real implementation blocks on the manager's
// response and may deny or time out.
type ApprovalGateway interface {
	RequestApproval(ctx context.Context, discountType string, value float64, reason string) (DiscountDecision, error)
}
