package backend

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/elitebeauty/clinic-concierge/agent/contract"
)

const mockQRCodeData = "MOCK_QR_CODE_DATA"

// MockEngagement simulates feedback storage, satisfaction analytics and QR
// voucher issuance. Discount caps are NOT enforced here -- they live in
// the tool layer so they hold even when a production backend replaces
// this mock.
type MockEngagement struct {
	log zerolog.Logger
	now func() time.Time
}

func NewMockEngagement(log zerolog.Logger) *MockEngagement {
	return &MockEngagement{log: log, now: time.Now}
}

func (m *MockEngagement) StoreFeedback(_ context.Context, customerID string, rating int, feedback, treatmentType string) (contract.FeedbackReceipt, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Int("rating", rating).
		Str("treatment_type", treatmentType).
		Msg("collecting customer feedback")

	return contract.FeedbackReceipt{
		Status:    contract.StatusSuccess,
		Message:   "피드백이 성공적으로 저장되었습니다.",
		Rating:    rating,
		Feedback:  feedback,
		Treatment: treatmentType,
	}, nil
}

func (m *MockEngagement) SatisfactionStatistics(_ context.Context, clinicID string) (contract.SatisfactionStats, error) {
	m.log.Info().Str("clinic_id", clinicID).Msg("getting satisfaction statistics")

	return contract.SatisfactionStats{
		AverageRating:    4.8,
		TotalReviews:     150,
		SatisfactionRate: 96,
		TopRatedTreatments: []contract.TreatmentRating{
			{Name: "보톡스", Rating: 4.9},
			{Name: "필러", Rating: 4.7},
			{Name: "레이저토닝", Rating: 4.8},
		},
	}, nil
}

func (m *MockEngagement) IssueQRVoucher(_ context.Context, customerID string, discountValue float64, discountType string, expirationDays int) (contract.QRVoucher, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Float64("discount_value", discountValue).
		Str("discount_type", discountType).
		Msg("generating discount QR code")

	return contract.QRVoucher{
		Status:         contract.StatusSuccess,
		QRCodeData:     mockQRCodeData,
		ExpirationDate: m.now().AddDate(0, 0, expirationDays).Format("2006-01-02"),
	}, nil
}
