package backend

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/elitebeauty/clinic-concierge/agent/contract"
)

// MockApproval stands in for manager escalation and approves immediately.
// A real gateway blocks on the manager's response and may deny or time
// out; callers must treat "approved" as one of several possible outcomes.
type MockApproval struct {
	log zerolog.Logger
}

func NewMockApproval(log zerolog.Logger) *MockApproval {
	return &MockApproval{log: log}
}

func (m *MockApproval) RequestApproval(_ context.Context, discountType string, value float64, reason string) (contract.DiscountDecision, error) {
	m.log.Info().
		Str("discount_type", discountType).
		Float64("value", value).
		Str("reason", reason).
		Msg("asking manager for discount approval")

	return contract.DiscountDecision{Status: contract.StatusApproved}, nil
}
