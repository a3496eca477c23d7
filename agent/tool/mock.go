package tool

import (
	"github.com/rs/zerolog"

	"github.com/elitebeauty/clinic-concierge/agent/backend"
	"github.com/elitebeauty/clinic-concierge/agent/entity"
)

// NewMockGateway wires the full catalog against the in-process mock
// backends. This is the demo configuration; production swaps any Deps
// field for a real implementation.
func NewMockGateway(log zerolog.Logger) *Gateway {
	return NewGateway(Deps{
		Log:        log,
		Customers:  entity.NewMockStore(),
		Cart:       backend.NewMockCommerce(log),
		Scheduling: backend.NewMockScheduling(log),
		Notify:     backend.NewMockNotify(log),
		Engagement: backend.NewMockEngagement(log),
		CRM:        backend.NewMockCRM(log),
		Approval:   backend.NewMockApproval(log),
	})
}
