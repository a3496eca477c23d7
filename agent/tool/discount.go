package tool

import (
	"context"

	"github.com/elitebeauty/clinic-concierge/agent/contract"
)

// Discount guardrails. These are enforced here, in the tool layer, rather
// than in the backends: the caller is an LLM-driven agent, and the cap is
// the last line of defense against a manipulated prompt requesting an
// unbounded discount. The cap is not scaled by discount type.
const (
	maxAutoApprovedDiscount = 10
	maxPercentageQRDiscount = 10
	maxFixedQRDiscount      = 20
)

// ApproveDiscount auto-approves discounts of 10 or less and rejects
// anything larger with a reason the model can relay.
func (g *Gateway) ApproveDiscount(discountType string, value float64, reason string) contract.DiscountDecision {
	if value > maxAutoApprovedDiscount {
		g.log.Info().
			Str("discount_type", discountType).
			Float64("value", value).
			Msg("denying discount")
		return contract.DiscountDecision{
			Status:  contract.StatusRejected,
			Message: "discount too large. Must be 10 or less.",
		}
	}

	g.log.Info().
		Str("discount_type", discountType).
		Float64("value", value).
		Str("reason", reason).
		Msg("approving discount")
	return contract.DiscountDecision{Status: contract.StatusOK}
}

// GenerateQRCode validates the voucher caps before issuing. Percentage
// discounts (and the unset default) are capped at 10, fixed amounts at
// 20. Violations come back as a structured error result.
func (g *Gateway) GenerateQRCode(ctx context.Context, customerID string, discountValue float64, discountType string, expirationDays int) (contract.QRVoucher, error) {
	if (discountType == "" || discountType == "percentage") && discountValue > maxPercentageQRDiscount {
		return contract.QRVoucher{
			Status:  contract.StatusError,
			Message: "cannot generate a QR code for this amount, must be 10% or less",
		}, nil
	}
	if discountType == "fixed" && discountValue > maxFixedQRDiscount {
		return contract.QRVoucher{
			Status:  contract.StatusError,
			Message: "cannot generate a QR code for this amount, must be 20 or less",
		}, nil
	}

	return g.engagement.IssueQRVoucher(ctx, customerID, discountValue, discountType, expirationDays)
}

func (g *Gateway) execApproveDiscount(_ context.Context, args map[string]any) (any, error) {
	discountType, err := stringArg(args, "discount_type")
	if err != nil {
		return nil, err
	}
	value, err := floatArg(args, "value")
	if err != nil {
		return nil, err
	}
	reason, err := stringArg(args, "reason")
	if err != nil {
		return nil, err
	}
	return g.ApproveDiscount(discountType, value, reason), nil
}

func (g *Gateway) execAskForApproval(ctx context.Context, args map[string]any) (any, error) {
	discountType, err := stringArg(args, "discount_type")
	if err != nil {
		return nil, err
	}
	value, err := floatArg(args, "value")
	if err != nil {
		return nil, err
	}
	reason, err := stringArg(args, "reason")
	if err != nil {
		return nil, err
	}
	return g.approval.RequestApproval(ctx, discountType, value, reason)
}

func (g *Gateway) execGenerateQRCode(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	discountValue, err := floatArg(args, "discount_value")
	if err != nil {
		return nil, err
	}
	discountType, err := optionalStringArg(args, "discount_type", "percentage")
	if err != nil {
		return nil, err
	}
	expirationDays, err := intArg(args, "expiration_days")
	if err != nil {
		return nil, err
	}
	return g.GenerateQRCode(ctx, customerID, discountValue, discountType, expirationDays)
}
