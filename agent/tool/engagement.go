package tool

import (
	"context"

	"github.com/elitebeauty/clinic-concierge/agent/contract"
)

const (
	minRating = 1
	maxRating = 5
)

// CollectFeedback validates the star rating before handing the feedback
// to the engagement backend. Out-of-range ratings are reported back as a
// structured error, never raised.
func (g *Gateway) CollectFeedback(ctx context.Context, customerID string, rating int, feedback, treatmentType string) (contract.FeedbackReceipt, error) {
	if rating < minRating || rating > maxRating {
		return contract.FeedbackReceipt{
			Status:  contract.StatusError,
			Message: "평점은 1~5점 사이여야 합니다.",
		}, nil
	}
	return g.engagement.StoreFeedback(ctx, customerID, rating, feedback, treatmentType)
}

func (g *Gateway) execSendCareInstructions(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	treatmentType, err := stringArg(args, "treatment_type")
	if err != nil {
		return nil, err
	}
	deliveryMethod, err := optionalStringArg(args, "delivery_method", "email")
	if err != nil {
		return nil, err
	}
	return g.notify.SendCareInstructions(ctx, customerID, treatmentType, deliveryMethod)
}

func (g *Gateway) execSendSurvey(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	treatmentType, err := stringArg(args, "treatment_type")
	if err != nil {
		return nil, err
	}
	deliveryMethod, err := optionalStringArg(args, "delivery_method", "email")
	if err != nil {
		return nil, err
	}
	return g.notify.SendSatisfactionSurvey(ctx, customerID, treatmentType, deliveryMethod)
}

func (g *Gateway) execCollectFeedback(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	rating, err := intArg(args, "rating")
	if err != nil {
		return nil, err
	}
	feedback, err := stringArg(args, "feedback")
	if err != nil {
		return nil, err
	}
	treatmentType, err := stringArg(args, "treatment_type")
	if err != nil {
		return nil, err
	}
	return g.CollectFeedback(ctx, customerID, rating, feedback, treatmentType)
}

func (g *Gateway) execSatisfactionStats(ctx context.Context, args map[string]any) (any, error) {
	clinicID, err := optionalStringArg(args, "clinic_id", "gangnam")
	if err != nil {
		return nil, err
	}
	return g.engagement.SatisfactionStatistics(ctx, clinicID)
}

func (g *Gateway) execSendCallCompanionLink(ctx context.Context, args map[string]any) (any, error) {
	phoneNumber, err := stringArg(args, "phone_number")
	if err != nil {
		return nil, err
	}
	return g.notify.SendCallCompanionLink(ctx, phoneNumber)
}
