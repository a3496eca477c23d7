package backend

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elitebeauty/clinic-concierge/agent/contract"
)

// MockCommerce simulates the clinic's commerce backend. Every response is
// built from fixed constants; a production CartService talks to the real
// store and returns entity.ErrCustomerNotFound for unknown customers.
type MockCommerce struct {
	log zerolog.Logger
}

func NewMockCommerce(log zerolog.Logger) *MockCommerce {
	return &MockCommerce{log: log}
}

func (m *MockCommerce) Cart(_ context.Context, customerID string) (contract.CartSnapshot, error) {
	m.log.Info().Str("customer_id", customerID).Msg("accessing appointment cart information")

	return contract.CartSnapshot{
		Items: []contract.CartItem{
			{ProductID: "botox-123", Name: "보톡스 (눈가)", Quantity: 1, Price: 250000},
			{ProductID: "facial-456", Name: "딥클렌징 페이셜", Quantity: 1, Price: 180000},
		},
		Subtotal: 430000,
	}, nil
}

func (m *MockCommerce) ModifyCart(_ context.Context, customerID string, add []contract.CartAddition, remove []string) (contract.CartModification, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Interface("items_to_add", add).
		Strs("items_to_remove", remove).
		Msg("modifying cart")

	// The mock reports success unconditionally. A real backend must report
	// partial failure (e.g. removing an absent item) as a distinct status.
	return contract.CartModification{
		Status:       contract.StatusSuccess,
		Message:      "Cart updated successfully.",
		ItemsAdded:   true,
		ItemsRemoved: true,
	}, nil
}

func (m *MockCommerce) CheckAvailability(_ context.Context, productID, storeID string) (contract.Availability, error) {
	m.log.Info().
		Str("product_id", productID).
		Str("store_id", storeID).
		Msg("checking product availability")

	return contract.Availability{Available: true, Quantity: 10, Store: storeID}, nil
}

// Recommendations is a rule-based matcher, not ML: case-insensitive
// substring checks in fixed priority order, first match wins, exactly one
// of three fixed lists is returned. Unmatched input yields the default
// list, never an error.
func (m *MockCommerce) Recommendations(_ context.Context, skinConcern, customerID string) (contract.RecommendationSet, error) {
	m.log.Info().
		Str("skin_concern", skinConcern).
		Str("customer_id", customerID).
		Msg("getting treatment recommendations")

	concern := strings.ToLower(skinConcern)
	switch {
	case strings.Contains(concern, "주름"):
		return contract.RecommendationSet{
			Recommendations: []contract.Recommendation{
				{
					ProductID:   "botox-456",
					Name:        "보톡스 (이마)",
					Description: "이마 주름 개선에 효과적인 시술입니다.",
					Price:       200000,
				},
				{
					ProductID:   "filler-789",
					Name:        "히알루론산 필러",
					Description: "깊은 주름 및 볼륨 개선을 위한 시술입니다.",
					Price:       300000,
				},
			},
		}, nil
	case strings.Contains(concern, "색소침착"):
		return contract.RecommendationSet{
			Recommendations: []contract.Recommendation{
				{
					ProductID:   "laser-456",
					Name:        "피코 레이저",
					Description: "멜라닌 색소 분해로 색소침착 개선에 탁월합니다.",
					Price:       150000,
				},
				{
					ProductID:   "ipl-789",
					Name:        "IPL 광치료",
					Description: "다양한 색소 질환과 홍조 개선에 효과적입니다.",
					Price:       120000,
				},
			},
		}, nil
	default:
		return contract.RecommendationSet{
			Recommendations: []contract.Recommendation{
				{
					ProductID:   "facial-123",
					Name:        "하이드라페이셜",
					Description: "모든 피부 타입에 적합한 기본 관리 시술입니다.",
					Price:       150000,
				},
				{
					ProductID:   "peel-456",
					Name:        "화학적 필링",
					Description: "각질 제거 및 피부 톤 개선에 효과적입니다.",
					Price:       100000,
				},
			},
		}, nil
	}
}
