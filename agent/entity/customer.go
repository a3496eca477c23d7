package entity

import (
	"encoding/json"
	"fmt"
)

// Address is a customer's billing address. No field carries format
// validation; the clinic CRM is the source of truth.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Product is one line item inside a past purchase.
type Product struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// Purchase is one entry of the treatment history.
type Purchase struct {
	Date        string    `json:"date"` // YYYY-MM-DD by convention
	Items       []Product `json:"items"`
	TotalAmount float64   `json:"total_amount"`
}

type CommunicationPreferences struct {
	Email             bool `json:"email"`
	SMS               bool `json:"sms"`
	PushNotifications bool `json:"push_notifications"`
}

// DefaultCommunicationPreferences opts the customer into every channel.
func DefaultCommunicationPreferences() CommunicationPreferences {
	return CommunicationPreferences{Email: true, SMS: true, PushNotifications: true}
}

type BeautyProfile struct {
	SkinType               string   `json:"skin_type"`
	Concerns               []string `json:"concerns"`
	PreviousTreatments     []string `json:"previous_treatments"`
	PreferredTreatmentTime string   `json:"preferred_treatment_time"`
	BudgetRange            string   `json:"budget_range"`
}

// Customer is the full profile the orchestrator receives as context.
// CustomerID is the sole external lookup key. ScheduledAppointments is the
// only mutable field; every other field is append-only or fixed at load.
type Customer struct {
	AccountNumber            string                   `json:"account_number"`
	CustomerID               string                   `json:"customer_id"`
	CustomerFirstName        string                   `json:"customer_first_name"`
	CustomerLastName         string                   `json:"customer_last_name"`
	Email                    string                   `json:"email"`
	PhoneNumber              string                   `json:"phone_number"`
	CustomerStartDate        string                   `json:"customer_start_date"`
	YearsAsCustomer          int                      `json:"years_as_customer"`
	BillingAddress           Address                  `json:"billing_address"`
	TreatmentHistory         []Purchase               `json:"treatment_history"`
	LoyaltyPoints            int                      `json:"loyalty_points"`
	PreferredClinic          string                   `json:"preferred_clinic"`
	CommunicationPreferences CommunicationPreferences `json:"communication_preferences"`
	BeautyProfile            BeautyProfile            `json:"beauty_profile"`
	ScheduledAppointments    map[string]any           `json:"scheduled_appointments"`
}

// ToJSON renders the whole profile with human-readable indentation. It is
// used to embed the profile into the orchestrator's initial context, not
// for storage.
func (c *Customer) ToJSON() (string, error) {
	raw, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal customer %s: %w", c.CustomerID, err)
	}
	return string(raw), nil
}

// ExampleCustomer returns the canonical demo profile with the requested id.
func ExampleCustomer(customerID string) *Customer {
	return &Customer{
		AccountNumber:     "428765091",
		CustomerID:        customerID,
		CustomerFirstName: "민지",
		CustomerLastName:  "김",
		Email:             "minji.kim@example.com",
		PhoneNumber:       "+82-10-1234-5678",
		CustomerStartDate: "2022-06-10",
		YearsAsCustomer:   2,
		BillingAddress: Address{
			Street: "123 강남대로",
			City:   "서울",
			State:  "강남구",
			Zip:    "06292",
		},
		TreatmentHistory: []Purchase{
			{
				Date: "2023-03-05",
				Items: []Product{
					{ProductID: "botox-111", Name: "보톡스 (이마)", Quantity: 1},
					{ProductID: "skincare-222", Name: "하이드라페이셜", Quantity: 1},
				},
				TotalAmount: 350000,
			},
			{
				Date: "2023-07-12",
				Items: []Product{
					{ProductID: "filler-333", Name: "필러 (볼)", Quantity: 1},
					{ProductID: "laser-444", Name: "레이저 토닝", Quantity: 1},
				},
				TotalAmount: 520000,
			},
			{
				Date: "2024-01-20",
				Items: []Product{
					{ProductID: "peel-555", Name: "화학적 필링", Quantity: 1},
					{ProductID: "massage-666", Name: "얼굴 마사지", Quantity: 1},
				},
				TotalAmount: 180000,
			},
		},
		LoyaltyPoints:            1050,
		PreferredClinic:          "엘리트 뷰티 클리닉 강남점",
		CommunicationPreferences: DefaultCommunicationPreferences(),
		BeautyProfile: BeautyProfile{
			SkinType:               "복합성",
			Concerns:               []string{"색소침착", "주름", "모공"},
			PreviousTreatments:     []string{"보톡스", "필러", "레이저토닝"},
			PreferredTreatmentTime: "오후",
			BudgetRange:            "월 30-50만원",
		},
		ScheduledAppointments: map[string]any{},
	}
}
