package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/elitebeauty/clinic-concierge/agent/contract"
)

const (
	deepLinkScheme  = "elitebeauty"
	qrServerBaseURL = "https://api.qrserver.com/v1/create-qr-code/?data="
)

// MockCRM simulates the Salesforce and mobile-app sync backends.
type MockCRM struct {
	log zerolog.Logger
	now func() time.Time
}

func NewMockCRM(log zerolog.Logger) *MockCRM {
	return &MockCRM{log: log, now: time.Now}
}

func (m *MockCRM) UpdateRecord(_ context.Context, customerID string, details map[string]any) (contract.CRMUpdate, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Interface("details", details).
		Msg("updating Salesforce CRM")

	return contract.CRMUpdate{
		Status:  contract.StatusSuccess,
		Message: "Salesforce record updated.",
	}, nil
}

// DeepLink appends parameters in the order supplied; byte-identical output
// depends on that order being preserved.
func (m *MockCRM) DeepLink(_ context.Context, customerID, targetScreen string, parameters []contract.Parameter) (contract.DeepLink, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Str("target_screen", targetScreen).
		Msg("generating mobile deep link")

	var b strings.Builder
	fmt.Fprintf(&b, "%s://%s?customer_id=%s", deepLinkScheme, targetScreen, customerID)
	for _, p := range parameters {
		fmt.Fprintf(&b, "&%s=%s", p.Key, p.Value)
	}
	link := b.String()

	return contract.DeepLink{
		Status:   contract.StatusSuccess,
		DeepLink: link,
		QRCode:   qrServerBaseURL + link,
	}, nil
}

func (m *MockCRM) SyncToApp(_ context.Context, customerID string) (contract.AppSync, error) {
	m.log.Info().Str("customer_id", customerID).Msg("syncing customer data to mobile app")

	return contract.AppSync{
		Status:        contract.StatusSuccess,
		Message:       "고객 데이터가 모바일 앱에 동기화되었습니다.",
		SyncTimestamp: m.now().Format(time.RFC3339),
		CustomerID:    customerID,
	}, nil
}

func (m *MockCRM) Analytics(_ context.Context, customerID string) (contract.AppAnalytics, error) {
	m.log.Info().Str("customer_id", customerID).Msg("getting mobile app analytics")

	return contract.AppAnalytics{
		LastLogin:                "2024-05-23T10:30:00",
		TotalSessions:            15,
		MostUsedFeature:          "appointment_booking",
		AppVersion:               "2.1.0",
		DeviceType:               "iOS",
		PushNotificationsEnabled: true,
		Preferences: contract.AppPreferences{
			Language: "ko",
			Theme:    "light",
			Notifications: map[string]bool{
				"appointments": true,
				"promotions":   false,
				"news":         true,
			},
		},
	}, nil
}
