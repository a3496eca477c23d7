package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/elitebeauty/clinic-concierge/agent/contract"
)

const clinicLocation = "엘리트 뷰티 클리닉 강남점"

// MockScheduling simulates the clinic's booking system. Slots do not vary
// by date and bookings never conflict; a production SchedulingService must
// vary slots by existing bookings and report conflicts as failures.
type MockScheduling struct {
	log   zerolog.Logger
	newID func() string
}

func NewMockScheduling(log zerolog.Logger) *MockScheduling {
	return &MockScheduling{log: log, newID: uuid.NewString}
}

func (m *MockScheduling) AvailableTimes(_ context.Context, date string) ([]string, error) {
	m.log.Info().Str("date", date).Msg("retrieving available treatment times")

	return []string{"9-11", "11-13", "14-16", "16-18", "18-20"}, nil
}

func (m *MockScheduling) Schedule(_ context.Context, customerID, date, timeRange, details string) (contract.Appointment, error) {
	m.log.Info().
		Str("customer_id", customerID).
		Str("date", date).
		Str("time_range", timeRange).
		Str("details", details).
		Msg("scheduling beauty treatment")

	// Start token is everything before the first "-". A range with no "-"
	// is treated as the start in full.
	start := timeRange
	if i := strings.Index(timeRange, "-"); i >= 0 {
		start = timeRange[:i]
	}

	return contract.Appointment{
		Status:           contract.StatusSuccess,
		AppointmentID:    m.newID(),
		Date:             date,
		Time:             timeRange,
		Treatment:        details,
		ConfirmationTime: fmt.Sprintf("%s %s:00", date, start),
		Location:         clinicLocation,
	}, nil
}

func (m *MockScheduling) Upcoming(_ context.Context, customerID string) (contract.AppointmentList, error) {
	m.log.Info().Str("customer_id", customerID).Msg("checking upcoming appointments")

	return contract.AppointmentList{
		Appointments: []contract.UpcomingAppointment{
			{
				AppointmentID: "apt123",
				Date:          "2024-05-25",
				Time:          "14-16",
				Treatment:     "보톡스 (이마)",
				Location:      clinicLocation,
				Doctor:        "김미용 원장",
				Status:        "confirmed",
			},
			{
				AppointmentID: "apt124",
				Date:          "2024-05-30",
				Time:          "11-13",
				Treatment:     "필러 (볼)",
				Location:      clinicLocation,
				Doctor:        "이성형 원장",
				Status:        "pending",
			},
		},
	}, nil
}
