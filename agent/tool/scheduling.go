package tool

import "context"

func (g *Gateway) execAvailableTimes(ctx context.Context, args map[string]any) (any, error) {
	date, err := stringArg(args, "date")
	if err != nil {
		return nil, err
	}
	return g.scheduling.AvailableTimes(ctx, date)
}

func (g *Gateway) execScheduleService(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	date, err := stringArg(args, "date")
	if err != nil {
		return nil, err
	}
	timeRange, err := stringArg(args, "time_range")
	if err != nil {
		return nil, err
	}
	details, err := stringArg(args, "details")
	if err != nil {
		return nil, err
	}
	return g.scheduling.Schedule(ctx, customerID, date, timeRange, details)
}

func (g *Gateway) execUpcomingAppointments(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	return g.scheduling.Upcoming(ctx, customerID)
}

func (g *Gateway) execSendReminder(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	appointmentID, err := stringArg(args, "appointment_id")
	if err != nil {
		return nil, err
	}
	reminderType, err := optionalStringArg(args, "reminder_type", "24h")
	if err != nil {
		return nil, err
	}
	return g.notify.SendReminder(ctx, customerID, appointmentID, reminderType)
}

func (g *Gateway) execSetNotifications(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	appointmentID, err := stringArg(args, "appointment_id")
	if err != nil {
		return nil, err
	}
	notifications, err := mapArg(args, "notifications")
	if err != nil {
		return nil, err
	}
	return g.notify.SetAppointmentNotifications(ctx, customerID, appointmentID, notifications)
}
